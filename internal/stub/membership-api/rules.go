// internal/stub/membership-api/rules.go
package membershipapi

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	apperrors "membership-portal/internal/common/errors"
	"membership-portal/internal/common/validation"
	validateform "membership-portal/internal/membership/validate-form"
	"membership-portal/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

var applicationSchema *gojsonschema.Schema

func init() {
	compiled, err := validation.Compile(validation.MembershipApplicationSchema())
	if err != nil {
		panic(err)
	}
	applicationSchema = compiled
}

// decodeApplication runs the server-side checks in order and stops at the
// first failure: JSON syntax, required fields, field types, field rules.
func decodeApplication(raw []byte) (models.ApplicationForm, *apperrors.StandardError) {
	var form models.ApplicationForm

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return form, apperrors.NewInvalidPayloadError(MsgInvalidJSON)
	}

	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			return form, apperrors.NewMissingFieldError(field)
		}
	}

	result, err := validation.ValidateDocument(applicationSchema, doc)
	if err != nil {
		return form, apperrors.NewInvalidPayloadError(MsgInvalidJSON)
	}
	if !result.Valid {
		first := result.Errors[0]
		return form, apperrors.NewInvalidPayloadError(first.Field + ": " + first.Message).
			WithMetadata("field", first.Field)
	}

	if err := json.Unmarshal(raw, &form); err != nil {
		return form, apperrors.NewInvalidPayloadError(MsgInvalidJSON)
	}

	if msg := checkRules(form); msg != "" {
		return form, apperrors.NewInvalidPayloadError(msg)
	}
	return form, nil
}

// checkRules returns the message for the first rule form breaks, or "".
func checkRules(form models.ApplicationForm) string {
	switch {
	case utf8.RuneCountInString(strings.TrimSpace(form.FullName)) < validateform.MinFullNameLength:
		return MsgInvalidFullName
	case !serverEmailRegex.MatchString(form.Email):
		return MsgInvalidEmail
	case !serverPhoneRegex.MatchString(form.Telephone):
		return MsgInvalidTelephone
	case !validateform.ValidatePostcode(form.Postcode):
		return MsgInvalidPostcode
	case !validMembershipType(form.MembershipType):
		return MsgInvalidMembership
	}
	return ""
}

func validMembershipType(t string) bool {
	for _, allowed := range models.MembershipTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
