// internal/membership/validate-form/validator.go
package validateform

import (
	"unicode/utf8"

	"membership-portal/internal/models"
)

// ValidateFullName counts characters (runes). A browser counts UTF-16 code
// units instead, so a single astral character such as an emoji passes there
// but fails here.
func ValidateFullName(name string) bool {
	return utf8.RuneCountInString(name) >= MinFullNameLength
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateTelephone accepts digits, whitespace, hyphens, plus signs and
// parentheses, at least ten characters in total.
func ValidateTelephone(telephone string) bool {
	return telephoneRegex.MatchString(telephone)
}

// ValidatePostcode checks UK postcode shape, ASCII letters of either case,
// with an optional single space before the inward code.
func ValidatePostcode(postcode string) bool {
	return postcodeRegex.MatchString(postcode)
}

// CheckFields runs every check without short-circuiting and returns the
// failures in field order: full name, email, telephone, postcode, membership type.
func CheckFields(form models.ApplicationForm) []FieldError {
	errs := []FieldError{}

	if !ValidateFullName(form.FullName) {
		errs = append(errs, FieldError{Field: FieldFullName, Message: MsgInvalidFullName})
	}
	if !ValidateEmail(form.Email) {
		errs = append(errs, FieldError{Field: FieldEmail, Message: MsgInvalidEmail})
	}
	if !ValidateTelephone(form.Telephone) {
		errs = append(errs, FieldError{Field: FieldTelephone, Message: MsgInvalidTelephone})
	}
	if !ValidatePostcode(form.Postcode) {
		errs = append(errs, FieldError{Field: FieldPostcode, Message: MsgInvalidPostcode})
	}
	if form.MembershipType == "" {
		errs = append(errs, FieldError{Field: FieldMembershipType, Message: MsgMissingMembershipType})
	}

	return errs
}

// ValidateForm reduces CheckFields to a report. Errors is never nil.
func ValidateForm(form models.ApplicationForm) models.ValidationReport {
	fieldErrs := CheckFields(form)

	messages := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		messages[i] = fe.Message
	}

	return models.ValidationReport{
		Valid:  len(messages) == 0,
		Errors: messages,
	}
}
