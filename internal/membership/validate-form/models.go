// internal/membership/validate-form/models.go
package validateform

import "regexp"

// Field names, in the order ValidateForm reports them.
const (
	FieldFullName       = "fullName"
	FieldEmail          = "email"
	FieldTelephone      = "telephone"
	FieldPostcode       = "postcode"
	FieldMembershipType = "membershipType"
)

const (
	MsgInvalidFullName       = "Please enter a valid full name"
	MsgInvalidEmail          = "Please enter a valid email address"
	MsgInvalidTelephone      = "Please enter a valid telephone number"
	MsgInvalidPostcode       = "Please enter a valid UK postcode"
	MsgMissingMembershipType = "Please select a membership type"
)

// MinFullNameLength is counted in characters, not bytes. Surrounding
// whitespace counts.
const MinFullNameLength = 2

// whitespace is the browser's notion of \s, wider than RE2's ASCII-only class.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Documented pattern contracts. Their permissiveness is intentional: the email
// check is structural only, the postcode check is shape only.
const (
	EmailPattern     = `^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`
	TelephonePattern = `^[0-9` + whitespace + `\-+()]{10,}$`
	PostcodePattern  = `^[A-Za-z]{1,2}[0-9][A-Za-z0-9]? ?[0-9][A-Za-z]{2}$`
)

var (
	emailRegex     = regexp.MustCompile(EmailPattern)
	telephoneRegex = regexp.MustCompile(TelephonePattern)
	postcodeRegex  = regexp.MustCompile(PostcodePattern)
)

// FieldError ties a failed check to the form field it concerns.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
