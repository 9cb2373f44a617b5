// internal/stub/membership-api/models.go
package membershipapi

import (
	"regexp"

	"membership-portal/internal/common/logger"
)

const (
	ApplyRoute  = "/membership/apply"
	MemberRoute = "/membership/members/{memberId}"
	HealthRoute = "/healthz"

	maxBodyBytes = 64 << 10
)

const (
	MsgStored            = "Member data stored successfully"
	MsgInvalidJSON       = "Invalid JSON in request body"
	MsgInvalidFullName   = "Invalid full name"
	MsgInvalidEmail      = "Invalid email address"
	MsgInvalidTelephone  = "Invalid telephone number"
	MsgInvalidPostcode   = "Invalid UK postcode"
	MsgInvalidMembership = "Invalid membership type"
	MsgMemberNotFound    = "Member not found"
)

// requiredFields is checked in this order; the first absent one is reported.
var requiredFields = []string{"fullName", "email", "telephone", "postcode", "membershipType"}

// Server-side rules are stricter than the browser's: the email must have an
// alphabetic TLD of two or more letters.
var (
	serverEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	serverPhoneRegex = regexp.MustCompile(`^[0-9\s\-+()]{10,}$`)
)

type HandlerDependencies struct {
	Store  Store
	Logger logger.Logger
}
