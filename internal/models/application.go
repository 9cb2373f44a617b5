// internal/models/application.go
package models

// Membership options accepted by the membership API.
const (
	MembershipTypeFull      = "full"
	MembershipTypeAssociate = "associate"
)

// MembershipTypes lists the options in display order.
var MembershipTypes = []string{MembershipTypeFull, MembershipTypeAssociate}

// ApplicationForm is one membership application as entered by the user.
// It is passed by value so a validation+submission cycle cannot mutate it.
type ApplicationForm struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Telephone      string `json:"telephone"`
	Postcode       string `json:"postcode"`
	MembershipType string `json:"membershipType"`
	LAAStatus      bool   `json:"laaStatus"`
}

// ValidationReport lists failed checks in a fixed field order.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// SubmissionResult is the uniform outcome of sending an application.
// Data holds the decoded response body on success.
type SubmissionResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
