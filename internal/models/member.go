// internal/models/member.go
package models

// MembershipStatusPending is set on every new record until payment arrives.
const MembershipStatusPending = "PENDING"

// MemberRecord is what the stub API stores and echoes back for an accepted
// application.
type MemberRecord struct {
	ApplicationForm
	MemberID         string `json:"memberId"`
	ApplicationID    string `json:"applicationId"`
	MembershipStatus string `json:"membershipStatus"`
	RecordType       string `json:"recordType"`
}

// APIResponse is the body shape returned by the membership API.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
