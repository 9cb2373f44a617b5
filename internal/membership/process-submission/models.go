// internal/membership/process-submission/models.go
package processsubmission

import (
	"context"

	"membership-portal/internal/models"
)

const (
	SubmittedNotice      = "Application submitted successfully. Please check your email for payment instructions."
	FailedNoticePrefix   = "Failed to submit application: "
	validationNoticeJoin = "\n"
)

type Outcome string

const (
	OutcomeValidationFailed Outcome = "validation_failed"
	OutcomeSubmitted        Outcome = "submitted"
	OutcomeSubmissionFailed Outcome = "submission_failed"
)

// FormSource is the UI adapter: it snapshots the current input state and can
// clear it.
type FormSource interface {
	ReadForm() models.ApplicationForm
	Reset()
}

// Notifier shows one message to the user.
type Notifier interface {
	Notify(message string)
}

// Submitter is satisfied by submitapplication.Service.
type Submitter interface {
	SubmitApplication(ctx context.Context, form models.ApplicationForm) models.SubmissionResult
}

type Output struct {
	Outcome      Outcome                  `json:"outcome"`
	Form         models.ApplicationForm   `json:"form"`
	Report       models.ValidationReport  `json:"report"`
	Result       *models.SubmissionResult `json:"result,omitempty"`
	Notification string                   `json:"notification"`
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
