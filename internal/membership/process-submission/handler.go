// internal/membership/process-submission/handler.go
package processsubmission

import (
	"context"
	"strings"

	"membership-portal/internal/common/logger"
	"membership-portal/internal/common/metrics"
	validateform "membership-portal/internal/membership/validate-form"
)

type Handler struct {
	submitter Submitter
	logger    logger.Logger
}

func NewHandler(submitter Submitter, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{
		submitter: submitter,
		logger:    log.WithFields(map[string]interface{}{"component": "process-submission"}),
	}
}

// HandleSubmit runs one submit interaction: snapshot the form, validate it,
// and either report the errors or send it. The form is reset only after a
// successful submission. Exactly one notification is emitted.
func (h *Handler) HandleSubmit(ctx context.Context, source FormSource, notifier Notifier) *Output {
	form := source.ReadForm()
	report := validateform.ValidateForm(form)

	out := &Output{
		Form:   form,
		Report: report,
	}

	if !report.Valid {
		for _, fe := range validateform.CheckFields(form) {
			metrics.ValidationFailures.WithLabelValues(fe.Field).Inc()
		}
		h.logger.Info("application rejected by validation", map[string]interface{}{
			"errorCount": len(report.Errors),
		})

		out.Outcome = OutcomeValidationFailed
		out.Notification = strings.Join(report.Errors, validationNoticeJoin)
		notifier.Notify(out.Notification)
		return out
	}

	result := h.submitter.SubmitApplication(ctx, form)
	out.Result = &result

	if result.Success {
		out.Outcome = OutcomeSubmitted
		out.Notification = SubmittedNotice
		notifier.Notify(out.Notification)
		source.Reset()
		return out
	}

	h.logger.Info("application not accepted", map[string]interface{}{
		"message": result.Message,
	})
	out.Outcome = OutcomeSubmissionFailed
	out.Notification = FailedNoticePrefix + result.Message
	notifier.Notify(out.Notification)
	return out
}
