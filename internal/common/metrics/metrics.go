// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by client and stub counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membership_validation_failures_total",
			Help: "Client-side validation failures per form field",
		},
		[]string{"field"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membership_submissions_total",
			Help: "Membership applications sent to the API, by outcome and error code",
		},
		[]string{"outcome", "error_code"},
	)

	StubApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membership_stub_applications_total",
			Help: "Applications handled by the stub API, by HTTP status",
		},
		[]string{"status"},
	)

	StubRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "membership_stub_request_duration_seconds",
			Help: "Stub API request handling time in seconds",
		},
		[]string{"route"},
	)
)
