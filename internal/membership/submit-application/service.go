// internal/membership/submit-application/service.go
package submitapplication

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperrors "membership-portal/internal/common/errors"
	commonhttp "membership-portal/internal/common/http"
	"membership-portal/internal/common/logger"
	"membership-portal/internal/common/metrics"
	"membership-portal/internal/common/observability"
	"membership-portal/internal/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Service struct {
	config *Config
	client commonhttp.Doer
	logger logger.Logger
	obs    *observability.Observability
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	client := deps.Client
	if client == nil {
		client = commonhttp.NewClient(config.Timeout)
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Service{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "submit-application"}),
		obs:    deps.Observability,
	}
}

// SubmitApplication posts the form once and folds every outcome into a
// SubmissionResult. It never returns an error and never panics on I/O failure.
func (s *Service) SubmitApplication(ctx context.Context, form models.ApplicationForm) models.SubmissionResult {
	start := time.Now()
	ctx, span := s.obs.StartSpan(ctx, "membership.submit",
		attribute.String("membership.type", form.MembershipType),
		attribute.String("http.url", s.config.Endpoint()),
	)
	defer span.End()

	s.logger.Debug("submitting application", map[string]interface{}{
		"endpoint":       s.config.Endpoint(),
		"membershipType": form.MembershipType,
	})

	data, statusCode, err := s.send(ctx, form)
	elapsed := time.Since(start)

	if err != nil {
		stdErr := apperrors.Normalize(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(stdErr.Code))
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeFailure, string(stdErr.Code)).Inc()
		s.obs.RecordSubmission(ctx, elapsed, metrics.OutcomeFailure)

		s.logger.Warn("application submission failed", map[string]interface{}{
			"errorCode":  stdErr.Code,
			"category":   apperrors.GetErrorCategory(stdErr.Code),
			"statusCode": statusCode,
			"durationMs": elapsed.Milliseconds(),
			"error":      err,
		})

		return models.SubmissionResult{
			Success: false,
			Message: apperrors.UserMessage(err),
		}
	}

	span.SetStatus(codes.Ok, "")
	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeSuccess, "").Inc()
	s.obs.RecordSubmission(ctx, elapsed, metrics.OutcomeSuccess)

	s.logger.Info("application submitted", map[string]interface{}{
		"statusCode": statusCode,
		"durationMs": elapsed.Milliseconds(),
	})

	return models.SubmissionResult{
		Success: true,
		Message: SuccessMessage,
		Data:    data,
	}
}

// send performs the request. The body is decoded before the status is looked
// at, so a non-JSON body is a parse failure even on an error status.
func (s *Service) send(ctx context.Context, form models.ApplicationForm) (interface{}, int, error) {
	payload, err := json.Marshal(form)
	if err != nil {
		return nil, 0, apperrors.NewRequestBuildFailedError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, 0, apperrors.NewRequestBuildFailedError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, apperrors.NewTransportFailedError(err)
	}
	if resp == nil || resp.Body == nil {
		return nil, 0, apperrors.NewTransportFailedError(errEmptyResponse)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, apperrors.NewTransportFailedError(err)
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, resp.StatusCode, apperrors.NewResponseParseFailedError(resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, apperrors.NewServerRejectedError(resp.StatusCode, serverMessage(data))
	}

	return data, resp.StatusCode, nil
}

// serverMessage extracts a non-empty string "message" from an error body.
func serverMessage(data interface{}) string {
	body, ok := data.(map[string]interface{})
	if !ok {
		return ""
	}
	msg, _ := body["message"].(string)
	return msg
}
