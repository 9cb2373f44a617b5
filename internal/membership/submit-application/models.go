// internal/membership/submit-application/models.go
package submitapplication

import (
	"errors"

	commonhttp "membership-portal/internal/common/http"
	"membership-portal/internal/common/logger"
	"membership-portal/internal/common/observability"
)

// SuccessMessage is reported for every 2xx answer regardless of its body.
const SuccessMessage = "Application submitted successfully"

var errEmptyResponse = errors.New("no response received from membership API")

type ServiceDependencies struct {
	Client        commonhttp.Doer
	Logger        logger.Logger
	Observability *observability.Observability
}
