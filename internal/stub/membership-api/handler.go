// internal/stub/membership-api/handler.go
//
// Local stand-in for the hosted membership API. It applies the server-side
// validation rules and stores accepted applications so the client can be
// exercised end to end without network access.
package membershipapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	apperrors "membership-portal/internal/common/errors"
	"membership-portal/internal/common/logger"
	"membership-portal/internal/common/metrics"
	"membership-portal/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	store  Store
	logger logger.Logger
}

func NewHandler(deps HandlerDependencies) *Handler {
	if deps.Store == nil {
		deps.Store = NewMemoryStore()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	return &Handler{
		store:  deps.Store,
		logger: deps.Logger.WithFields(map[string]interface{}{"component": "membership-stub"}),
	}
}

// Routes mounts the stub endpoints. /metrics is added by the binary so tests
// can build many routers against the global registry.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post(ApplyRoute, h.timed(ApplyRoute, h.apply))
	r.Get(MemberRoute, h.timed(MemberRoute, h.getMember))
	r.Get(HealthRoute, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

func (h *Handler) timed(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		metrics.StubRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.reject(w, http.StatusBadRequest, apperrors.NewInvalidPayloadError(MsgInvalidJSON))
		return
	}

	form, verr := decodeApplication(raw)
	if verr != nil {
		h.reject(w, http.StatusBadRequest, verr)
		return
	}

	record, err := h.store.Create(r.Context(), form)
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		h.reject(w, http.StatusConflict, apperrors.NewDuplicateMemberError(form.Email))
		return
	case err != nil:
		h.logger.WithError(err).Error("failed to store member", nil)
		h.reject(w, http.StatusInternalServerError, apperrors.NewStoreUnavailableError(err))
		return
	}

	h.logger.Info("application stored", map[string]interface{}{
		"memberId":       record.MemberID,
		"applicationId":  record.ApplicationID,
		"membershipType": record.MembershipType,
	})
	metrics.StubApplicationsTotal.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	writeJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: MsgStored,
		Data:    record,
	})
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.Get(r.Context(), chi.URLParam(r, "memberId"))
	switch {
	case errors.Is(err, ErrMemberNotFound):
		writeJSON(w, http.StatusNotFound, models.APIResponse{Message: MsgMemberNotFound})
		return
	case err != nil:
		h.logger.WithError(err).Error("failed to load member", nil)
		writeJSON(w, http.StatusInternalServerError, models.APIResponse{Message: apperrors.UnknownErrorMessage})
		return
	}
	writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: record})
}

func (h *Handler) reject(w http.ResponseWriter, status int, serr *apperrors.StandardError) {
	h.logger.Info("application rejected", map[string]interface{}{
		"status":  status,
		"code":    string(serr.Code),
		"message": serr.Message,
	})
	metrics.StubApplicationsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	writeJSON(w, status, models.APIResponse{Success: false, Message: serr.Message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
