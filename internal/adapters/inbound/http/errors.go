package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

type errorBody struct {
	Error     string                  `json:"error"`
	Detection *domain.DetectionResult `json:"detection,omitempty"`
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error { return &requestError{msg: msg} }

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var reqErr *requestError
	var notDetected *application.NotDetectedError
	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, domain.ErrMissingURL),
		errors.Is(err, domain.ErrEmptyQuery),
		errors.Is(err, domain.ErrMissingObservation):
		return http.StatusBadRequest
	case errors.As(err, &notDetected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrGuidelineNotFound), errors.Is(err, domain.ErrAuditNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorBody{Error: err.Error()}

	var notDetected *application.NotDetectedError
	if errors.As(err, &notDetected) {
		body.Detection = notDetected.Detection
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		body.Error = "internal error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}
