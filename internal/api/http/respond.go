package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carshare-backend/internal/domain"
	"carshare-backend/internal/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps the engine's error taxonomy onto HTTP statuses.
// DatesUnavailable and InvalidTransition carry structured details so clients
// can reopen date selection or explain the state mismatch.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		notFound    *domain.NotFoundError
		invalid     *domain.InvalidTransitionError
		unavailable *domain.DatesUnavailableError
		validation  *domain.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "not_found", notFound.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.As(err, &unavailable):
		writeJSON(w, http.StatusConflict, errorBody{Error: errorDetail{
			Code:    "dates_unavailable",
			Message: unavailable.Error(),
			Details: map[string]string{
				"conflict_day": unavailable.ConflictDay.Format(domain.DayFormat),
			},
		}})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusConflict, errorBody{Error: errorDetail{
			Code:    "invalid_transition",
			Message: invalid.Error(),
			Details: map[string]string{
				"expected_status": string(invalid.Expected),
				"current_status":  string(invalid.Actual),
			},
		}})
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrDuplicateRequest):
		writeError(w, http.StatusConflict, "duplicate_request", err.Error())
	case errors.Is(err, domain.ErrReportExists):
		writeError(w, http.StatusConflict, "report_exists", err.Error())
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, "validation_error", validation.Error())
	default:
		logger.Error("Unhandled error in request", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
