package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/record"
)

// Envelope wraps every JSON response body.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ValidationResult is the data member of a validation response.
type ValidationResult struct {
	Valid      bool              `json:"valid"`
	Record     *record.Record    `json:"record,omitempty"`
	Violations record.Violations `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Data: data})
}

// writeError maps err to a status. Internal errors are logged and their
// message is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err))
		msg = http.StatusText(status)
	}
	writeJSON(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: msg}})
}

// writeResult answers 200 for an accepted record and 422 otherwise.
func writeResult(w http.ResponseWriter, res record.Result) {
	if res.OK() {
		rec := res.Record()
		writeData(w, http.StatusOK, ValidationResult{Valid: true, Record: &rec})
		return
	}
	vs := res.Violations()
	writeJSON(w, http.StatusUnprocessableEntity, Envelope{
		Data: ValidationResult{Valid: false, Violations: vs},
		Error: &ErrorDetail{
			Code:    "validation_failed",
			Message: vs.Error(),
			Details: vs.Details(),
		},
	})
}
