package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/recordkit/pkg/record"
	"github.com/dmitrymomot/recordkit/pkg/registry"
)

// ErrUnsupportedMediaType is returned for schema bodies that are neither
// JSON nor YAML.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// ErrorDetail is the error member of the response envelope.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// errorStatus maps err to a status code and error code. Unknown errors are
// internal.
func errorStatus(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "body_too_large"
	case errors.Is(err, registry.ErrSchemaNotFound):
		return http.StatusNotFound, "schema_not_found"
	case errors.Is(err, registry.ErrInvalidName):
		return http.StatusBadRequest, "invalid_name"
	case errors.Is(err, registry.ErrReadOnly):
		return http.StatusConflict, "read_only"
	case errors.Is(err, registry.ErrNilSchema),
		errors.Is(err, record.ErrInvalidSchema),
		errors.Is(err, record.ErrUnknownKind),
		errors.Is(err, record.ErrDuplicateField),
		errors.Is(err, record.ErrEmptyFieldName):
		return http.StatusBadRequest, "invalid_schema"
	case errors.Is(err, record.ErrInvalidRecord):
		return http.StatusBadRequest, "invalid_record"
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
