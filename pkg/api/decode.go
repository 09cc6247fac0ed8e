package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// MaxBodySize bounds every request body.
const MaxBodySize = 1 << 20

func limitBody(w http.ResponseWriter, r *http.Request) io.Reader {
	return http.MaxBytesReader(w, r.Body, MaxBodySize)
}

// decodeRecord reads a single JSON object, keeping numbers as json.Number.
func decodeRecord(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	return record.DecodeJSON(limitBody(w, r))
}

// decodeSchema parses a schema document. The format follows Content-Type;
// a missing type means JSON.
func decodeSchema(w http.ResponseWriter, r *http.Request) (*record.Schema, error) {
	format := record.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
		}
		switch mt {
		case "application/json":
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			format = record.FormatYAML
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
		}
	}
	b, err := io.ReadAll(limitBody(w, r))
	if err != nil {
		return nil, err
	}
	return record.Parse(format, b)
}

type adHocRequest struct {
	Schema *record.Schema  `json:"schema"`
	Record json.RawMessage `json:"record"`
}

// decodeAdHoc reads {"schema": ..., "record": ...}.
func decodeAdHoc(w http.ResponseWriter, r *http.Request) (*record.Schema, map[string]any, error) {
	dec := json.NewDecoder(limitBody(w, r))
	dec.DisallowUnknownFields()
	var req adHocRequest
	if err := dec.Decode(&req); err != nil {
		if status, _ := errorStatus(err); status != http.StatusInternalServerError {
			return nil, nil, err
		}
		return nil, nil, errors.Join(record.ErrInvalidRecord, err)
	}
	if req.Schema == nil {
		return nil, nil, fmt.Errorf("%w: missing schema", record.ErrInvalidSchema)
	}
	if len(req.Record) == 0 {
		return nil, nil, fmt.Errorf("%w: missing record", record.ErrInvalidRecord)
	}
	in, err := record.DecodeJSON(bytes.NewReader(req.Record))
	if err != nil {
		return nil, nil, err
	}
	return req.Schema, in, nil
}
