package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/recordkit/pkg/registry"
)

type handlers struct {
	reg *registry.Registry
	log *slog.Logger
}

type schemaList struct {
	Schemas []string `json:"schemas"`
}

func (h *handlers) listSchemas(w http.ResponseWriter, r *http.Request) {
	names, err := h.reg.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeData(w, http.StatusOK, schemaList{Schemas: names})
}

func (h *handlers) getSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := h.reg.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, schema)
}

func (h *handlers) putSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !registry.ValidName(name) {
		writeError(w, r, h.log, registry.ErrInvalidName)
		return
	}
	schema, err := decodeSchema(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := h.reg.Put(r.Context(), name, schema); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, schema)
}

func (h *handlers) deleteSchema(w http.ResponseWriter, r *http.Request) {
	if err := h.reg.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) validateStored(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	// Resolve the schema first so an unknown name is a 404 even when the
	// body is malformed.
	schema, err := h.reg.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	in, err := decodeRecord(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeResult(w, schema.Validate(in))
}

func (h *handlers) validateAdHoc(w http.ResponseWriter, r *http.Request) {
	schema, in, err := decodeAdHoc(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeResult(w, schema.Validate(in))
}
