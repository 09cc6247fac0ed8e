package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/registry"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
)

// Option configures the router.
type Option func(*options)

type options struct {
	log    *slog.Logger
	checks map[string]httpserver.Check
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithReadinessCheck adds a named check to /health/ready.
func WithReadinessCheck(name string, check httpserver.Check) Option {
	return func(o *options) {
		if check != nil {
			o.checks[name] = check
		}
	}
}

// NewRouter builds the HTTP handler for reg.
func NewRouter(reg *registry.Registry, opts ...Option) http.Handler {
	o := options{log: logger.Discard(), checks: map[string]httpserver.Check{}}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With(logger.Component("api"))
	h := &handlers{reg: reg, log: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(log, nil))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, o.checks))

	r.Route("/schemas", func(r chi.Router) {
		r.Get("/", h.listSchemas)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.getSchema)
			r.Put("/", h.putSchema)
			r.Delete("/", h.deleteSchema)
			r.Post("/validate", h.validateStored)
		})
	})
	r.Post("/validate", h.validateAdHoc)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Envelope{Error: &ErrorDetail{Code: "not_found", Message: "route not found"}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Envelope{Error: &ErrorDetail{Code: "method_not_allowed", Message: http.StatusText(http.StatusMethodNotAllowed)}})
	})
	return r
}
