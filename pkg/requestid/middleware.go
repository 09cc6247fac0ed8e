package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the request and response header carrying the id.
const Header = "X-Request-ID"

const maxLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Option configures the middleware built by New.
type Option func(*middleware)

type middleware struct {
	header   string
	generate func() string
	trust    bool
}

// WithHeader reads and writes the id under a different header name.
func WithHeader(name string) Option {
	return func(m *middleware) {
		if name != "" {
			m.header = http.CanonicalHeaderKey(name)
		}
	}
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(m *middleware) {
		if fn != nil {
			m.generate = fn
		}
	}
}

// IgnoreIncoming always generates a fresh id, ignoring the client header.
func IgnoreIncoming() Option {
	return func(m *middleware) { m.trust = false }
}

// New builds a request id middleware.
func New(opts ...Option) func(http.Handler) http.Handler {
	m := &middleware{
		header:   Header,
		generate: uuid.NewString,
		trust:    true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m.wrap
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func (m *middleware) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if m.trust {
			id = r.Header.Get(m.header)
		}
		if !Valid(id) {
			id = m.generate()
		}
		w.Header().Set(m.header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// Valid reports whether id is acceptable as a client supplied request id.
func Valid(id string) bool {
	return id != "" && len(id) <= maxLength && validID.MatchString(id)
}
