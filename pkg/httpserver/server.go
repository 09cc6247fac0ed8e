package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

// Server runs a single http.Server. A Server can be run once.
type Server struct {
	opts options

	mu   sync.Mutex
	srv  *http.Server
	addr string

	stopOnce sync.Once
	stopErr  error
}

func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Discard()
	}
	o.log = o.log.With(logger.Component("httpserver"))
	return &Server{opts: o}
}

// Addr returns the bound address, or "" before Run has bound the listener.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler until ctx is cancelled, a termination signal arrives or
// Shutdown is called. A nil handler serves 404 for everything.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.srv = &http.Server{
		Handler:           handler,
		ReadTimeout:       s.opts.readTimeout,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.opts.log.Handler(), slog.LevelWarn),
	}
	s.addr = ln.Addr().String()
	srv := s.srv
	s.mu.Unlock()

	s.opts.log.InfoContext(ctx, "HTTP server listening", slog.String("addr", s.addr))
	for _, fn := range s.opts.onStart {
		fn(s.addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var serveErr error
	select {
	case <-ctx.Done():
		s.opts.log.Info("context cancelled, shutting down")
	case sig := <-sigCh:
		s.opts.log.Info("signal received, shutting down", slog.String("signal", sig.String()))
	case serveErr = <-errCh:
	}

	// Shutdown is idempotent; when it was already called, this returns
	// the recorded result.
	shutdownErr := s.Shutdown(context.WithoutCancel(ctx))
	if serveErr == nil {
		serveErr = <-errCh
	}
	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, serveErr)
	}
	return shutdownErr
}

// Shutdown drains in-flight requests within the configured shutdown
// timeout. Repeated calls return the first result. Calling it before Run is
// a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.stopErr = errors.Join(ErrShutdown, err)
			s.opts.log.ErrorContext(ctx, "graceful shutdown failed", logger.Error(err))
		}
		for _, fn := range s.opts.onStop {
			fn()
		}
		s.opts.log.Info("HTTP server stopped")
	})
	return s.stopErr
}
