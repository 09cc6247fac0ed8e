package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

type options struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	log               *slog.Logger
	onStart           []func(addr string)
	onStop            []func()
}

func defaultOptions() options {
	return options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   10 * time.Second,
	}
}

// WithAddr sets the listen address. Use "127.0.0.1:0" to pick a free port.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	return durationOption("read timeout", d, func(o *options) { o.readTimeout = d })
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return durationOption("read header timeout", d, func(o *options) { o.readHeaderTimeout = d })
}

func WithWriteTimeout(d time.Duration) Option {
	return durationOption("write timeout", d, func(o *options) { o.writeTimeout = d })
}

func WithIdleTimeout(d time.Duration) Option {
	return durationOption("idle timeout", d, func(o *options) { o.idleTimeout = d })
}

// WithShutdownTimeout bounds how long in-flight requests may take to drain.
func WithShutdownTimeout(d time.Duration) Option {
	return durationOption("shutdown timeout", d, func(o *options) { o.shutdownTimeout = d })
}

func durationOption(name string, d time.Duration, apply Option) Option {
	if d <= 0 {
		panic("httpserver: " + name + " must be positive")
	}
	return apply
}

// WithLogger sets the server logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// OnStart registers fn to run once the listener is bound. It receives the
// actual listen address.
func OnStart(fn func(addr string)) Option {
	if fn == nil {
		panic("httpserver: nil start hook")
	}
	return func(o *options) { o.onStart = append(o.onStart, fn) }
}

// OnStop registers fn to run after the server has shut down.
func OnStop(fn func()) Option {
	if fn == nil {
		panic("httpserver: nil stop hook")
	}
	return func(o *options) { o.onStop = append(o.onStop, fn) }
}
