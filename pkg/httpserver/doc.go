// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown, and provides liveness/readiness handlers.
//
// Run binds the listener before returning control to the caller's hooks, so
// address errors surface as ErrStart instead of being lost in a goroutine.
// The server stops when the context passed to Run is cancelled, when the
// process receives SIGINT or SIGTERM, or when Shutdown is called.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler reports "alive" when given no checks and "ready" when
// every named check passes; a failing check turns the response into 503.
package httpserver
