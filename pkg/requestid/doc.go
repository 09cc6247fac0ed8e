// Package requestid tags every HTTP request with a correlation id.
//
// The middleware reuses a well-formed id sent by the client in the
// X-Request-ID header and generates a UUIDv4 otherwise. The id is echoed in
// the response header and stored in the request context, where
// LoggerExtractor picks it up for structured logs:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
