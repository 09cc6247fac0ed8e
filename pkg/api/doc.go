// Package api exposes the schema registry over HTTP.
//
// Routes:
//
//	GET    /schemas                  list schema names
//	GET    /schemas/{name}           fetch a schema
//	PUT    /schemas/{name}           create or replace a schema (JSON or YAML body)
//	DELETE /schemas/{name}           remove a schema
//	POST   /schemas/{name}/validate  validate a record against a stored schema
//	POST   /validate                 validate {"schema": ..., "record": ...}
//	GET    /health/live              liveness probe
//	GET    /health/ready             readiness probe
//
// Every JSON body is wrapped in {"data": ..., "error": {...}}. A rejected
// record is answered with 422, its violations under data and the
// per-field messages under error.details. Request bodies are limited to
// 1 MiB.
package api
