// Package mcpserver exposes the schema registry as Model Context Protocol
// tools so that agents can list schemas and validate records.
//
// Tools:
//
//   - list_schemas: names of the stored schemas
//   - get_schema: one schema document
//   - validate_record: validate a JSON object against a stored schema
//   - check_schema: parse a JSON or YAML schema document without storing it
//
// A rejected record is a successful tool call whose payload has
// "valid": false; only lookup and input errors are reported as tool errors.
package mcpserver
