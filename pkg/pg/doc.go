// Package pg opens pgx connection pools and applies goose migrations.
//
// Connect retries with a linearly growing delay until the database answers
// a ping. Migrate runs the migrations found in an fs.FS (usually an
// embed.FS owned by the package that defines the tables) against the pool
// and routes goose output through slog.
package pg
