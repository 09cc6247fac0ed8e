package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidConfig           = errors.New("invalid postgres config")
	ErrConnect                 = errors.New("failed to connect to postgres")
	ErrHealthcheckFailed       = errors.New("postgres healthcheck failed")
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
	ErrNoMigrations            = errors.New("no migrations source")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
