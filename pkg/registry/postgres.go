package registry

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/recordkit/pkg/pg"
	"github.com/dmitrymomot/recordkit/pkg/record"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigratePostgres creates or upgrades the record_schemas table. table names
// the goose version table.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool, table string, log *slog.Logger) error {
	return pg.Migrate(ctx, pool, migrations, "migrations", table, log)
}

// PostgresStore keeps schemas in the record_schemas table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	var def []byte
	err := s.pool.QueryRow(ctx,
		`SELECT definition FROM record_schemas WHERE name = $1`, name,
	).Scan(&def)
	if pg.IsNotFoundError(err) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	schema, err := record.ParseJSON(def)
	if err != nil {
		return nil, errors.Join(ErrCorruptSchema, err)
	}
	return schema, nil
}

func (s *PostgresStore) Put(ctx context.Context, name string, schema *record.Schema) error {
	if err := checkName(name); err != nil {
		return err
	}
	if schema == nil {
		return ErrNilSchema
	}
	def, err := json.Marshal(schema)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO record_schemas (name, definition)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET definition = EXCLUDED.definition, updated_at = now()`,
		name, string(def),
	)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM record_schemas WHERE name = $1`, name)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(name)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT name FROM record_schemas ORDER BY name COLLATE "C"`)
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	return names, nil
}
