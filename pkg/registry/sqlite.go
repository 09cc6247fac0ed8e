package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS record_schemas (
    name       TEXT PRIMARY KEY,
    definition TEXT NOT NULL,
    updated_at TEXT NOT NULL
)`

// SQLiteStore keeps schemas in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database file at path and
// prepares the record_schemas table.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Join(ErrStore, err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	// One writer at a time avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s, err := NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore uses an already opened database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("%w: create table: %w", ErrStore, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database file is usable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	var def string
	err := s.db.QueryRowContext(ctx,
		`SELECT definition FROM record_schemas WHERE name = ?`, name,
	).Scan(&def)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	schema, err := record.ParseJSON([]byte(def))
	if err != nil {
		return nil, errors.Join(ErrCorruptSchema, err)
	}
	return schema, nil
}

func (s *SQLiteStore) Put(ctx context.Context, name string, schema *record.Schema) error {
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
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO record_schemas (name, definition, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET definition = excluded.definition, updated_at = excluded.updated_at`,
		name, string(def), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM record_schemas WHERE name = ?`, name)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if n == 0 {
		return notFound(name)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM record_schemas ORDER BY name`)
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Join(ErrStore, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	return names, nil
}
