package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

type sqliteStore struct {
	db    *sql.DB
	limit int
}

const schema = `
CREATE TABLE IF NOT EXISTS blueprints (
    id           TEXT PRIMARY KEY,
    device_model TEXT NOT NULL UNIQUE,
    content      TEXT NOT NULL,
    fingerprint  TEXT NOT NULL,
    created_at   TIMESTAMP NOT NULL
);
`

// OpenSQLite opens (or creates) the on-disk history store. A failure here
// is not fatal to the application; the caller falls back to an empty
// in-memory history.
func OpenSQLite(ctx context.Context, path string, limit int) (Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	// Sanity read: a corrupt or foreign file surfaces here, not mid-session.
	if _, err := db.ExecContext(ctx, `SELECT COUNT(*) FROM blueprints`); err != nil {
		db.Close()
		return nil, fmt.Errorf("read history: %w", err)
	}
	return &sqliteStore{db: db, limit: limit}, nil
}

// Append replaces any record for the same device model, inserts the new one
// at the front, and prunes past the cap, all in one transaction. Insertion
// order is tracked by rowid, which is strictly increasing here because the
// replace is a delete plus insert.
func (s *sqliteStore) Append(ctx context.Context, b api.Blueprint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blueprints WHERE device_model = ?`, b.DeviceModel); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO blueprints(id, device_model, content, fingerprint, created_at) VALUES(?,?,?,?,?)`,
		b.ID, b.DeviceModel, b.Content, b.Fingerprint(), b.CreatedAt.UTC()); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM blueprints WHERE rowid NOT IN (SELECT rowid FROM blueprints ORDER BY rowid DESC LIMIT ?)`,
		s.limit); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) List(ctx context.Context) ([]api.Blueprint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, device_model, content, created_at FROM blueprints ORDER BY rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Blueprint
	for rows.Next() {
		b, err := scanBlueprint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Get(ctx context.Context, id string) (api.Blueprint, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, device_model, content, created_at FROM blueprints WHERE id = ?`, id)
	b, err := scanBlueprint(row)
	if err == sql.ErrNoRows {
		return api.Blueprint{}, ErrNotFound
	}
	return b, err
}

func (s *sqliteStore) Latest(ctx context.Context) (api.Blueprint, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, device_model, content, created_at FROM blueprints ORDER BY rowid DESC LIMIT 1`)
	b, err := scanBlueprint(row)
	if err == sql.ErrNoRows {
		return api.Blueprint{}, ErrNotFound
	}
	return b, err
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blueprints`)
	return err
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlueprint(r rowScanner) (api.Blueprint, error) {
	var b api.Blueprint
	var created time.Time
	if err := r.Scan(&b.ID, &b.DeviceModel, &b.Content, &created); err != nil {
		return api.Blueprint{}, err
	}
	b.CreatedAt = created.UTC()
	return b, nil
}
