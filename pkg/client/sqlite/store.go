// Package sqlite provides a SQLite-backed client record store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/client/sqlite/migrations"
)

// Store persists client records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite client store and applies embedded migrations.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: ping db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get implements client.Store.
func (s *Store) Get(ctx context.Context, id string) (client.Record, error) {
	if err := ctx.Err(); err != nil {
		return client.Record{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, address, phone, email, matter_number, court,
		        matter_type, charges, legal_aid, contribution, next_court
		   FROM clients
		  WHERE id = ?`,
		id,
	)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return client.Record{}, fmt.Errorf("%w: %q", client.ErrNotFound, id)
		}
		return client.Record{}, fmt.Errorf("sqlite: get client: %w", err)
	}
	rec.Letters, err = s.letters(ctx, id)
	if err != nil {
		return client.Record{}, err
	}
	return rec, nil
}

// Put implements client.Store.
func (s *Store) Put(ctx context.Context, rec client.Record) (client.Record, error) {
	if err := ctx.Err(); err != nil {
		return client.Record{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO clients (
		   id, name, address, phone, email, matter_number, court,
		   matter_type, charges, legal_aid, contribution, next_court
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   address = excluded.address,
		   phone = excluded.phone,
		   email = excluded.email,
		   matter_number = excluded.matter_number,
		   court = excluded.court,
		   matter_type = excluded.matter_type,
		   charges = excluded.charges,
		   legal_aid = excluded.legal_aid,
		   contribution = excluded.contribution,
		   next_court = excluded.next_court`,
		rec.ID, rec.Name, rec.Address, rec.Phone, rec.Email, rec.MatterNumber,
		rec.Court, rec.MatterType, rec.Charges, boolToInt(rec.LegalAid),
		rec.Contribution, rec.NextCourt,
	)
	if err != nil {
		return client.Record{}, fmt.Errorf("sqlite: put client: %w", err)
	}
	return rec, nil
}

// List implements client.Store.
func (s *Store) List(ctx context.Context) ([]client.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, address, phone, email, matter_number, court,
		        matter_type, charges, legal_aid, contribution, next_court
		   FROM clients
		  ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list clients: %w", err)
	}
	defer rows.Close()

	var out []client.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: list clients: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list clients: %w", err)
	}
	for i := range out {
		out[i].Letters, err = s.letters(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AppendLetter implements client.Store.
func (s *Store) AppendLetter(ctx context.Context, clientID string, letter client.Letter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.exists(ctx, clientID); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO letters (client_id, type, date, notes, sent)
		 VALUES (?, ?, ?, ?, ?)`,
		clientID, letter.Type, letter.Date, letter.Notes, boolToInt(letter.Sent),
	)
	if err != nil {
		return fmt.Errorf("sqlite: append letter: %w", err)
	}
	return nil
}

// MarkLetterSent implements client.Store.
func (s *Store) MarkLetterSent(ctx context.Context, clientID, letterType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.exists(ctx, clientID); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE letters SET sent = 1
		  WHERE id = (SELECT id FROM letters
		               WHERE client_id = ? AND type = ?
		               ORDER BY id DESC LIMIT 1)`,
		clientID, letterType,
	)
	if err != nil {
		return fmt.Errorf("sqlite: mark letter sent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: mark letter sent: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite: no %q letter on record %q", letterType, clientID)
	}
	return nil
}

func (s *Store) exists(ctx context.Context, clientID string) error {
	var found int
	err := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, clientID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", client.ErrNotFound, clientID)
	}
	if err != nil {
		return fmt.Errorf("sqlite: check client: %w", err)
	}
	return nil
}

func (s *Store) letters(ctx context.Context, clientID string) ([]client.Letter, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT type, date, notes, sent FROM letters
		  WHERE client_id = ? ORDER BY id ASC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load letters: %w", err)
	}
	defer rows.Close()

	var out []client.Letter
	for rows.Next() {
		var letter client.Letter
		var sent int
		if err := rows.Scan(&letter.Type, &letter.Date, &letter.Notes, &sent); err != nil {
			return nil, fmt.Errorf("sqlite: load letters: %w", err)
		}
		letter.Sent = sent != 0
		out = append(out, letter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: load letters: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (client.Record, error) {
	var rec client.Record
	var legalAid int
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Address, &rec.Phone, &rec.Email,
		&rec.MatterNumber, &rec.Court, &rec.MatterType, &rec.Charges,
		&legalAid, &rec.Contribution, &rec.NextCourt,
	)
	if err != nil {
		return client.Record{}, err
	}
	rec.LegalAid = legalAid != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// applyMigrations executes the embedded migration files in name order, each
// at most once, recording applied names in schema_migrations.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		var found int
		err := sqlDB.QueryRow(`SELECT 1 FROM schema_migrations WHERE name = ?`, file).Scan(&found)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %s: %w", file, err)
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		upSQL := extractUp(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		tx, err := sqlDB.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", file, err)
		}
		if _, err := tx.Exec(upSQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO schema_migrations (name, applied_at) VALUES (?, ?)`,
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// extractUp returns the SQL in the -- +migrate Up section.
func extractUp(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, "-- +migrate Down")
	if downIdx == -1 {
		return content[upIdx+len("-- +migrate Up"):]
	}
	return content[upIdx+len("-- +migrate Up") : downIdx]
}

var _ client.Store = (*Store)(nil)
