// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry records generation runs in a SQLite database so the CLI
// can list, inspect, and forget previously generated profiles. The
// registry is bookkeeping only: removing an entry never touches the
// generated files on disk.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "registry.db"

// Registry is the profile generation registry.
type Registry struct {
	db *sql.DB
}

// Entry is one registered profile, reflecting its most recent run.
type Entry struct {
	Name         string
	Title        string
	Dir          string
	RunID        string
	GeneratedAt  time.Time
	Requirements int
	Tests        int
	Files        []string
}

// Run describes a completed generation for recording.
type Run struct {
	Name         string
	Title        string
	Dir          string
	Requirements int
	Tests        int
	Files        []string
}

// NotFoundError reports a profile name with no registry entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %s is not registered", e.Name)
}

// Open opens or creates the registry database at dir/registry.db and
// creates the schema if it does not exist.
func Open(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating registry directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening registry database: %w", err)
	}

	r := &Registry{db: db}
	if err := r.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return r, nil
}

// Close releases the database connection.
func (r *Registry) Close() error {
	return r.db.Close()
}

func (r *Registry) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			title TEXT,
			dir TEXT,
			run_id TEXT NOT NULL,
			generated_at TEXT NOT NULL,
			requirements INTEGER NOT NULL,
			tests INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS artifacts (
			profile_name TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			PRIMARY KEY (profile_name, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record registers a completed run, replacing any previous entry for the
// same profile name. It returns the run identifier.
func (r *Registry) Record(ctx context.Context, run Run) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	generatedAt := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (name, title, dir, run_id, generated_at, requirements, tests)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			title=excluded.title, dir=excluded.dir, run_id=excluded.run_id,
			generated_at=excluded.generated_at,
			requirements=excluded.requirements, tests=excluded.tests`,
		run.Name, run.Title, run.Dir, runID, generatedAt, run.Requirements, run.Tests,
	)
	if err != nil {
		return "", fmt.Errorf("upserting profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM artifacts WHERE profile_name = ?`, run.Name); err != nil {
		return "", fmt.Errorf("clearing old artifacts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO artifacts (profile_name, position, path) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, path := range run.Files {
		if _, err := stmt.ExecContext(ctx, run.Name, i, path); err != nil {
			return "", fmt.Errorf("inserting artifact %s: %w", path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return runID, nil
}

// List returns every registered profile ordered by name. Artifact lists
// are not populated; use Show for a single profile's detail.
func (r *Registry) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, title, dir, run_id, generated_at, requirements, tests
		 FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Show returns the registered entry for one profile, including its
// artifact list in generation order.
func (r *Registry) Show(ctx context.Context, name string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, title, dir, run_id, generated_at, requirements, tests
		 FROM profiles WHERE name = ?`, name)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Name: name}
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT path FROM artifacts WHERE profile_name = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scanning artifact: %w", err)
		}
		e.Files = append(e.Files, path)
	}
	return &e, rows.Err()
}

// Remove deletes a profile's registry entry and its artifact rows.
func (r *Registry) Remove(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deletion: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Name: name}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var generatedAt string
	err := row.Scan(&e.Name, &e.Title, &e.Dir, &e.RunID, &generatedAt, &e.Requirements, &e.Tests)
	if err == sql.ErrNoRows {
		return Entry{}, err
	}
	if err != nil {
		return Entry{}, fmt.Errorf("scanning profile: %w", err)
	}
	if t, perr := time.Parse(time.RFC3339, generatedAt); perr == nil {
		e.GeneratedAt = t
	}
	return e, nil
}
