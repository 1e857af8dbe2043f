// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records completed split runs in a SQLite database so past
// runs stay queryable: which document was split, with what threshold, and
// which section files came out. Recording is opt-in; the split itself keeps
// no state between invocations.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/propsplit/pkg/types"
)

// Store manages the split-run manifest database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the manifest database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating manifest directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document TEXT NOT NULL,
			threshold REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_sections (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			start_page INTEGER NOT NULL,
			end_page INTEGER NOT NULL,
			path TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun stores one completed split run and its section files. It
// returns the run ID.
func (s *Store) RecordRun(ctx context.Context, document string, threshold float64, files []types.SectionFile) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (document, threshold, created_at) VALUES (?, ?, ?)`,
		document, threshold, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_sections (run_id, position, name, start_page, end_page, path)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range files {
		if _, err := stmt.ExecContext(ctx, runID, i, f.Name, f.Start, f.End, f.Path); err != nil {
			return 0, fmt.Errorf("inserting section %s: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Run is one recorded split run with its section files.
type Run struct {
	ID        int64               `yaml:"id"`
	Document  string              `yaml:"document"`
	Threshold float64             `yaml:"threshold"`
	CreatedAt string              `yaml:"created_at"`
	Sections  []types.SectionFile `yaml:"sections"`
}

// Runs returns all recorded runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document, threshold, created_at FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Document, &r.Threshold, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		if runs[i].Sections, err = s.runSections(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) runSections(ctx context.Context, runID int64) ([]types.SectionFile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, start_page, end_page, path FROM run_sections
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying sections for run %d: %w", runID, err)
	}
	defer rows.Close()

	var files []types.SectionFile
	for rows.Next() {
		var f types.SectionFile
		if err := rows.Scan(&f.Name, &f.Start, &f.End, &f.Path); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// List prints recorded runs to w, one line per run with its sections
// indented beneath.
func (s *Store) List(ctx context.Context, w io.Writer) error {
	runs, err := s.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no recorded runs")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "run %d  %s  threshold %.2f  %s\n", r.ID, r.CreatedAt, r.Threshold, r.Document)
		for _, f := range r.Sections {
			fmt.Fprintf(w, "  %-45s pages %d-%d  %s\n", f.Name, f.Start+1, f.End, f.Path)
		}
	}
	return nil
}

// ExportYAML writes all recorded runs to w as a YAML document.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	runs, err := s.Runs(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling runs: %w", err)
	}
	_, err = w.Write(data)
	return err
}
