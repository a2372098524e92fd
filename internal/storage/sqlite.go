package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/darrenchooji/fiona/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    position INTEGER PRIMARY KEY,
    line TEXT NOT NULL
);`

// SQLiteStore keeps one record per row, ordered by position. Rows hold the
// same record text as the file backend.
type SQLiteStore struct {
	path   string
	conn   *sql.DB
	codec  *Codec
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the database at path
func OpenSQLite(path string, codec *Codec, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &domain.PersistenceError{Op: "open", Path: path, Err: fmt.Errorf("creating database directory: %w", err)}
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "open", Path: path, Err: fmt.Errorf("opening database: %w", err)}
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, &domain.PersistenceError{Op: "open", Path: path, Err: fmt.Errorf("creating schema: %w", err)}
	}

	return &SQLiteStore{path: path, conn: conn, codec: codec, logger: logger}, nil
}

func (s *SQLiteStore) Name() string {
	return "sqlite"
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Load returns the stored tasks in position order, skipping rows that do not decode.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT position, line FROM records ORDER BY position`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: fmt.Errorf("querying records: %w", err)}
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var (
			position int
			line     string
		)
		if err := rows.Scan(&position, &line); err != nil {
			return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: fmt.Errorf("scanning record: %w", err)}
		}
		if task, ok := s.codec.decodeLine(position, line); ok {
			tasks = append(tasks, task)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: fmt.Errorf("iterating records: %w", err)}
	}

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save replaces all rows inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, tasks []domain.Task) error {
	if err := s.replace(ctx, tasks); err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

func (s *SQLiteStore) replace(ctx context.Context, tasks []domain.Task) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (position, line) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, task := range tasks {
		if _, err := stmt.ExecContext(ctx, i+1, s.codec.Encode(task)); err != nil {
			return fmt.Errorf("inserting record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing records: %w", err)
	}
	return nil
}
