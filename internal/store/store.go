package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// MemoryDSN opens a journal that lives only for the current process.
// Game state is never persisted across runs; the journal exists so the
// history screen and the llm subcommands can query what happened.
const MemoryDSN = ":memory:"

// Store holds the database handle and provides access to the event repo.
type Store struct {
	db *sql.DB
}

// Open creates a new Store at dsn. Use MemoryDSN for a run-scoped journal,
// or a file path (via --journal) to keep the journal for later inspection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// An in-memory database disappears if its only connection closes.
	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user access.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// createTables creates the journal tables if they don't exist.
func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS llm_request_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     TEXT NOT NULL,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS answer_events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      TEXT NOT NULL,
			run_id         TEXT NOT NULL,
			mode           TEXT NOT NULL,
			question_text  TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			player_answer  TEXT NOT NULL,
			correct        INTEGER NOT NULL,
			score_delta    INTEGER NOT NULL DEFAULT 0,
			streak_after   INTEGER NOT NULL DEFAULT 0,
			time_ms        INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// ResolveDSN picks the journal DSN: an explicit path wins, otherwise the
// journal is memory-only for the run.
func ResolveDSN(journalPath string) (string, error) {
	if journalPath == "" {
		return MemoryDSN, nil
	}
	if err := ensureDir(journalPath); err != nil {
		return "", err
	}
	return journalPath, nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
