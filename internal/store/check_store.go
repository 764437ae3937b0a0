package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Get when no record exists for a hash
var ErrNotFound = errors.New("check result not found")

// Record is the cached outcome of checking one source text
type Record struct {
	Hash       string    `json:"hash"`
	Path       string    `json:"path"`
	OK         bool      `json:"ok"`
	Message    string    `json:"message,omitempty"`
	Line       int       `json:"line,omitempty"`
	Column     int       `json:"column,omitempty"`
	Tokens     int       `json:"tokens"`
	Statements int       `json:"statements"`
	RunID      string    `json:"run_id"`
	CheckedAt  time.Time `json:"checked_at"`
}

// Stats summarizes the cache contents
type Stats struct {
	Total     int64
	Failed    int64
	LastCheck time.Time
}

// Store caches check results in SQLite, keyed by the hash of the source
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/checks.db",
	}
}

// HashSource returns the hex encoded SHA-256 of src
func HashSource(src string) string {
	sum := sha256.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// Open creates or opens the cache database at cfg.Path
func Open(cfg Config) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS check_results (
		hash TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		ok INTEGER NOT NULL,
		message TEXT,
		line_no INTEGER,
		column_no INTEGER,
		tokens INTEGER NOT NULL,
		statements INTEGER NOT NULL,
		run_id TEXT NOT NULL,
		checked_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_check_results_checked_at ON check_results(checked_at DESC);
	CREATE INDEX IF NOT EXISTS idx_check_results_path ON check_results(path);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Get returns the record for hash or ErrNotFound
func (s *Store) Get(ctx context.Context, hash string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		r       Record
		message sql.NullString
		line    sql.NullInt64
		column  sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT hash, path, ok, message, line_no, column_no, tokens, statements, run_id, checked_at
		FROM check_results WHERE hash = ?`, hash).
		Scan(&r.Hash, &r.Path, &r.OK, &message, &line, &column, &r.Tokens, &r.Statements, &r.RunID, &r.CheckedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query check result: %w", err)
	}

	r.Message = message.String
	r.Line = int(line.Int64)
	r.Column = int(column.Int64)
	return &r, nil
}

// Put inserts or replaces the record for r.Hash
func (s *Store) Put(ctx context.Context, r *Record) error {
	if r.Hash == "" {
		return errors.New("record hash is empty")
	}
	if r.CheckedAt.IsZero() {
		r.CheckedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO check_results (hash, path, ok, message, line_no, column_no, tokens, statements, run_id, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET
			path = excluded.path,
			ok = excluded.ok,
			message = excluded.message,
			line_no = excluded.line_no,
			column_no = excluded.column_no,
			tokens = excluded.tokens,
			statements = excluded.statements,
			run_id = excluded.run_id,
			checked_at = excluded.checked_at`,
		r.Hash, r.Path, r.OK, nullString(r.Message), nullInt(r.Line), nullInt(r.Column),
		r.Tokens, r.Statements, r.RunID, r.CheckedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to store check result: %w", err)
	}
	return nil
}

// Prune deletes records checked before now minus olderThan
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()
	result, err := s.db.ExecContext(ctx, `DELETE FROM check_results WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune check results: %w", err)
	}
	return result.RowsAffected()
}

// Stats returns counts over the cache
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		st   Stats
		last sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN ok = 0 THEN 1 ELSE 0 END), 0), MAX(checked_at)
		FROM check_results`).Scan(&st.Total, &st.Failed, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to query stats: %w", err)
	}
	if last.Valid {
		st.LastCheck = parseTime(last.String)
	}
	return st, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

// parseTime reads the aggregate timestamp, which the driver returns as text
func parseTime(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		time.RFC3339Nano,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
