package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/gamerental/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// sqliteSequences maps the postgres sequence names the rental layer asks
// for to the sqlite tables whose AUTOINCREMENT counter stands in for them.
var sqliteSequences = map[string]string{
	SeqRentalOrder: "rentalorder",
}

// placeholderRe matches $1..$n positional placeholders.
var placeholderRe = regexp.MustCompile(`\$\d+`)

// sqliteStore implements Store on an embedded SQLite database. Used for
// offline runs and for tests that need a real SQL engine without a
// server.
type sqliteStore struct {
	db  *sql.DB
	log *zap.Logger
}

// openSQLite opens (creating if needed) the database file under the
// configured data directory and applies the embedded schema.
func openSQLite(cfg types.Config, log *zap.Logger) (Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	// case_sensitive_like matches the postgres LIKE contract; foreign_keys
	// turns on enforcement of the schema's REFERENCES clauses.
	dbPath := filepath.Join(dataDir, "gamerental.db")
	dsn := fmt.Sprintf("file:%s?_pragma=case_sensitive_like(1)&_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Single-writer: the interactive session is the only client.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	log.Info("opened sqlite database", zap.String("path", dbPath))

	return &sqliteStore{db: db, log: log}, nil
}

// rebind rewrites $1..$n placeholders to sqlite's ? form. Queries number
// their placeholders sequentially without reuse, so positional binding
// is preserved.
func rebind(query string) string {
	return placeholderRe.ReplaceAllString(query, "?")
}

// Execute runs a statement that returns no rows.
func (s *sqliteStore) Execute(query string, args ...any) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec(rebind(query), args...); err != nil {
		s.log.Error("statement failed", zap.Error(err))
		return fmt.Errorf("executing statement: %w", err)
	}
	return nil
}

// QueryCount runs a query and returns the number of rows it yields.
func (s *sqliteStore) QueryCount(query string, args ...any) (int, error) {
	rows, err := s.QueryRows(query, args...)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// QueryRows runs a query and returns every row in text form.
func (s *sqliteStore) QueryRows(query string, args ...any) ([][]string, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(rebind(query), args...)
	if err != nil {
		s.log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()
	return scanRowsAsText(rows)
}

// CurrentSequenceValue reads the AUTOINCREMENT counter of the table
// backing the named sequence.
func (s *sqliteStore) CurrentSequenceValue(name string) (int64, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}
	table, ok := sqliteSequences[name]
	if !ok {
		return 0, fmt.Errorf("unknown sequence %q", name)
	}
	var v int64
	err := s.db.QueryRow("SELECT seq FROM sqlite_sequence WHERE name = ?", table).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, types.ErrSequenceUnset
	}
	if err != nil {
		return 0, fmt.Errorf("reading sequence %s: %w", name, err)
	}
	return v, nil
}

// Close releases the database handle. Idempotent.
func (s *sqliteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Info("sqlite database closed")
	return err
}
