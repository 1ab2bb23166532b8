package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/dukaforge/gamerental/pkg/types"
)

// Connection pool settings. One interactive session drives one logical
// thread of control, so the pool stays small.
const (
	pgMaxOpenConns    = 2
	pgMaxIdleConns    = 1
	pgConnMaxLifetime = time.Hour
)

// pgSequenceUndefinedClass is the PostgreSQL error class raised by
// currval() before the sequence has assigned a value in this session.
const pgSequenceUndefinedClass = "55"

// postgresStore implements Store on a PostgreSQL connection via lib/pq.
type postgresStore struct {
	db  *sql.DB
	log *zap.Logger
}

// openPostgres connects to PostgreSQL, verifies the connection with a
// ping, and returns the store.
func openPostgres(cfg types.Config, log *zap.Logger) (Store, error) {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		host, cfg.Port, cfg.Database, cfg.User, cfg.Password)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	db.SetConnMaxLifetime(pgConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres %s:%d/%s: %w",
			host, cfg.Port, cfg.Database, err)
	}

	log.Info("connected to postgres",
		zap.String("host", host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.String("user", cfg.User))

	return &postgresStore{db: db, log: log}, nil
}

// Execute runs a statement that returns no rows.
func (s *postgresStore) Execute(query string, args ...any) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		s.log.Error("statement failed", zap.Error(err))
		return fmt.Errorf("executing statement: %w", err)
	}
	return nil
}

// QueryCount runs a query and returns the number of rows it yields.
func (s *postgresStore) QueryCount(query string, args ...any) (int, error) {
	rows, err := s.QueryRows(query, args...)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// QueryRows runs a query and returns every row in text form.
func (s *postgresStore) QueryRows(query string, args ...any) ([][]string, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()
	return scanRowsAsText(rows)
}

// CurrentSequenceValue returns currval of the named sequence.
func (s *postgresStore) CurrentSequenceValue(name string) (int64, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}
	var v int64
	err := s.db.QueryRow("SELECT currval($1)", name).Scan(&v)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == pgSequenceUndefinedClass {
			return 0, types.ErrSequenceUnset
		}
		return 0, fmt.Errorf("reading sequence %s: %w", name, err)
	}
	return v, nil
}

// Close releases the connection. Idempotent.
func (s *postgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Info("postgres connection closed")
	return err
}
