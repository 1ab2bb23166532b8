// Package store implements the data-store collaborator for the game
// rental CLI: a thin statement-level wrapper around database/sql with a
// PostgreSQL backend for real deployments and an embedded SQLite backend
// for offline use and tests.
package store

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/dukaforge/gamerental/pkg/types"
)

// Store is the statement-level contract the rental layer consumes.
// Queries use positional $1..$n placeholders numbered sequentially;
// backends that bind differently rewrite them. Row values come back as
// text, with SQL NULL rendered as the empty string.
type Store interface {
	// Execute runs a statement that returns no rows.
	Execute(query string, args ...any) error

	// QueryCount runs a query and returns the number of rows it yields.
	QueryCount(query string, args ...any) (int, error)

	// QueryRows runs a query and returns every row as a slice of column
	// values in text form.
	QueryRows(query string, args ...any) ([][]string, error)

	// CurrentSequenceValue returns the most recent value assigned by the
	// named sequence in this session. Returns types.ErrSequenceUnset if
	// the sequence has not assigned a value yet.
	CurrentSequenceValue(name string) (int64, error)

	// Close releases the underlying connection. Idempotent.
	Close() error
}

// SeqRentalOrder is the generated-key sequence behind rentalorder IDs.
const SeqRentalOrder = "rentalorder_rentalorderid_seq"

// Open creates a Store for the configured backend. The returned store
// has verified connectivity; failures here are startup errors.
func Open(cfg types.Config, log *zap.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendPostgres:
		return openPostgres(cfg, log)
	case types.BackendSQLite:
		return openSQLite(cfg, log)
	default:
		return nil, types.ErrBackendUnknown
	}
}

// scanRowsAsText drains rows into text form, mapping NULL to "".
func scanRowsAsText(rows *sql.Rows) ([][]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	var out [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dests := make([]any, len(cols))
		for i := range values {
			dests[i] = &values[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		record := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		out = append(out, record)
	}
	return out, rows.Err()
}
