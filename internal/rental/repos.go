package rental

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dukaforge/gamerental/internal/store"
)

// Repos bundles the repositories sharing one store connection.
type Repos struct {
	Users    *UserRepository
	Catalog  *CatalogRepository
	Orders   *OrderRepository
	Tracking *TrackingRepository
}

// New creates the repository set over the given store.
func New(st store.Store) *Repos {
	users := &UserRepository{store: st}
	catalog := &CatalogRepository{store: st}
	tracking := &TrackingRepository{store: st}
	orders := &OrderRepository{store: st, catalog: catalog, tracking: tracking}
	return &Repos{
		Users:    users,
		Catalog:  catalog,
		Orders:   orders,
		Tracking: tracking,
	}
}

// timeFormats lists the textual timestamp layouts the two backends
// produce. RFC3339Nano covers postgres values passed through
// database/sql; the plain layout covers values written by older rows.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseStoredTime parses a timestamp column value. A value that matches
// no known layout yields the zero time; timestamps are display-only.
func parseStoredTime(s string) time.Time {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// formatStoredTime renders a timestamp for insertion. Both backends
// accept RFC3339 text.
func formatStoredTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parsePrice parses a numeric column value.
func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", s, err)
	}
	return v, nil
}
