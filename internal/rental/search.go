package rental

import "strings"

// PriceSort directs the ordering of catalog search results.
type PriceSort int

// Price sort directives in menu presentation order.
const (
	SortNone PriceSort = iota
	SortAscending
	SortDescending
)

// String returns the menu label for the directive.
func (s PriceSort) String() string {
	switch s {
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	default:
		return "none"
	}
}

// Filter holds the catalog view settings chosen in the filter menu.
// Zero value means an unfiltered, unordered listing of the full catalog.
type Filter struct {
	// NameContains restricts results to entries whose name contains the
	// substring (case-sensitive). Empty means no name filter.
	NameContains string

	// Genre restricts results to an exact genre match. Empty means no
	// genre filter. The menu only offers genres present in the catalog.
	Genre string

	// PriceSort orders results by price when not SortNone.
	PriceSort PriceSort
}

// Build composes the parameterized catalog query for the filter. Name
// and genre predicates are ANDed when both are present; the ORDER BY
// clause is omitted for SortNone. Placeholders are numbered
// sequentially, as the store contract requires.
func (f Filter) Build() (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT gameid, gamename, genre, description, price FROM catalog")

	var predicates []string
	if f.NameContains != "" {
		args = append(args, f.NameContains)
		predicates = append(predicates, "gamename LIKE '%' || $1 || '%'")
	}
	if f.Genre != "" {
		args = append(args, f.Genre)
		if len(args) == 1 {
			predicates = append(predicates, "genre = $1")
		} else {
			predicates = append(predicates, "genre = $2")
		}
	}
	if len(predicates) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(predicates, " AND "))
	}

	switch f.PriceSort {
	case SortAscending:
		sb.WriteString(" ORDER BY price ASC")
	case SortDescending:
		sb.WriteString(" ORDER BY price DESC")
	}

	return sb.String(), args
}
