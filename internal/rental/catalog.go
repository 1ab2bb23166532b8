package rental

import (
	"fmt"

	"github.com/dukaforge/gamerental/internal/store"
	"github.com/dukaforge/gamerental/pkg/types"
)

// CatalogRepository persists and searches the game catalog.
type CatalogRepository struct {
	store store.Store
}

const catalogColumns = "gameid, gamename, genre, price, description, imageurl"

// Get returns the catalog entry with the given game ID, or
// types.ErrNotFound.
func (r *CatalogRepository) Get(gameID string) (types.CatalogEntry, error) {
	rows, err := r.store.QueryRows(
		"SELECT "+catalogColumns+" FROM catalog WHERE gameid = $1",
		gameID,
	)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("loading catalog entry: %w", err)
	}
	if len(rows) == 0 {
		return types.CatalogEntry{}, types.ErrNotFound
	}
	return hydrateEntry(rows[0])
}

// Genres returns the distinct genres currently present in the catalog,
// sorted alphabetically. An empty catalog yields an empty list.
func (r *CatalogRepository) Genres() ([]string, error) {
	rows, err := r.store.QueryRows("SELECT DISTINCT genre FROM catalog ORDER BY genre")
	if err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}
	genres := make([]string, 0, len(rows))
	for _, row := range rows {
		genres = append(genres, row[0])
	}
	return genres, nil
}

// Search runs the filtered catalog listing. Zero results is not an
// error; the caller reports it and keeps the filter.
func (r *CatalogRepository) Search(f Filter) ([]types.CatalogEntry, error) {
	query, args := f.Build()
	rows, err := r.store.QueryRows(query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	entries := make([]types.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		price, err := parsePrice(row[4])
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.CatalogEntry{
			GameID:      row[0],
			Name:        row[1],
			Genre:       row[2],
			Description: row[3],
			Price:       price,
		})
	}
	return entries, nil
}

// SearchByName returns entries whose name contains the given substring,
// in game ID order.
func (r *CatalogRepository) SearchByName(contains string) ([]types.CatalogEntry, error) {
	rows, err := r.store.QueryRows(
		"SELECT "+catalogColumns+" FROM catalog WHERE gamename LIKE '%' || $1 || '%' ORDER BY gameid",
		contains,
	)
	if err != nil {
		return nil, fmt.Errorf("searching catalog by name: %w", err)
	}
	entries := make([]types.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		e, err := hydrateEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Create inserts a new catalog entry.
func (r *CatalogRepository) Create(e types.CatalogEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	err := r.store.Execute(
		"INSERT INTO catalog (gameid, gamename, genre, price, description, imageurl) VALUES ($1, $2, $3, $4, $5, $6)",
		e.GameID, e.Name, e.Genre, e.Price, e.Description, e.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("creating catalog entry %s: %w", e.GameID, err)
	}
	return nil
}

// Update writes every editable field of the entry in a single statement,
// keyed by game ID.
func (r *CatalogRepository) Update(e types.CatalogEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	err := r.store.Execute(
		"UPDATE catalog SET gamename = $1, genre = $2, price = $3, description = $4, imageurl = $5 WHERE gameid = $6",
		e.Name, e.Genre, e.Price, e.Description, e.ImageURL, e.GameID,
	)
	if err != nil {
		return fmt.Errorf("updating catalog entry %s: %w", e.GameID, err)
	}
	return nil
}

// hydrateEntry converts a full catalog row to a CatalogEntry.
func hydrateEntry(row []string) (types.CatalogEntry, error) {
	price, err := parsePrice(row[3])
	if err != nil {
		return types.CatalogEntry{}, err
	}
	return types.CatalogEntry{
		GameID:      row[0],
		Name:        row[1],
		Genre:       row[2],
		Price:       price,
		Description: row[4],
		ImageURL:    row[5],
	}, nil
}
