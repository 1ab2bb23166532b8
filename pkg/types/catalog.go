package types

// CatalogEntry is one rentable game listing. Created and edited only by
// managers.
type CatalogEntry struct {
	GameID      string
	Name        string
	Genre       string
	Price       float64 // Non-negative.
	Description string
	ImageURL    string
}

// Validate checks entry invariants. Returns ErrInvalidPrice for a
// negative price.
func (e CatalogEntry) Validate() error {
	if e.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
