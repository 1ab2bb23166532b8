package types

import "time"

// RentalOrder is one checkout transaction. TotalPrice is computed from
// catalog prices at placement time and stored; it is never recomputed.
type RentalOrder struct {
	OrderID    int64
	Login      string // Owner.
	GameCount  int    // Number of distinct games in the order.
	TotalPrice float64
	OrderedAt  time.Time
	DueAt      time.Time
}

// OrderLine is one game within a rental order.
type OrderLine struct {
	OrderID int64
	GameID  string
	Units   int // Positive.
}

// Validate checks line invariants. Returns ErrInvalidUnits for a
// non-positive quantity.
func (l OrderLine) Validate() error {
	if l.Units <= 0 {
		return ErrInvalidUnits
	}
	return nil
}
