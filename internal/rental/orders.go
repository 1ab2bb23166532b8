package rental

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dukaforge/gamerental/internal/store"
	"github.com/dukaforge/gamerental/pkg/types"
)

// RentalPeriod is the loan window assigned to every order at placement.
const RentalPeriod = 14 * 24 * time.Hour

// OrderRepository persists rental orders and their line items, and
// drives order placement.
type OrderRepository struct {
	store    store.Store
	catalog  *CatalogRepository
	tracking *TrackingRepository
}

const orderColumns = "rentalorderid, login, noofgames, totalprice, ordertimestamp, duedate"

// Place executes a full order placement: every line is validated against
// the catalog, the total is computed from current catalog prices, then
// the order header, one row per line, and exactly one tracking record
// are inserted. The generated order ID is read back from the order
// sequence, which is sound under the single-session contract of this
// program.
//
// The inserts are sequential, not transactional: a store failure after
// the header insert leaves partial writes. The error is surfaced to the
// caller; there are no compensating deletes (see DESIGN.md).
func (r *OrderRepository) Place(login string, lines []types.OrderLine) (types.RentalOrder, error) {
	if len(lines) == 0 {
		return types.RentalOrder{}, fmt.Errorf("order must contain at least one game")
	}

	// Validate lines and compute the total from catalog prices as they
	// are right now.
	var total float64
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return types.RentalOrder{}, err
		}
		entry, err := r.catalog.Get(line.GameID)
		if err != nil {
			return types.RentalOrder{}, fmt.Errorf("game %s: %w", line.GameID, err)
		}
		total += entry.Price * float64(line.Units)
	}

	now := time.Now()
	order := types.RentalOrder{
		Login:      login,
		GameCount:  len(lines),
		TotalPrice: total,
		OrderedAt:  now,
		DueAt:      now.Add(RentalPeriod),
	}

	err := r.store.Execute(
		"INSERT INTO rentalorder (login, noofgames, totalprice, ordertimestamp, duedate) VALUES ($1, $2, $3, $4, $5)",
		order.Login, order.GameCount, order.TotalPrice,
		formatStoredTime(order.OrderedAt), formatStoredTime(order.DueAt),
	)
	if err != nil {
		return types.RentalOrder{}, fmt.Errorf("inserting order: %w", err)
	}

	orderID, err := r.store.CurrentSequenceValue(store.SeqRentalOrder)
	if err != nil {
		return types.RentalOrder{}, fmt.Errorf("reading generated order id: %w", err)
	}
	order.OrderID = orderID

	for _, line := range lines {
		err := r.store.Execute(
			"INSERT INTO gamesinorder (rentalorderid, gameid, unitsordered) VALUES ($1, $2, $3)",
			orderID, line.GameID, line.Units,
		)
		if err != nil {
			return types.RentalOrder{}, fmt.Errorf("inserting line %s for order %d: %w", line.GameID, orderID, err)
		}
	}

	if _, err := r.tracking.Create(orderID); err != nil {
		return types.RentalOrder{}, err
	}

	return order, nil
}

// Get returns the order with the given ID, or types.ErrNotFound.
func (r *OrderRepository) Get(orderID int64) (types.RentalOrder, error) {
	rows, err := r.store.QueryRows(
		"SELECT "+orderColumns+" FROM rentalorder WHERE rentalorderid = $1",
		orderID,
	)
	if err != nil {
		return types.RentalOrder{}, fmt.Errorf("loading order %d: %w", orderID, err)
	}
	if len(rows) == 0 {
		return types.RentalOrder{}, types.ErrNotFound
	}
	return hydrateOrder(rows[0])
}

// History returns all orders of the given user, most recent first.
func (r *OrderRepository) History(login string) ([]types.RentalOrder, error) {
	rows, err := r.store.QueryRows(
		"SELECT "+orderColumns+" FROM rentalorder WHERE login = $1 ORDER BY ordertimestamp DESC, rentalorderid DESC",
		login,
	)
	if err != nil {
		return nil, fmt.Errorf("loading order history: %w", err)
	}
	return hydrateOrders(rows)
}

// Recent returns the n most recent orders of the given user.
func (r *OrderRepository) Recent(login string, n int) ([]types.RentalOrder, error) {
	rows, err := r.store.QueryRows(
		"SELECT "+orderColumns+" FROM rentalorder WHERE login = $1 ORDER BY ordertimestamp DESC, rentalorderid DESC LIMIT $2",
		login, n,
	)
	if err != nil {
		return nil, fmt.Errorf("loading recent orders: %w", err)
	}
	return hydrateOrders(rows)
}

// Lines returns the line items of the given order, joined with the game
// names for display, in game ID order.
func (r *OrderRepository) Lines(orderID int64) ([]types.OrderLine, []string, error) {
	rows, err := r.store.QueryRows(
		"SELECT g.gameid, g.unitsordered, c.gamename FROM gamesinorder g JOIN catalog c ON c.gameid = g.gameid WHERE g.rentalorderid = $1 ORDER BY g.gameid",
		orderID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("loading order lines: %w", err)
	}
	lines := make([]types.OrderLine, 0, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		units, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, nil, fmt.Errorf("parsing units %q: %w", row[1], err)
		}
		lines = append(lines, types.OrderLine{OrderID: orderID, GameID: row[0], Units: units})
		names = append(names, row[2])
	}
	return lines, names, nil
}

// hydrateOrder converts a store row to a RentalOrder.
func hydrateOrder(row []string) (types.RentalOrder, error) {
	orderID, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return types.RentalOrder{}, fmt.Errorf("parsing order id %q: %w", row[0], err)
	}
	count, err := strconv.Atoi(row[2])
	if err != nil {
		return types.RentalOrder{}, fmt.Errorf("parsing game count %q: %w", row[2], err)
	}
	total, err := parsePrice(row[3])
	if err != nil {
		return types.RentalOrder{}, err
	}
	return types.RentalOrder{
		OrderID:    orderID,
		Login:      row[1],
		GameCount:  count,
		TotalPrice: total,
		OrderedAt:  parseStoredTime(row[4]),
		DueAt:      parseStoredTime(row[5]),
	}, nil
}

// hydrateOrders converts store rows to RentalOrders.
func hydrateOrders(rows [][]string) ([]types.RentalOrder, error) {
	orders := make([]types.RentalOrder, 0, len(rows))
	for _, row := range rows {
		o, err := hydrateOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
