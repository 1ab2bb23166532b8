package rental

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/gamerental/internal/store"
	"github.com/dukaforge/gamerental/pkg/types"
)

// TrackingRepository persists shipment tracking records. Every
// successfully placed order has exactly one.
type TrackingRepository struct {
	store store.Store
}

const trackingColumns = "trackingid, rentalorderid, couriername, currentlocation, status, lastupdatedate, additionalcomments"

// ForOrder returns the tracking record of the given order, or
// types.ErrNotFound.
func (r *TrackingRepository) ForOrder(orderID int64) (types.TrackingInfo, error) {
	rows, err := r.store.QueryRows(
		"SELECT "+trackingColumns+" FROM trackinginfo WHERE rentalorderid = $1",
		orderID,
	)
	if err != nil {
		return types.TrackingInfo{}, fmt.Errorf("loading tracking for order %d: %w", orderID, err)
	}
	if len(rows) == 0 {
		return types.TrackingInfo{}, types.ErrNotFound
	}
	return hydrateTracking(rows[0])
}

// Create inserts a fresh tracking record for the order: generated UUID,
// default status, no courier yet.
func (r *TrackingRepository) Create(orderID int64) (types.TrackingInfo, error) {
	info := types.TrackingInfo{
		TrackingID: uuid.NewString(),
		OrderID:    orderID,
		Status:     types.DefaultTrackingStatus,
		LastUpdate: time.Now(),
	}
	err := r.store.Execute(
		"INSERT INTO trackinginfo (trackingid, rentalorderid, couriername, currentlocation, status, lastupdatedate, additionalcomments) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		info.TrackingID, info.OrderID, info.Courier, info.Location,
		info.Status, formatStoredTime(info.LastUpdate), info.Comments,
	)
	if err != nil {
		return types.TrackingInfo{}, fmt.Errorf("creating tracking for order %d: %w", orderID, err)
	}
	return info, nil
}

// Update writes every editable field of the record in a single
// statement, keyed by tracking ID, and refreshes the last-update
// timestamp. The status is validated against the closed enum before any
// statement is built.
func (r *TrackingRepository) Update(info types.TrackingInfo) error {
	if !types.ValidTrackingStatus(info.Status) {
		return types.ErrInvalidStatus
	}
	err := r.store.Execute(
		"UPDATE trackinginfo SET couriername = $1, currentlocation = $2, status = $3, lastupdatedate = $4, additionalcomments = $5 WHERE trackingid = $6",
		info.Courier, info.Location, info.Status,
		formatStoredTime(time.Now()), info.Comments, info.TrackingID,
	)
	if err != nil {
		return fmt.Errorf("updating tracking %s: %w", info.TrackingID, err)
	}
	return nil
}

// hydrateTracking converts a store row to a TrackingInfo.
func hydrateTracking(row []string) (types.TrackingInfo, error) {
	orderID, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return types.TrackingInfo{}, fmt.Errorf("parsing order id %q: %w", row[1], err)
	}
	return types.TrackingInfo{
		TrackingID: row[0],
		OrderID:    orderID,
		Courier:    row[2],
		Location:   row[3],
		Status:     row[4],
		LastUpdate: parseStoredTime(row[5]),
		Comments:   row[6],
	}, nil
}
