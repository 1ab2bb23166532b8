package types

import "time"

// Tracking statuses. The set is closed; the store rejects anything else
// before an update statement is built.
const (
	StatusDelayed           = "Delayed"
	StatusInTransit         = "In Transit"
	StatusArrivedAtFacility = "Arrived at Facility"
	StatusOutForDelivery    = "Out for Delivery"
	StatusReturnedToSender  = "Returned to Sender"
	StatusAttemptedDelivery = "Attempted Delivery"
	StatusReadyForPickup    = "Ready for Pickup"
	StatusDelivered         = "Delivered"
)

// DefaultTrackingStatus is assigned to the tracking record created with
// every successful order placement, before a courier is involved.
const DefaultTrackingStatus = StatusReadyForPickup

// validTrackingStatuses is the set of recognized status values.
var validTrackingStatuses = map[string]bool{
	StatusDelayed:           true,
	StatusInTransit:         true,
	StatusArrivedAtFacility: true,
	StatusOutForDelivery:    true,
	StatusReturnedToSender:  true,
	StatusAttemptedDelivery: true,
	StatusReadyForPickup:    true,
	StatusDelivered:         true,
}

// ValidTrackingStatus reports whether status is one of the recognized
// tracking status values.
func ValidTrackingStatus(status string) bool {
	return validTrackingStatuses[status]
}

// TrackingStatuses returns the status values in menu presentation order.
func TrackingStatuses() []string {
	return []string{
		StatusDelayed,
		StatusInTransit,
		StatusArrivedAtFacility,
		StatusOutForDelivery,
		StatusReturnedToSender,
		StatusAttemptedDelivery,
		StatusReadyForPickup,
		StatusDelivered,
	}
}

// TrackingInfo is the shipment record for a rental order. Exactly one
// exists per successfully placed order.
type TrackingInfo struct {
	TrackingID  string    // UUID, generated on creation.
	OrderID     int64     // Owning rental order.
	Courier     string    // Empty until a courier is assigned.
	Location    string    // Current location, free text.
	Status      string    // One of the Status constants.
	LastUpdate  time.Time // Maintained by the store on status change.
	Comments    string    // Additional comments, free text.
}

// SetStatus sets the tracking status. Returns ErrInvalidStatus if the
// value is outside the closed enum. Idempotent for the current status.
func (t *TrackingInfo) SetStatus(status string) error {
	if !validTrackingStatuses[status] {
		return ErrInvalidStatus
	}
	t.Status = status
	t.LastUpdate = time.Now()
	return nil
}
