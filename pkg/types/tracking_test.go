package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackingSetStatus(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr error
	}{
		{name: "delayed", target: StatusDelayed},
		{name: "in transit", target: StatusInTransit},
		{name: "arrived at facility", target: StatusArrivedAtFacility},
		{name: "out for delivery", target: StatusOutForDelivery},
		{name: "returned to sender", target: StatusReturnedToSender},
		{name: "attempted delivery", target: StatusAttemptedDelivery},
		{name: "ready for pickup", target: StatusReadyForPickup},
		{name: "delivered", target: StatusDelivered},
		{name: "unknown rejected", target: "Lost", wantErr: ErrInvalidStatus},
		{name: "empty rejected", target: "", wantErr: ErrInvalidStatus},
		{name: "case matters", target: "delivered", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &TrackingInfo{Status: StatusReadyForPickup, LastUpdate: time.Now().Add(-time.Hour)}
			before := info.LastUpdate

			err := info.SetStatus(tt.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusReadyForPickup, info.Status, "status should not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.target, info.Status)
				assert.True(t, info.LastUpdate.After(before), "LastUpdate should be refreshed")
			}
		})
	}
}

func TestTrackingStatusesMatchValidation(t *testing.T) {
	statuses := TrackingStatuses()
	assert.Len(t, statuses, 8)
	for _, s := range statuses {
		assert.True(t, ValidTrackingStatus(s), s)
	}
	assert.Equal(t, DefaultTrackingStatus, StatusReadyForPickup)
	assert.True(t, ValidTrackingStatus(DefaultTrackingStatus))
}
