// Package booking holds the reservation aggregate, its status state machine
// and the temporal listing states used by the query layer.
package booking

import (
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
)

// Booking is a time-bounded reservation of an item by a booker. Item and
// booker references are immutable after creation; only the status changes,
// exactly once.
type Booking struct {
	id       int64
	start    time.Time
	end      time.Time
	itemID   int64
	bookerID int64
	status   Status
}

// NewBooking creates a booking in WAITING state. The interval must be
// strictly ordered: start == end is as invalid as start > end.
func NewBooking(itemID, bookerID int64, start, end time.Time) (*Booking, error) {
	if !start.Before(end) {
		return nil, apperr.InvalidInterval("booking start must be strictly before end")
	}
	return &Booking{
		start:    start,
		end:      end,
		itemID:   itemID,
		bookerID: bookerID,
		status:   StatusWaiting,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id int64, start, end time.Time, itemID, bookerID int64, status Status) *Booking {
	return &Booking{
		id:       id,
		start:    start,
		end:      end,
		itemID:   itemID,
		bookerID: bookerID,
		status:   status,
	}
}

// ID returns the booking's identifier, zero until persisted.
func (b *Booking) ID() int64 { return b.id }

// SetID assigns the store-generated identifier after the initial save.
func (b *Booking) SetID(id int64) { b.id = id }

// Start returns the reservation start instant.
func (b *Booking) Start() time.Time { return b.start }

// End returns the reservation end instant.
func (b *Booking) End() time.Time { return b.end }

// ItemID returns the booked item's identifier.
func (b *Booking) ItemID() int64 { return b.itemID }

// BookerID returns the requesting user's identifier.
func (b *Booking) BookerID() int64 { return b.bookerID }

// Status returns the current approval status.
func (b *Booking) Status() Status { return b.status }

// Approve transitions the booking from WAITING to APPROVED.
func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return apperr.StatusConflict("no changes allowed")
	}
	b.status = StatusApproved
	return nil
}

// Reject transitions the booking from WAITING to REJECTED.
func (b *Booking) Reject() error {
	if !b.status.CanTransitionTo(StatusRejected) {
		return apperr.StatusConflict("no changes allowed")
	}
	b.status = StatusRejected
	return nil
}
