package booking

import (
	"context"
	"time"
)

// Repository defines the persistence contract for bookings.
type Repository interface {
	// Save persists a new booking and assigns its identifier.
	Save(ctx context.Context, b *Booking) error

	// Update persists a status change to an existing booking.
	Update(ctx context.Context, b *Booking) error

	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// ListByBooker retrieves bookings made by a user, filtered and ordered
	// by start descending.
	ListByBooker(ctx context.Context, bookerID int64, f Filter) ([]*Booking, error)

	// ListByOwner retrieves bookings against a user's items, filtered and
	// ordered by start descending.
	ListByOwner(ctx context.Context, ownerID int64, f Filter) ([]*Booking, error)

	// LastFinishedByBooker returns the most recently ended APPROVED booking
	// of the item by the given user that ended before the given instant.
	LastFinishedByBooker(ctx context.Context, itemID, bookerID int64, before time.Time) (*Booking, error)

	// ApprovedByOwnerStartedBefore returns APPROVED bookings against the
	// owner's items with start before the instant, start descending.
	ApprovedByOwnerStartedBefore(ctx context.Context, ownerID int64, at time.Time) ([]*Booking, error)

	// ApprovedByOwnerStartingAfter returns APPROVED bookings against the
	// owner's items with start after the instant, start ascending.
	ApprovedByOwnerStartingAfter(ctx context.Context, ownerID int64, at time.Time) ([]*Booking, error)
}
