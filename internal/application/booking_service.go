package application

import (
	"context"
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	"github.com/shareit-platform/service-sharing/internal/clock"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	"github.com/shareit-platform/service-sharing/internal/domain/item"
	"github.com/shareit-platform/service-sharing/internal/domain/user"
	"github.com/shareit-platform/service-sharing/internal/events"
	"go.uber.org/zap"
)

// CreateBookingRequest holds the data needed to create a booking.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookingDTO is the response representation of a booking, carrying
// denormalized item and booker snapshots.
type BookingDTO struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker UserDTO   `json:"booker"`
	Item   ItemDTO   `json:"item"`
}

// BookingService is the booking lifecycle engine: it validates creation,
// drives the status state machine and answers the temporal listing queries.
type BookingService struct {
	bookings  bookingDomain.Repository
	users     user.Repository
	items     item.Repository
	publisher events.Publisher
	clock     clock.Clock
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	users user.Repository,
	items item.Repository,
	publisher events.Publisher,
	clk clock.Clock,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		users:     users,
		items:     items,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// CreateBooking validates and persists a new WAITING booking for the actor.
// An owner trying to book their own item gets NotFound, not Forbidden: the
// item simply is not bookable for them.
func (s *BookingService) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*BookingDTO, error) {
	booker, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if it.IsOwnedBy(userID) {
		return nil, apperr.NotFound("user id %d not found", userID)
	}
	if !it.Available() {
		return nil, apperr.NotAvailable("item %s not available", it.Name())
	}

	bk, err := bookingDomain.NewBooking(req.ItemID, userID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, err
	}

	s.publisher.BookingCreated(ctx, events.BookingCreatedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		OwnerID:    it.OwnerID(),
		BookerID:   userID,
		Start:      bk.Start(),
		End:        bk.End(),
		OccurredAt: s.clock.Now().UTC(),
	})

	s.logger.Info("booking created",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("item_id", it.ID()),
		zap.Int64("booker_id", userID),
	)
	result := toBookingDTO(bk, booker, it)
	return &result, nil
}

// UpdateStatus lets the item owner approve or reject a WAITING booking.
// A decided booking is terminal; the terminal check deliberately precedes
// the ownership check, so probing a decided booking yields StatusConflict
// even for strangers.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, bookingID int64, approved bool) (*BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if bk.Status().IsTerminal() {
		return nil, apperr.StatusConflict("no changes allowed")
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(userID) {
		return nil, apperr.NotFound("incorrect user operation")
	}

	if approved {
		err = bk.Approve()
	} else {
		err = bk.Reject()
	}
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publisher.BookingDecided(ctx, events.BookingDecidedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		OwnerID:    it.OwnerID(),
		BookerID:   bk.BookerID(),
		Approved:   approved,
		Status:     bk.Status().String(),
		OccurredAt: s.clock.Now().UTC(),
	})

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status updated",
		zap.Int64("booking_id", bk.ID()),
		zap.String("status", bk.Status().String()),
	)
	result := toBookingDTO(bk, booker, it)
	return &result, nil
}

// GetBooking returns a single booking, visible only to its booker or the
// item's owner. Anyone else gets NotFound so the booking's existence stays
// hidden.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}

	if bk.BookerID() != userID && !it.IsOwnedBy(userID) {
		return nil, apperr.NotFound("user must be booker or item owner")
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	result := toBookingDTO(bk, booker, it)
	return &result, nil
}

// GetBookerBookings lists bookings made by the actor, filtered by state and
// ordered by start descending.
func (s *BookingService) GetBookerBookings(ctx context.Context, userID int64, state string, from, size int) ([]BookingDTO, error) {
	f, err := s.listingFilter(ctx, userID, state, from, size)
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.ListByBooker(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, list)
}

// GetOwnerBookings lists bookings made against the actor's items, filtered
// by state and ordered by start descending.
func (s *BookingService) GetOwnerBookings(ctx context.Context, userID int64, state string, from, size int) ([]BookingDTO, error) {
	f, err := s.listingFilter(ctx, userID, state, from, size)
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.ListByOwner(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, list)
}

// listingFilter runs the shared listing pre-checks in a fixed order:
// actor existence, then the state token, then pagination. The unknown-state
// failure must fire before any pagination failure.
func (s *BookingService) listingFilter(ctx context.Context, userID int64, state string, from, size int) (bookingDomain.Filter, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return bookingDomain.Filter{}, err
	}
	if !exists {
		return bookingDomain.Filter{}, apperr.NotFound("user id %d not found", userID)
	}

	st, err := bookingDomain.ParseState(state)
	if err != nil {
		return bookingDomain.Filter{}, err
	}

	if from < 0 || size < 1 {
		return bookingDomain.Filter{}, apperr.Pagination("wrong pagination params")
	}

	f := st.Filter(s.clock.Now())
	// from is mapped to a page boundary, so the effective offset is rounded
	// down to a multiple of size.
	f.Offset = (from / size) * size
	f.Limit = size
	return f, nil
}

func (s *BookingService) project(ctx context.Context, list []*bookingDomain.Booking) ([]BookingDTO, error) {
	users := newUserLoader(s.users)
	items := newItemLoader(s.items)

	dtos := make([]BookingDTO, 0, len(list))
	for _, bk := range list {
		booker, err := users.load(ctx, bk.BookerID())
		if err != nil {
			return nil, err
		}
		it, err := items.load(ctx, bk.ItemID())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, toBookingDTO(bk, booker, it))
	}
	return dtos, nil
}

func toBookingDTO(bk *bookingDomain.Booking, booker *user.User, it *item.Item) BookingDTO {
	return BookingDTO{
		ID:     bk.ID(),
		Start:  bk.Start(),
		End:    bk.End(),
		Status: bk.Status().String(),
		Booker: toUserDTO(booker),
		Item:   toItemDTO(it),
	}
}
