// Package repository provides the GORM-backed implementations of the domain
// repository contracts.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-platform/service-sharing/internal/apperr"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	"gorm.io/gorm"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartTime time.Time `gorm:"not null;index"`
	EndTime   time.Time `gorm:"not null;index"`
	ItemID    int64     `gorm:"not null;index"`
	BookerID  int64     `gorm:"not null;index"`
	Status    string    `gorm:"not null;size:20;index"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of the booking
// repository contract.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking and backfills the generated id.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	bk.SetID(model.ID)
	return nil
}

// Update persists a status change. No optimistic locking: two concurrent
// decide calls may both land, which is accepted behavior for this engine.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", bk.ID()).
		Update("status", bk.Status().String())
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("booking id %d not found", bk.ID())
	}
	return nil
}

// FindByID retrieves a booking by its identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking id %d not found", id)
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return toDomainBooking(&model), nil
}

// ListByBooker retrieves a user's bookings, start descending.
func (r *GormBookingRepository) ListByBooker(ctx context.Context, bookerID int64, f bookingDomain.Filter) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("bookings.booker_id = ?", bookerID)
	return r.list(applyFilter(q, f))
}

// ListByOwner retrieves bookings against a user's items, start descending.
func (r *GormBookingRepository) ListByOwner(ctx context.Context, ownerID int64, f bookingDomain.Filter) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.list(applyFilter(q, f))
}

// LastFinishedByBooker returns the latest-ending APPROVED booking of the
// item by the user that ended before the instant.
func (r *GormBookingRepository) LastFinishedByBooker(ctx context.Context, itemID, bookerID int64, before time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND booker_id = ? AND status = ? AND end_time < ?",
			itemID, bookerID, bookingDomain.StatusApproved.String(), before).
		Order("end_time DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, fmt.Errorf("failed to find finished booking: %w", err)
	}
	return toDomainBooking(&model), nil
}

// ApprovedByOwnerStartedBefore returns APPROVED bookings against the owner's
// items that started before the instant, start descending.
func (r *GormBookingRepository) ApprovedByOwnerStartedBefore(ctx context.Context, ownerID int64, at time.Time) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ? AND bookings.status = ? AND bookings.start_time < ?",
			ownerID, bookingDomain.StatusApproved.String(), at).
		Order("bookings.start_time DESC")
	return r.list(q)
}

// ApprovedByOwnerStartingAfter returns APPROVED bookings against the owner's
// items that start after the instant, start ascending.
func (r *GormBookingRepository) ApprovedByOwnerStartingAfter(ctx context.Context, ownerID int64, at time.Time) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ? AND bookings.status = ? AND bookings.start_time > ?",
			ownerID, bookingDomain.StatusApproved.String(), at).
		Order("bookings.start_time ASC")
	return r.list(q)
}

func (r *GormBookingRepository) list(q *gorm.DB) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings, nil
}

func applyFilter(q *gorm.DB, f bookingDomain.Filter) *gorm.DB {
	if f.Status != nil {
		q = q.Where("bookings.status = ?", f.Status.String())
	}
	if f.StartAfter != nil {
		q = q.Where("bookings.start_time > ?", *f.StartAfter)
	}
	if f.StartBefore != nil {
		q = q.Where("bookings.start_time < ?", *f.StartBefore)
	}
	if f.EndBefore != nil {
		q = q.Where("bookings.end_time < ?", *f.EndBefore)
	}
	if f.EndAfter != nil {
		q = q.Where("bookings.end_time > ?", *f.EndAfter)
	}
	q = q.Order("bookings.start_time DESC").Offset(f.Offset)
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q
}

func toBookingModel(bk *bookingDomain.Booking) BookingModel {
	return BookingModel{
		ID:        bk.ID(),
		StartTime: bk.Start(),
		EndTime:   bk.End(),
		ItemID:    bk.ItemID(),
		BookerID:  bk.BookerID(),
		Status:    bk.Status().String(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(
		m.ID,
		m.StartTime,
		m.EndTime,
		m.ItemID,
		m.BookerID,
		bookingDomain.Status(m.Status),
	)
}
