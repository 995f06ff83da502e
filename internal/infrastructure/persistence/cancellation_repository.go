package persistence

import (
	"context"
	"errors"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingCancellationRepository implements BookingCancellationRepository
// using GORM. Cancellation rows are written by BookingRepository.CancelBooking
// so this repository only reads.
type GormBookingCancellationRepository struct {
	db *gorm.DB
}

// NewGormBookingCancellationRepository creates a new GormBookingCancellationRepository
func NewGormBookingCancellationRepository(db *gorm.DB) *GormBookingCancellationRepository {
	return &GormBookingCancellationRepository{db: db}
}

// FindByBookingID finds the cancellation record of a booking
func (r *GormBookingCancellationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.BookingCancellation, error) {
	var cancellation booking.BookingCancellation
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&cancellation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cancellation, nil
}

// Ensure GormBookingCancellationRepository implements BookingCancellationRepository
var _ booking.BookingCancellationRepository = (*GormBookingCancellationRepository)(nil)
