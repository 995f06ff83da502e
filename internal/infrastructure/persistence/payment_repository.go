package persistence

import (
	"context"
	"errors"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingPaymentRepository implements BookingPaymentRepository using GORM
type GormBookingPaymentRepository struct {
	db *gorm.DB
}

// NewGormBookingPaymentRepository creates a new GormBookingPaymentRepository
func NewGormBookingPaymentRepository(db *gorm.DB) *GormBookingPaymentRepository {
	return &GormBookingPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormBookingPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.BookingPayment, error) {
	var payment booking.BookingPayment
	if err := r.db.WithContext(ctx).
		First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByBookingID finds all payments against a booking, oldest first
func (r *GormBookingPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]booking.BookingPayment, error) {
	var payments []booking.BookingPayment
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByGatewayTransactionID finds a payment by its gateway transaction
// reference. Used by the callback path to detect replayed notifications.
func (r *GormBookingPaymentRepository) FindByGatewayTransactionID(ctx context.Context, transactionID string) (*booking.BookingPayment, error) {
	var payment booking.BookingPayment
	if err := r.db.WithContext(ctx).
		Where("gateway_transaction_id = ?", transactionID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Save creates or updates a payment
func (r *GormBookingPaymentRepository) Save(ctx context.Context, payment *booking.BookingPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// SavePaymentAndBooking persists the processed payment and the updated
// booking balance in a single transaction. The booking write is version
// checked so a concurrent settlement rolls back the payment too.
func (r *GormBookingPaymentRepository) SavePaymentAndBooking(ctx context.Context, payment *booking.BookingPayment, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		return saveBookingWithLock(tx, b)
	})
}

// Ensure GormBookingPaymentRepository implements BookingPaymentRepository
var _ booking.BookingPaymentRepository = (*GormBookingPaymentRepository)(nil)
