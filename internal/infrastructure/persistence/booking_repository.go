package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.WithContext(ctx).
		First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll finds bookings matching the filter
func (r *GormBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&booking.Booking{}),
		filter,
	)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&booking.Booking{}),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a booking without a version check
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveBookingWithLock(tx, b)
	})
}

// AcceptQuoteAndCreateBooking persists the accepted quote, the accepted
// request and the new booking in a single transaction. Both the quote and
// the request write are version checked so two workers holding stale copies
// of the same request cannot both accept; the unique index on
// bookings.request_id backstops the single-acceptance invariant at the
// database level.
func (r *GormBookingRepository) AcceptQuoteAndCreateBooking(ctx context.Context, quote *booking.Quote, request *booking.BookingRequest, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quoteVersion := quote.Version
		quote.Version++
		result := tx.Model(&booking.Quote{}).
			Where("id = ? AND version = ?", quote.ID, quoteVersion).
			Updates(map[string]interface{}{
				"status":      quote.Status,
				"accepted_at": quote.AcceptedAt,
				"version":     quote.Version,
				"updated_at":  quote.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		requestVersion := request.Version
		request.Version++
		result = tx.Model(&booking.BookingRequest{}).
			Where("id = ? AND version = ?", request.ID, requestVersion).
			Updates(map[string]interface{}{
				"status":     request.Status,
				"version":    request.Version,
				"updated_at": request.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		return tx.Create(b).Error
	})
}

// CancelBooking persists the cancelled booking and its cancellation record
// in a single transaction. The booking write is version checked.
func (r *GormBookingRepository) CancelBooking(ctx context.Context, b *booking.Booking, cancellation *booking.BookingCancellation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveBookingWithLock(tx, b); err != nil {
			return err
		}
		return tx.Create(cancellation).Error
	})
}

// CompletionStats returns the completed and total booking counts for a vendor
func (r *GormBookingRepository) CompletionStats(ctx context.Context, vendorID uuid.UUID) (int64, int64, error) {
	var completed int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("vendor_id = ? AND status = ?", vendorID, booking.BookingStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("vendor_id = ?", vendorID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	return completed, total, nil
}

// saveBookingWithLock writes a booking with an optimistic version check.
// Shared with the payment repository so payment settlement and booking
// balance updates go through the same guard.
func saveBookingWithLock(tx *gorm.DB, b *booking.Booking) error {
	var currentVersion int
	if err := tx.Model(&booking.Booking{}).
		Where("id = ?", b.ID).
		Select("version").
		Scan(&currentVersion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}

	if currentVersion != b.Version {
		return shared.ErrConcurrencyConflict
	}

	b.Version++
	b.UpdatedAt = time.Now()

	result := tx.Model(&booking.Booking{}).
		Where("id = ? AND version = ?", b.ID, currentVersion).
		Updates(map[string]interface{}{
			"venue_name":       b.VenueName,
			"venue_address":    b.VenueAddress,
			"guest_count":      b.GuestCount,
			"amount_paid":      b.AmountPaid,
			"amount_due":       b.AmountDue,
			"payment_status":   b.PaymentStatus,
			"status":           b.Status,
			"completion_notes": b.CompletionNotes,
			"completed_at":     b.CompletedAt,
			"cancelled_at":     b.CancelledAt,
			"version":          b.Version,
			"updated_at":       b.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, BookingSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("booking_number ILIKE ? OR title ILIKE ? OR venue_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "event_id":
			query = query.Where("event_id = ?", value)
		case "organizer_id":
			query = query.Where("organizer_id = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "statuses":
			if statuses, ok := value.([]string); ok && len(statuses) > 0 {
				query = query.Where("status IN ?", statuses)
			}
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "event_date_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("event_date >= ?", t)
			}
		case "event_date_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("event_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormBookingRepository implements BookingRepository
var _ booking.BookingRepository = (*GormBookingRepository)(nil)
