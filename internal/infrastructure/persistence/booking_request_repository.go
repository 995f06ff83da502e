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

// GormBookingRequestRepository implements BookingRequestRepository using GORM
type GormBookingRequestRepository struct {
	db *gorm.DB
}

// NewGormBookingRequestRepository creates a new GormBookingRequestRepository
func NewGormBookingRequestRepository(db *gorm.DB) *GormBookingRequestRepository {
	return &GormBookingRequestRepository{db: db}
}

// FindByID finds a booking request by its ID
func (r *GormBookingRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.BookingRequest, error) {
	var request booking.BookingRequest
	if err := r.db.WithContext(ctx).
		First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindAll finds booking requests matching the filter
func (r *GormBookingRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.BookingRequest, error) {
	var requests []booking.BookingRequest
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&booking.BookingRequest{}),
		filter,
	)

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Count counts booking requests matching the filter
func (r *GormBookingRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&booking.BookingRequest{}),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a booking request
func (r *GormBookingRequestRepository) Save(ctx context.Context, request *booking.BookingRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// applyFilter applies filter options to the query
func (r *GormBookingRequestRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, BookingRequestSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBookingRequestRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("title ILIKE ? OR venue_name ILIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "event_id":
			query = query.Where("event_id = ?", value)
		case "organizer_id":
			query = query.Where("organizer_id = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "service_category":
			query = query.Where("service_category = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "statuses":
			if statuses, ok := value.([]string); ok && len(statuses) > 0 {
				query = query.Where("status IN ?", statuses)
			}
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

// Ensure GormBookingRequestRepository implements BookingRequestRepository
var _ booking.BookingRequestRepository = (*GormBookingRequestRepository)(nil)
