package persistence

import (
	"context"
	"errors"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// FindByID finds a quote with its line items by ID
func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Quote, error) {
	var quote booking.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindByRequestID finds all quote revisions for a request, newest revision first
func (r *GormQuoteRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]booking.Quote, error) {
	var quotes []booking.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("request_id = ?", requestID).
		Order("revision DESC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// NextRevision computes the next quote revision for a request
func (r *GormQuoteRepository) NextRevision(ctx context.Context, requestID uuid.UUID) (int, error) {
	var next int
	if err := r.db.WithContext(ctx).
		Model(&booking.Quote{}).
		Where("request_id = ?", requestID).
		Select("COALESCE(MAX(revision), 0) + 1").
		Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

// Save creates or updates a quote together with its line items
func (r *GormQuoteRepository) Save(ctx context.Context, quote *booking.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(quote).Error; err != nil {
			return err
		}

		// Delete removed items, then save/update the current ones
		if quote.ID != uuid.Nil {
			currentItemIDs := make([]uuid.UUID, len(quote.Items))
			for i, item := range quote.Items {
				currentItemIDs[i] = item.ID
			}

			if len(currentItemIDs) > 0 {
				if err := tx.Where("quote_id = ? AND id NOT IN ?", quote.ID, currentItemIDs).
					Delete(&booking.QuoteItem{}).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Where("quote_id = ?", quote.ID).
					Delete(&booking.QuoteItem{}).Error; err != nil {
					return err
				}
			}

			for i := range quote.Items {
				quote.Items[i].QuoteID = quote.ID
				if err := tx.Save(&quote.Items[i]).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Ensure GormQuoteRepository implements QuoteRepository
var _ booking.QuoteRepository = (*GormQuoteRepository)(nil)
