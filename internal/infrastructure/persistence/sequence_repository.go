package persistence

import (
	"context"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"gorm.io/gorm"
)

// NumberSequence is the storage row backing per-scope, per-year document
// numbering. It lives here rather than in the domain because the counter is
// purely a persistence concern.
type NumberSequence struct {
	Scope     string `gorm:"primaryKey"`
	Year      int    `gorm:"primaryKey"`
	Value     int64  `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName sets the table name for NumberSequence
func (NumberSequence) TableName() string {
	return "number_sequences"
}

// GormNumberSequenceRepository implements NumberSequenceRepository using GORM
type GormNumberSequenceRepository struct {
	db *gorm.DB
}

// NewGormNumberSequenceRepository creates a new GormNumberSequenceRepository
func NewGormNumberSequenceRepository(db *gorm.DB) *GormNumberSequenceRepository {
	return &GormNumberSequenceRepository{db: db}
}

// Next atomically allocates the next sequence value for a scope and year.
// The upsert increments under the row lock Postgres takes for ON CONFLICT,
// so concurrent callers never see the same value. Values allocated for a
// creation that later fails are not reused.
func (r *GormNumberSequenceRepository) Next(ctx context.Context, scope string, year int) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO number_sequences (scope, year, value, updated_at)
		 VALUES (?, ?, 1, NOW())
		 ON CONFLICT (scope, year)
		 DO UPDATE SET value = number_sequences.value + 1, updated_at = NOW()
		 RETURNING value`,
		scope, year,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Ensure GormNumberSequenceRepository implements NumberSequenceRepository
var _ booking.NumberSequenceRepository = (*GormNumberSequenceRepository)(nil)
