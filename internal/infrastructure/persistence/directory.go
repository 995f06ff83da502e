package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendorRecord is the booking context's local projection of a vendor
// profile. The vendor context owns the source of truth; this table is kept
// in sync by that context and read here through the directory interface.
type VendorRecord struct {
	ID                uuid.UUID `gorm:"primaryKey"`
	Name              string
	OwnerUserID       uuid.UUID
	Status            string
	CommissionRate    decimal.Decimal `gorm:"type:numeric(5,2)"`
	CompletedBookings int64
	TotalBookings     int64
	CompletionRate    decimal.Decimal `gorm:"type:numeric(5,2)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for vendor projections
func (VendorRecord) TableName() string {
	return "vendors"
}

// EventRecord is the booking context's local projection of an event from
// the event-planning context
type EventRecord struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	Title       string
	OrganizerID uuid.UUID
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for event projections
func (EventRecord) TableName() string {
	return "events"
}

// GormVendorDirectory implements acl.VendorDirectory against the local
// vendor projection table
type GormVendorDirectory struct {
	db *gorm.DB
}

// NewGormVendorDirectory creates a new GormVendorDirectory
func NewGormVendorDirectory(db *gorm.DB) *GormVendorDirectory {
	return &GormVendorDirectory{db: db}
}

// GetVendor returns the vendor reference or a NOT_FOUND domain error
func (d *GormVendorDirectory) GetVendor(ctx context.Context, id acl.VendorID) (*acl.VendorRef, error) {
	var record VendorRecord
	if err := d.db.WithContext(ctx).
		First(&record, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	return &acl.VendorRef{
		ID:             acl.MustNewVendorID(record.ID),
		Name:           record.Name,
		OwnerUserID:    record.OwnerUserID,
		Status:         acl.VendorStatus(record.Status),
		CommissionRate: record.CommissionRate,
	}, nil
}

// UpdateCompletionStats pushes recalculated completion figures back to the
// vendor projection
func (d *GormVendorDirectory) UpdateCompletionStats(ctx context.Context, id acl.VendorID, completedBookings, totalBookings int64, completionRate decimal.Decimal) error {
	result := d.db.WithContext(ctx).
		Model(&VendorRecord{}).
		Where("id = ?", id.UUID()).
		Updates(map[string]interface{}{
			"completed_bookings": completedBookings,
			"total_bookings":     totalBookings,
			"completion_rate":    completionRate,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormEventDirectory implements acl.EventDirectory against the local event
// projection table
type GormEventDirectory struct {
	db *gorm.DB
}

// NewGormEventDirectory creates a new GormEventDirectory
func NewGormEventDirectory(db *gorm.DB) *GormEventDirectory {
	return &GormEventDirectory{db: db}
}

// GetEvent returns the event reference or a NOT_FOUND domain error
func (d *GormEventDirectory) GetEvent(ctx context.Context, id acl.EventID) (*acl.EventRef, error) {
	var record EventRecord
	if err := d.db.WithContext(ctx).
		First(&record, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	return &acl.EventRef{
		ID:          acl.MustNewEventID(record.ID),
		Title:       record.Title,
		OrganizerID: record.OrganizerID,
		Date:        record.Date,
	}, nil
}

// Ensure directory implementations satisfy the ACL interfaces
var (
	_ acl.VendorDirectory = (*GormVendorDirectory)(nil)
	_ acl.EventDirectory  = (*GormEventDirectory)(nil)
)
