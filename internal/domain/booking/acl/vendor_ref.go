// Package acl provides Anti-Corruption Layer components for the booking
// bounded context. The vendor and event directories live outside this
// context; these narrow references and interfaces keep the booking domain
// from depending on their internal models.
package acl

import (
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorID is a value object representing a vendor identifier within the
// booking context. It prevents accidental mixing with other UUID-based IDs.
type VendorID struct {
	value uuid.UUID
}

// NewVendorID creates a new VendorID from a UUID.
// Returns an error if the UUID is nil/empty.
func NewVendorID(id uuid.UUID) (VendorID, error) {
	if id == uuid.Nil {
		return VendorID{}, shared.NewDomainError("VALIDATION_ERROR", "Vendor ID cannot be empty")
	}
	return VendorID{value: id}, nil
}

// MustNewVendorID creates a new VendorID, panicking if the ID is invalid.
// Use only when the ID is guaranteed to be valid (e.g., from database).
func MustNewVendorID(id uuid.UUID) VendorID {
	vid, err := NewVendorID(id)
	if err != nil {
		panic(err)
	}
	return vid
}

// ParseVendorID parses a string into a VendorID
func ParseVendorID(s string) (VendorID, error) {
	if s == "" {
		return VendorID{}, shared.NewDomainError("VALIDATION_ERROR", "Vendor ID cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return VendorID{}, shared.NewDomainError("VALIDATION_ERROR", "Vendor ID is not a valid UUID")
	}
	return NewVendorID(id)
}

// UUID returns the underlying UUID value
func (v VendorID) UUID() uuid.UUID {
	return v.value
}

// String returns the string representation of the VendorID
func (v VendorID) String() string {
	return v.value.String()
}

// IsZero reports whether the VendorID is the zero value
func (v VendorID) IsZero() bool {
	return v.value == uuid.Nil
}

// VendorStatus is the vendor's lifecycle status in the vendor directory
type VendorStatus string

const (
	VendorStatusActive    VendorStatus = "ACTIVE"
	VendorStatusInactive  VendorStatus = "INACTIVE"
	VendorStatusSuspended VendorStatus = "SUSPENDED"
)

// VendorRef is a read-only projection of a vendor, carrying only the fields
// the booking context needs: eligibility, ownership for authorization, and
// the commission rate snapshotted into bookings. CommissionRate is a
// percentage in [0, 100], not a fraction.
type VendorRef struct {
	ID             VendorID
	Name           string
	OwnerUserID    uuid.UUID
	Status         VendorStatus
	CommissionRate decimal.Decimal
}

// IsActive reports whether the vendor can receive requests and send quotes
func (r *VendorRef) IsActive() bool {
	return r.Status == VendorStatusActive
}

// IsOwnedBy reports whether the given user owns this vendor profile
func (r *VendorRef) IsOwnedBy(userID uuid.UUID) bool {
	return r.OwnerUserID != uuid.Nil && r.OwnerUserID == userID
}
