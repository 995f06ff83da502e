package acl

import (
	"context"

	"github.com/shopspring/decimal"
)

// VendorDirectory is the booking context's view of the vendor catalog.
// Implementations adapt whatever the vendor context exposes (local tables,
// RPC, cache) to these two calls.
type VendorDirectory interface {
	// GetVendor returns the vendor reference or a NOT_FOUND domain error
	GetVendor(ctx context.Context, id VendorID) (*VendorRef, error)

	// UpdateCompletionStats pushes recalculated completion figures back to
	// the vendor profile after a booking completes. Rate is a percentage
	// in [0, 100].
	UpdateCompletionStats(ctx context.Context, id VendorID, completedBookings, totalBookings int64, completionRate decimal.Decimal) error
}
