package booking

import (
	"context"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BookingCompletedHandler recalculates the vendor's completion rate whenever
// one of its bookings completes and pushes the figures to the vendor
// directory
type BookingCompletedHandler struct {
	bookingRepo booking.BookingRepository
	vendorDir   acl.VendorDirectory
	logger      *zap.Logger
}

// NewBookingCompletedHandler creates a new BookingCompletedHandler
func NewBookingCompletedHandler(bookingRepo booking.BookingRepository, vendorDir acl.VendorDirectory, logger *zap.Logger) *BookingCompletedHandler {
	return &BookingCompletedHandler{
		bookingRepo: bookingRepo,
		vendorDir:   vendorDir,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *BookingCompletedHandler) EventTypes() []string {
	return []string{booking.EventTypeBookingCompleted}
}

// Handle recomputes completed/total for the vendor and derives the rate as
// completed/total*100, rounded to 2 decimal places
func (h *BookingCompletedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	completed, ok := event.(*booking.BookingCompletedEvent)
	if !ok {
		return nil
	}

	completedCount, totalCount, err := h.bookingRepo.CompletionStats(ctx, completed.VendorID)
	if err != nil {
		h.logger.Error("failed to load completion stats",
			zap.String("vendor_id", completed.VendorID.String()),
			zap.Error(err))
		return err
	}

	rate := decimal.Zero
	if totalCount > 0 {
		rate = decimal.NewFromInt(completedCount).
			Div(decimal.NewFromInt(totalCount)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	vendorID, err := acl.NewVendorID(completed.VendorID)
	if err != nil {
		return err
	}
	if err := h.vendorDir.UpdateCompletionStats(ctx, vendorID, completedCount, totalCount, rate); err != nil {
		h.logger.Error("failed to update vendor completion stats",
			zap.String("vendor_id", completed.VendorID.String()),
			zap.Error(err))
		return err
	}

	h.logger.Info("vendor completion stats updated",
		zap.String("vendor_id", completed.VendorID.String()),
		zap.Int64("completed", completedCount),
		zap.Int64("total", totalCount),
		zap.String("rate", rate.String()))
	return nil
}
