package booking

import (
	"context"
	"testing"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingCompletedHandler(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	completedEvent := func(t *testing.T) *booking.BookingCompletedEvent {
		t.Helper()
		b := f.confirmedBooking(t)
		b.EventDate = time.Now().Add(-24 * time.Hour)
		require.NoError(t, b.Complete(time.Now(), ""))
		for _, event := range b.GetDomainEvents() {
			if completed, ok := event.(*booking.BookingCompletedEvent); ok {
				return completed
			}
		}
		t.Fatal("no completed event raised")
		return nil
	}

	t.Run("recomputes and pushes the completion rate", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		handler := NewBookingCompletedHandler(bookingRepo, vendorDir, zap.NewNop())

		event := completedEvent(t)
		bookingRepo.On("CompletionStats", ctx, f.vendorID).Return(int64(2), int64(3), nil)
		vendorDir.On("UpdateCompletionStats", ctx, acl.MustNewVendorID(f.vendorID), int64(2), int64(3),
			mock.MatchedBy(func(rate decimal.Decimal) bool {
				return rate.Equal(d("66.67"))
			})).Return(nil)

		require.NoError(t, handler.Handle(ctx, event))
		vendorDir.AssertExpectations(t)
	})

	t.Run("zero bookings yields a zero rate", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		handler := NewBookingCompletedHandler(bookingRepo, vendorDir, zap.NewNop())

		event := completedEvent(t)
		bookingRepo.On("CompletionStats", ctx, f.vendorID).Return(int64(0), int64(0), nil)
		vendorDir.On("UpdateCompletionStats", ctx, acl.MustNewVendorID(f.vendorID), int64(0), int64(0),
			mock.MatchedBy(func(rate decimal.Decimal) bool {
				return rate.IsZero()
			})).Return(nil)

		require.NoError(t, handler.Handle(ctx, event))
	})

	t.Run("ignores unrelated events", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		handler := NewBookingCompletedHandler(bookingRepo, vendorDir, zap.NewNop())

		b := f.confirmedBooking(t)
		require.NoError(t, handler.Handle(ctx, booking.NewBookingCreatedEvent(b)))
		bookingRepo.AssertNotCalled(t, "CompletionStats", mock.Anything, mock.Anything)
	})

	t.Run("subscribes to booking completed", func(t *testing.T) {
		handler := NewBookingCompletedHandler(new(MockBookingRepository), new(MockVendorDirectory), zap.NewNop())
		assert.Equal(t, []string{booking.EventTypeBookingCompleted}, handler.EventTypes())
	})
}
