package booking

import (
	"context"
	"testing"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingServiceComplete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("vendor owner completes past-date booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), vendorDir)

		b := f.confirmedBooking(t)
		b.EventDate = time.Now().Add(-24 * time.Hour)

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		vendorDir.On("GetVendor", ctx, mock.Anything).Return(f.vendorRef(), nil)
		bookingRepo.On("SaveWithLock", ctx, b).Return(nil)

		response, err := service.Complete(ctx, f.vendorCaller(), b.ID, CompleteBookingRequest{Notes: "all delivered"})
		require.NoError(t, err)
		assert.Equal(t, booking.BookingStatusCompleted, response.Status)
		assert.Equal(t, "all delivered", response.CompletionNotes)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("organizer cannot complete", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), vendorDir)

		b := f.confirmedBooking(t)
		b.EventDate = time.Now().Add(-24 * time.Hour)

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		vendorDir.On("GetVendor", ctx, mock.Anything).Return(f.vendorRef(), nil)

		_, err := service.Complete(ctx, f.organizer(), b.ID, CompleteBookingRequest{})
		require.Error(t, err)
	})

	t.Run("future event date blocks completion", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), vendorDir)

		b := f.confirmedBooking(t)

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		vendorDir.On("GetVendor", ctx, mock.Anything).Return(f.vendorRef(), nil)

		_, err := service.Complete(ctx, f.vendorCaller(), b.ID, CompleteBookingRequest{})
		require.Error(t, err)
		assert.Equal(t, booking.BookingStatusConfirmed, b.Status)
	})
}

func TestBookingServiceCancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("organizer cancellation derives ORGANIZER initiator", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), new(MockVendorDirectory))

		b := f.confirmedBooking(t)
		require.NoError(t, b.ApplyPayment(d("100.00"), false))

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		bookingRepo.On("CancelBooking", ctx, b, mock.AnythingOfType("*booking.BookingCancellation")).Return(nil)

		response, err := service.Cancel(ctx, f.organizer(), b.ID, CancelBookingRequest{Reason: "plans changed", Notes: "sorry"})
		require.NoError(t, err)
		assert.Equal(t, booking.InitiatorOrganizer, response.Initiator)
		assert.Equal(t, "sorry", response.OrganizerNotes)
		// Event ~3 months out, full refund tier
		assert.True(t, response.RefundAmount.Equal(d("100.00")))
		assert.True(t, response.PenaltyAmount.IsZero())
		assert.Equal(t, booking.BookingStatusCancelled, b.Status)
	})

	t.Run("vendor owner cancellation derives VENDOR initiator", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), vendorDir)

		b := f.confirmedBooking(t)

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		vendorDir.On("GetVendor", ctx, mock.Anything).Return(f.vendorRef(), nil)
		bookingRepo.On("CancelBooking", ctx, b, mock.AnythingOfType("*booking.BookingCancellation")).Return(nil)

		response, err := service.Cancel(ctx, f.vendorCaller(), b.ID, CancelBookingRequest{Reason: "double booked", Notes: "apologies"})
		require.NoError(t, err)
		assert.Equal(t, booking.InitiatorVendor, response.Initiator)
		assert.Equal(t, "apologies", response.VendorNotes)
	})

	t.Run("admin cancellation derives ADMIN initiator", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), new(MockVendorDirectory))

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		bookingRepo.On("CancelBooking", ctx, b, mock.AnythingOfType("*booking.BookingCancellation")).Return(nil)

		response, err := service.Cancel(ctx, f.admin(), b.ID, CancelBookingRequest{Reason: "policy violation"})
		require.NoError(t, err)
		assert.Equal(t, booking.InitiatorAdmin, response.Initiator)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		vendorDir := new(MockVendorDirectory)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), vendorDir)

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		vendorDir.On("GetVendor", ctx, mock.Anything).Return(f.vendorRef(), nil)

		_, err := service.Cancel(ctx, Caller{UserID: uuid.New(), Role: RoleOrganizer}, b.ID, CancelBookingRequest{Reason: "nope"})
		require.Error(t, err)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), new(MockVendorDirectory))

		b := f.confirmedBooking(t)
		require.NoError(t, b.Complete(b.EventDate.Add(24*time.Hour), ""))

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := service.Cancel(ctx, f.organizer(), b.ID, CancelBookingRequest{Reason: "too late"})
		require.Error(t, err)
	})
}

func TestBookingServiceUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("updates metadata only", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), new(MockVendorDirectory))

		b := f.confirmedBooking(t)
		originalTotal := b.TotalAmount
		venue := "New Venue"
		guests := 150

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		bookingRepo.On("SaveWithLock", ctx, b).Return(nil)

		response, err := service.Update(ctx, f.organizer(), b.ID, UpdateBookingRequest{VenueName: &venue, GuestCount: &guests})
		require.NoError(t, err)
		assert.Equal(t, "New Venue", response.VenueName)
		assert.Equal(t, 150, response.GuestCount)
		assert.True(t, response.TotalAmount.Equal(originalTotal))
	})

	t.Run("cancelled booking rejects updates", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		service := NewBookingService(bookingRepo, new(MockBookingCancellationRepository), new(MockVendorDirectory))

		b := f.confirmedBooking(t)
		cancellation, err := booking.NewBookingCancellation(b, f.organizerID, booking.InitiatorOrganizer, "plans changed", "", time.Now())
		require.NoError(t, err)
		require.NoError(t, b.Cancel(cancellation))

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		venue := "x"
		_, err = service.Update(ctx, f.organizer(), b.ID, UpdateBookingRequest{VenueName: &venue})
		require.Error(t, err)
	})
}
