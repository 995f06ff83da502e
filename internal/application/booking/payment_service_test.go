package booking

import (
	"context"
	"testing"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentServiceRecord(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("records a pending deposit payment", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		sequenceRepo := new(MockNumberSequenceRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, sequenceRepo, nil)

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		sequenceRepo.On("Next", ctx, booking.SequenceScopePayment, time.Now().Year()).Return(int64(42), nil)
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*booking.BookingPayment")).Return(nil)

		response, err := service.Record(ctx, f.organizer(), RecordPaymentRequest{
			BookingID:     b.ID,
			Amount:        b.DepositAmount,
			IsDeposit:     true,
			PaymentMethod: "credit_card",
		})
		require.NoError(t, err)
		assert.Equal(t, booking.FormatDocumentNumber(booking.NumberPrefixPayment, time.Now().Year(), 42), response.PaymentNumber)
		assert.Equal(t, booking.BookingPaymentStatusPending, response.Status)
		assert.True(t, response.IsDeposit)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("vendor cannot record payments", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := service.Record(ctx, f.vendorCaller(), RecordPaymentRequest{BookingID: b.ID, Amount: d("10.00")})
		require.Error(t, err)
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("amount above the balance is rejected", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := service.Record(ctx, f.organizer(), RecordPaymentRequest{
			BookingID: b.ID,
			Amount:    b.AmountDue.Add(d("0.01")),
		})
		require.Error(t, err)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := service.Record(ctx, f.organizer(), RecordPaymentRequest{BookingID: b.ID, Amount: d("0")})
		require.Error(t, err)
	})

	t.Run("cancelled booking rejects new payments", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		cancellation, err := booking.NewBookingCancellation(b, f.organizerID, booking.InitiatorOrganizer, "plans changed", "", time.Now())
		require.NoError(t, err)
		require.NoError(t, b.Cancel(cancellation))
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err = service.Record(ctx, f.organizer(), RecordPaymentRequest{BookingID: b.ID, Amount: d("10.00")})
		require.Error(t, err)
	})
}

func TestPaymentServiceProcess(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	newPendingPayment := func(t *testing.T, b *booking.Booking, amount string, isDeposit bool) *booking.BookingPayment {
		t.Helper()
		payment, err := booking.NewBookingPayment("P-2026-00001", b.ID, d(amount), isDeposit, "credit_card")
		require.NoError(t, err)
		payment.ClearDomainEvents()
		return payment
	}

	t.Run("settles the payment and applies it to the booking", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		idempotency := new(MockIdempotencyStore)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), idempotency)

		b := f.confirmedBooking(t)
		payment := newPendingPayment(t, b, "59.40", true)

		idempotency.On("MarkProcessed", ctx, "payment:callback:tx-1", paymentCallbackTTL).Return(true, nil)
		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		paymentRepo.On("SavePaymentAndBooking", ctx, payment, b).Return(nil)

		response, err := service.Process(ctx, payment.ID, ProcessPaymentRequest{
			GatewayName:          "iyzico",
			GatewayTransactionID: "tx-1",
		})
		require.NoError(t, err)
		assert.Equal(t, booking.BookingPaymentStatusPaid, response.Status)
		assert.Equal(t, "tx-1", response.GatewayTransactionID)
		assert.NotNil(t, response.PaidAt)
		assert.Equal(t, booking.PaymentStatusDepositPaid, b.PaymentStatus)
		assert.True(t, b.AmountPaid.Equal(d("59.40")))
		paymentRepo.AssertExpectations(t)
	})

	t.Run("duplicate callback returns the settled payment untouched", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		idempotency := new(MockIdempotencyStore)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), idempotency)

		b := f.confirmedBooking(t)
		payment := newPendingPayment(t, b, "59.40", true)
		require.NoError(t, payment.MarkPaid("iyzico", "tx-1", time.Now()))
		payment.ClearDomainEvents()

		idempotency.On("MarkProcessed", ctx, "payment:callback:tx-1", paymentCallbackTTL).Return(false, nil)
		paymentRepo.On("FindByGatewayTransactionID", ctx, "tx-1").Return(payment, nil)

		response, err := service.Process(ctx, payment.ID, ProcessPaymentRequest{
			GatewayName:          "iyzico",
			GatewayTransactionID: "tx-1",
		})
		require.NoError(t, err)
		assert.Equal(t, booking.BookingPaymentStatusPaid, response.Status)
		paymentRepo.AssertNotCalled(t, "SavePaymentAndBooking", mock.Anything, mock.Anything, mock.Anything)
		bookingRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("marked key without a settled payment falls through to processing", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		idempotency := new(MockIdempotencyStore)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), idempotency)

		b := f.confirmedBooking(t)
		payment := newPendingPayment(t, b, "59.40", true)

		idempotency.On("MarkProcessed", ctx, "payment:callback:tx-1", paymentCallbackTTL).Return(false, nil)
		paymentRepo.On("FindByGatewayTransactionID", ctx, "tx-1").Return(nil, shared.ErrNotFound)
		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		paymentRepo.On("SavePaymentAndBooking", ctx, payment, b).Return(nil)

		response, err := service.Process(ctx, payment.ID, ProcessPaymentRequest{
			GatewayName:          "iyzico",
			GatewayTransactionID: "tx-1",
		})
		require.NoError(t, err)
		assert.Equal(t, booking.BookingPaymentStatusPaid, response.Status)
	})

	t.Run("final installment marks the booking PAID", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		payment := newPendingPayment(t, b, "198.00", false)

		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		paymentRepo.On("SavePaymentAndBooking", ctx, payment, b).Return(nil)

		_, err := service.Process(ctx, payment.ID, ProcessPaymentRequest{
			GatewayName:          "iyzico",
			GatewayTransactionID: "tx-2",
		})
		require.NoError(t, err)
		assert.Equal(t, booking.PaymentStatusPaid, b.PaymentStatus)
		assert.True(t, b.AmountDue.IsZero())
	})

	t.Run("already settled payment cannot be processed twice", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		payment := newPendingPayment(t, b, "59.40", true)
		require.NoError(t, payment.MarkPaid("iyzico", "tx-1", time.Now()))

		paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := service.Process(ctx, payment.ID, ProcessPaymentRequest{
			GatewayName:          "iyzico",
			GatewayTransactionID: "tx-3",
		})
		require.Error(t, err)
		paymentRepo.AssertNotCalled(t, "SavePaymentAndBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentServiceListByBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("organizer lists the booking ledger", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		payment, err := booking.NewBookingPayment("P-2026-00001", b.ID, d("59.40"), true, "credit_card")
		require.NoError(t, err)

		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)
		paymentRepo.On("FindByBookingID", ctx, b.ID).Return([]booking.BookingPayment{*payment}, nil)

		responses, err := service.ListByBooking(ctx, f.organizer(), b.ID)
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "P-2026-00001", responses[0].PaymentNumber)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		paymentRepo := new(MockBookingPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		service := NewPaymentService(paymentRepo, bookingRepo, new(MockNumberSequenceRepository), nil)

		b := f.confirmedBooking(t)
		bookingRepo.On("FindByID", ctx, b.ID).Return(b, nil)

		_, err := service.ListByBooking(ctx, Caller{UserID: uuid.New(), Role: RoleOrganizer}, b.ID)
		require.Error(t, err)
	})
}
