package booking

import (
	"context"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BookingRequestRepository persists booking requests
type BookingRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRequest, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]BookingRequest, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, request *BookingRequest) error
}

// QuoteRepository persists quotes with their line items
type QuoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Quote, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]Quote, error)
	// NextRevision returns max(revision)+1 for a request. The unique
	// (request_id, revision) index rejects the loser if two vendors race.
	NextRevision(ctx context.Context, requestID uuid.UUID) (int, error)
	Save(ctx context.Context, quote *Quote) error
}

// BookingRepository persists bookings
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Booking, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, b *Booking) error
	// SaveWithLock persists the booking with an optimistic version check and
	// returns a CONCURRENCY_CONFLICT error when the row changed underneath
	SaveWithLock(ctx context.Context, b *Booking) error
	// AcceptQuoteAndCreateBooking persists the accepted quote, the accepted
	// request and the new booking in a single transaction
	AcceptQuoteAndCreateBooking(ctx context.Context, quote *Quote, request *BookingRequest, b *Booking) error
	// CancelBooking persists the cancelled booking and its cancellation
	// record in a single transaction
	CancelBooking(ctx context.Context, b *Booking, cancellation *BookingCancellation) error
	// CompletionStats returns the completed and total booking counts for a
	// vendor, used to derive the vendor's completion rate
	CompletionStats(ctx context.Context, vendorID uuid.UUID) (completed int64, total int64, err error)
}

// BookingPaymentRepository persists payments
type BookingPaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingPayment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]BookingPayment, error)
	FindByGatewayTransactionID(ctx context.Context, transactionID string) (*BookingPayment, error)
	Save(ctx context.Context, payment *BookingPayment) error
	// SavePaymentAndBooking persists the processed payment and the updated
	// booking balance in a single transaction; the booking is written with
	// an optimistic version check
	SavePaymentAndBooking(ctx context.Context, payment *BookingPayment, b *Booking) error
}

// BookingCancellationRepository reads cancellation records. Writes happen
// through BookingRepository.CancelBooking to keep them atomic with the
// booking transition.
type BookingCancellationRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*BookingCancellation, error)
}

// NumberSequenceRepository allocates monotonically increasing per-scope,
// per-year sequence values for document numbering. Allocation must be atomic
// under concurrency; allocated values are never reused, so a failed creation
// leaves a gap.
type NumberSequenceRepository interface {
	Next(ctx context.Context, scope string, year int) (int64, error)
}
