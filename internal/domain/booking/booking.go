package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/celebratech/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsValid checks if the status is a valid BookingStatus
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	case BookingStatusCompleted, BookingStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PaymentStatus represents how much of a booking's balance has been settled
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "PENDING"
	PaymentStatusDepositPaid PaymentStatus = "DEPOSIT_PAID"
	PaymentStatusPartial     PaymentStatus = "PARTIAL"
	PaymentStatusPaid        PaymentStatus = "PAID"
	PaymentStatusRefunded    PaymentStatus = "REFUNDED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusDepositPaid, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// Booking is the binding agreement created when a quote is accepted. It
// snapshots the event info and the quote financials so later changes to
// either never alter the agreed terms.
type Booking struct {
	shared.BaseAggregateRoot
	BookingNumber    string
	QuoteID          uuid.UUID
	RequestID        uuid.UUID
	EventID          uuid.UUID
	OrganizerID      uuid.UUID
	VendorID         uuid.UUID
	Title            string
	ServiceCategory  string
	VenueName        string
	VenueAddress     string
	EventDate        time.Time
	GuestCount       int
	TotalAmount      decimal.Decimal
	DepositAmount    decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	AmountPaid       decimal.Decimal
	AmountDue        decimal.Decimal
	Currency         valueobject.Currency
	PaymentStatus    PaymentStatus
	Status           BookingStatus
	CompletionNotes  string
	CompletedAt      *time.Time
	CancelledAt      *time.Time
}

// NewBookingFromQuote creates a CONFIRMED booking from an accepted quote and
// its request. The commission rate is the vendor's rate at acceptance time;
// it is snapshotted so later rate changes do not affect this booking.
func NewBookingFromQuote(bookingNumber string, quote *Quote, request *BookingRequest, commissionRate decimal.Decimal) (*Booking, error) {
	if bookingNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Booking number cannot be empty")
	}
	if quote == nil || request == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quote and request are required")
	}
	if quote.Status != QuoteStatusAccepted {
		return nil, shared.NewDomainError("INVALID_STATE", "Booking can only be created from an accepted quote")
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(oneHundred) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Commission rate must be between 0 and 100")
	}

	commission := quote.TotalAmount.Mul(commissionRate).Div(oneHundred).Round(2)

	booking := &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BookingNumber:     bookingNumber,
		QuoteID:           quote.ID,
		RequestID:         request.ID,
		EventID:           request.EventID,
		OrganizerID:       request.OrganizerID,
		VendorID:          request.VendorID,
		Title:             request.Title,
		ServiceCategory:   request.ServiceCategory,
		VenueName:         request.VenueName,
		VenueAddress:      request.VenueAddress,
		EventDate:         request.EventDate,
		GuestCount:        request.GuestCount,
		TotalAmount:       quote.TotalAmount,
		DepositAmount:     quote.DepositAmount,
		CommissionRate:    commissionRate,
		CommissionAmount:  commission,
		AmountPaid:        decimal.Zero,
		AmountDue:         quote.TotalAmount,
		Currency:          quote.Currency,
		PaymentStatus:     PaymentStatusPending,
		Status:            BookingStatusConfirmed,
	}

	booking.AddDomainEvent(NewBookingCreatedEvent(booking))
	return booking, nil
}

// ApplyPayment settles a processed payment against the booking balance and
// derives the payment status. A deposit payment always yields DEPOSIT_PAID,
// even when it settles the full balance; otherwise a cleared balance yields
// PAID and anything in between PARTIAL.
func (b *Booking) ApplyPayment(amount decimal.Decimal, isDeposit bool) error {
	if b.Status == BookingStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot apply payments to a cancelled booking")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}
	if amount.GreaterThan(b.AmountDue) {
		return shared.NewDomainError("VALIDATION_ERROR", "Payment amount cannot exceed the amount due")
	}

	b.AmountPaid = b.AmountPaid.Add(amount)
	b.AmountDue = b.TotalAmount.Sub(b.AmountPaid)

	switch {
	case isDeposit:
		b.PaymentStatus = PaymentStatusDepositPaid
	case b.AmountPaid.GreaterThanOrEqual(b.TotalAmount):
		b.PaymentStatus = PaymentStatusPaid
	default:
		b.PaymentStatus = PaymentStatusPartial
	}
	b.UpdatedAt = time.Now()
	return nil
}

// Complete marks the booking as delivered. Requires CONFIRMED status and an
// event date in the past.
func (b *Booking) Complete(now time.Time, notes string) error {
	if !b.Status.CanTransitionTo(BookingStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE", "Only confirmed bookings can be completed")
	}
	if b.EventDate.After(now) {
		return shared.NewDomainError("INVALID_STATE", "Booking cannot be completed before the event date")
	}
	b.Status = BookingStatusCompleted
	b.CompletionNotes = notes
	b.CompletedAt = &now
	b.UpdatedAt = now
	b.AddDomainEvent(NewBookingCompletedEvent(b))
	return nil
}

// Cancel marks the booking as cancelled with the outcome of the refund
// policy. The cancellation record is persisted alongside in the same
// transaction.
func (b *Booking) Cancel(cancellation *BookingCancellation) error {
	if !b.Status.CanTransitionTo(BookingStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "Booking cannot be cancelled in status "+b.Status.String())
	}
	if cancellation == nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Cancellation record is required")
	}
	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	if cancellation.RefundAmount.IsPositive() {
		b.PaymentStatus = PaymentStatusRefunded
	}
	b.UpdatedAt = now
	b.AddDomainEvent(NewBookingCancelledEvent(b, cancellation))
	return nil
}
