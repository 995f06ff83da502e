package booking

import (
	"math"
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CancellationInitiator identifies which side cancelled a booking
type CancellationInitiator string

const (
	InitiatorOrganizer CancellationInitiator = "ORGANIZER"
	InitiatorVendor    CancellationInitiator = "VENDOR"
	InitiatorAdmin     CancellationInitiator = "ADMIN"
)

// IsValid checks if the initiator is a valid CancellationInitiator
func (i CancellationInitiator) IsValid() bool {
	switch i {
	case InitiatorOrganizer, InitiatorVendor, InitiatorAdmin:
		return true
	}
	return false
}

// RefundPercentageForDays returns the refundable share of the amount paid
// given how many whole days remain before the event:
// 60 or more days 100%, 30-59 days 75%, 14-29 days 50%, 7-13 days 25%,
// under 7 days (including past events) 0%.
func RefundPercentageForDays(days int) decimal.Decimal {
	switch {
	case days >= 60:
		return decimal.NewFromInt(100)
	case days >= 30:
		return decimal.NewFromInt(75)
	case days >= 14:
		return decimal.NewFromInt(50)
	case days >= 7:
		return decimal.NewFromInt(25)
	default:
		return decimal.Zero
	}
}

// DaysBeforeEvent computes whole days between now and the event date,
// flooring partial days. Negative when the event has already passed, so an
// event a few hours gone records -1 rather than 0.
func DaysBeforeEvent(eventDate, now time.Time) int {
	return int(math.Floor(eventDate.Sub(now).Hours() / 24))
}

// BookingCancellation records why and by whom a booking was cancelled and
// the refund computed by the tiered policy. At most one exists per booking.
type BookingCancellation struct {
	shared.BaseEntity
	BookingID        uuid.UUID
	CancelledBy      uuid.UUID
	Initiator        CancellationInitiator
	Reason           string
	ReasonCategory   string
	DaysBeforeEvent  int
	RefundPercentage decimal.Decimal
	RefundAmount     decimal.Decimal
	PenaltyAmount    decimal.Decimal
	OrganizerNotes   string
	VendorNotes      string
}

// NewBookingCancellation computes the refund outcome for cancelling the given
// booking at time now. RefundAmount is the refundable share of the amount
// paid so far; the rest of the paid amount is the penalty.
func NewBookingCancellation(b *Booking, cancelledBy uuid.UUID, initiator CancellationInitiator, reason, reasonCategory string, now time.Time) (*BookingCancellation, error) {
	if b == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Booking is required")
	}
	if cancelledBy == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cancelling user ID cannot be empty")
	}
	if !initiator.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid cancellation initiator")
	}
	if reason == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cancellation reason cannot be empty")
	}

	days := DaysBeforeEvent(b.EventDate, now)
	percentage := RefundPercentageForDays(days)
	refund := b.AmountPaid.Mul(percentage).Div(oneHundred).Round(2)
	penalty := b.AmountPaid.Sub(refund)

	return &BookingCancellation{
		BaseEntity:       shared.NewBaseEntity(),
		BookingID:        b.ID,
		CancelledBy:      cancelledBy,
		Initiator:        initiator,
		Reason:           reason,
		ReasonCategory:   reasonCategory,
		DaysBeforeEvent:  days,
		RefundPercentage: percentage,
		RefundAmount:     refund,
		PenaltyAmount:    penalty,
	}, nil
}
