package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeBooking = "Booking"

// Event type constants
const (
	EventTypeBookingCreated   = "BookingCreated"
	EventTypeBookingCompleted = "BookingCompleted"
	EventTypeBookingCancelled = "BookingCancelled"
)

// BookingCreatedEvent is raised when a quote acceptance produces a booking
type BookingCreatedEvent struct {
	shared.BaseDomainEvent
	BookingID     uuid.UUID       `json:"booking_id"`
	BookingNumber string          `json:"booking_number"`
	QuoteID       uuid.UUID       `json:"quote_id"`
	RequestID     uuid.UUID       `json:"request_id"`
	EventRef      uuid.UUID       `json:"event_id"`
	OrganizerID   uuid.UUID       `json:"organizer_id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	EventDate     time.Time       `json:"event_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
}

// NewBookingCreatedEvent creates a new BookingCreatedEvent
func NewBookingCreatedEvent(b *Booking) *BookingCreatedEvent {
	return &BookingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCreated, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		BookingNumber:   b.BookingNumber,
		QuoteID:         b.QuoteID,
		RequestID:       b.RequestID,
		EventRef:        b.EventID,
		OrganizerID:     b.OrganizerID,
		VendorID:        b.VendorID,
		EventDate:       b.EventDate,
		TotalAmount:     b.TotalAmount,
		DepositAmount:   b.DepositAmount,
	}
}

// EventType returns the event type name
func (e *BookingCreatedEvent) EventType() string {
	return EventTypeBookingCreated
}

// BookingCompletedEvent is raised when a booking is marked delivered.
// It triggers recalculation of the vendor's completion rate.
type BookingCompletedEvent struct {
	shared.BaseDomainEvent
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	VendorID      uuid.UUID `json:"vendor_id"`
	OrganizerID   uuid.UUID `json:"organizer_id"`
	CompletedAt   time.Time `json:"completed_at"`
}

// NewBookingCompletedEvent creates a new BookingCompletedEvent
func NewBookingCompletedEvent(b *Booking) *BookingCompletedEvent {
	completedAt := time.Now()
	if b.CompletedAt != nil {
		completedAt = *b.CompletedAt
	}
	return &BookingCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCompleted, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		BookingNumber:   b.BookingNumber,
		VendorID:        b.VendorID,
		OrganizerID:     b.OrganizerID,
		CompletedAt:     completedAt,
	}
}

// EventType returns the event type name
func (e *BookingCompletedEvent) EventType() string {
	return EventTypeBookingCompleted
}

// BookingCancelledEvent is raised when a booking is cancelled, carrying the
// refund outcome for downstream consumers
type BookingCancelledEvent struct {
	shared.BaseDomainEvent
	BookingID        uuid.UUID             `json:"booking_id"`
	BookingNumber    string                `json:"booking_number"`
	VendorID         uuid.UUID             `json:"vendor_id"`
	OrganizerID      uuid.UUID             `json:"organizer_id"`
	Initiator        CancellationInitiator `json:"initiator"`
	DaysBeforeEvent  int                   `json:"days_before_event"`
	RefundPercentage decimal.Decimal       `json:"refund_percentage"`
	RefundAmount     decimal.Decimal       `json:"refund_amount"`
	PenaltyAmount    decimal.Decimal       `json:"penalty_amount"`
}

// NewBookingCancelledEvent creates a new BookingCancelledEvent
func NewBookingCancelledEvent(b *Booking, c *BookingCancellation) *BookingCancelledEvent {
	return &BookingCancelledEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeBookingCancelled, AggregateTypeBooking, b.ID),
		BookingID:        b.ID,
		BookingNumber:    b.BookingNumber,
		VendorID:         b.VendorID,
		OrganizerID:      b.OrganizerID,
		Initiator:        c.Initiator,
		DaysBeforeEvent:  c.DaysBeforeEvent,
		RefundPercentage: c.RefundPercentage,
		RefundAmount:     c.RefundAmount,
		PenaltyAmount:    c.PenaltyAmount,
	}
}

// EventType returns the event type name
func (e *BookingCancelledEvent) EventType() string {
	return EventTypeBookingCancelled
}
