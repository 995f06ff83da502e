package booking

import (
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeQuote = "Quote"

// Event type constants
const (
	EventTypeQuoteCreated  = "QuoteCreated"
	EventTypeQuoteSent     = "QuoteSent"
	EventTypeQuoteViewed   = "QuoteViewed"
	EventTypeQuoteAccepted = "QuoteAccepted"
	EventTypeQuoteRejected = "QuoteRejected"
)

// QuoteCreatedEvent is raised when a vendor drafts a quote for a request
type QuoteCreatedEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
	RequestID   uuid.UUID `json:"request_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Revision    int       `json:"revision"`
}

// NewQuoteCreatedEvent creates a new QuoteCreatedEvent
func NewQuoteCreatedEvent(quote *Quote) *QuoteCreatedEvent {
	return &QuoteCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteCreated, AggregateTypeQuote, quote.ID),
		QuoteID:         quote.ID,
		QuoteNumber:     quote.QuoteNumber,
		RequestID:       quote.RequestID,
		VendorID:        quote.VendorID,
		Revision:        quote.Revision,
	}
}

// EventType returns the event type name
func (e *QuoteCreatedEvent) EventType() string {
	return EventTypeQuoteCreated
}

// QuoteSentEvent is raised when a quote is delivered to the organizer
type QuoteSentEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID       `json:"quote_id"`
	QuoteNumber string          `json:"quote_number"`
	RequestID   uuid.UUID       `json:"request_id"`
	OrganizerID uuid.UUID       `json:"organizer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewQuoteSentEvent creates a new QuoteSentEvent
func NewQuoteSentEvent(quote *Quote) *QuoteSentEvent {
	return &QuoteSentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteSent, AggregateTypeQuote, quote.ID),
		QuoteID:         quote.ID,
		QuoteNumber:     quote.QuoteNumber,
		RequestID:       quote.RequestID,
		OrganizerID:     quote.OrganizerID,
		TotalAmount:     quote.TotalAmount,
	}
}

// EventType returns the event type name
func (e *QuoteSentEvent) EventType() string {
	return EventTypeQuoteSent
}

// QuoteViewedEvent is raised the first time the organizer opens a sent quote
type QuoteViewedEvent struct {
	shared.BaseDomainEvent
	QuoteID  uuid.UUID `json:"quote_id"`
	VendorID uuid.UUID `json:"vendor_id"`
}

// NewQuoteViewedEvent creates a new QuoteViewedEvent
func NewQuoteViewedEvent(quote *Quote) *QuoteViewedEvent {
	return &QuoteViewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteViewed, AggregateTypeQuote, quote.ID),
		QuoteID:         quote.ID,
		VendorID:        quote.VendorID,
	}
}

// EventType returns the event type name
func (e *QuoteViewedEvent) EventType() string {
	return EventTypeQuoteViewed
}

// QuoteAcceptedEvent is raised when the organizer accepts a quote.
// A booking is created in the same transaction.
type QuoteAcceptedEvent struct {
	shared.BaseDomainEvent
	QuoteID     uuid.UUID       `json:"quote_id"`
	QuoteNumber string          `json:"quote_number"`
	RequestID   uuid.UUID       `json:"request_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	OrganizerID uuid.UUID       `json:"organizer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewQuoteAcceptedEvent creates a new QuoteAcceptedEvent
func NewQuoteAcceptedEvent(quote *Quote) *QuoteAcceptedEvent {
	return &QuoteAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteAccepted, AggregateTypeQuote, quote.ID),
		QuoteID:         quote.ID,
		QuoteNumber:     quote.QuoteNumber,
		RequestID:       quote.RequestID,
		VendorID:        quote.VendorID,
		OrganizerID:     quote.OrganizerID,
		TotalAmount:     quote.TotalAmount,
	}
}

// EventType returns the event type name
func (e *QuoteAcceptedEvent) EventType() string {
	return EventTypeQuoteAccepted
}

// QuoteRejectedEvent is raised when the organizer rejects a quote
type QuoteRejectedEvent struct {
	shared.BaseDomainEvent
	QuoteID   uuid.UUID `json:"quote_id"`
	RequestID uuid.UUID `json:"request_id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Reason    string    `json:"reason"`
}

// NewQuoteRejectedEvent creates a new QuoteRejectedEvent
func NewQuoteRejectedEvent(quote *Quote) *QuoteRejectedEvent {
	return &QuoteRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeQuoteRejected, AggregateTypeQuote, quote.ID),
		QuoteID:         quote.ID,
		RequestID:       quote.RequestID,
		VendorID:        quote.VendorID,
		Reason:          quote.RejectionReason,
	}
}

// EventType returns the event type name
func (e *QuoteRejectedEvent) EventType() string {
	return EventTypeQuoteRejected
}
