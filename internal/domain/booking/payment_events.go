package booking

import (
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeBookingPayment = "BookingPayment"

// Event type constants
const (
	EventTypePaymentRecorded  = "PaymentRecorded"
	EventTypePaymentProcessed = "PaymentProcessed"
)

// PaymentRecordedEvent is raised when the organizer records a pending payment
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID     uuid.UUID       `json:"payment_id"`
	PaymentNumber string          `json:"payment_number"`
	BookingID     uuid.UUID       `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	IsDeposit     bool            `json:"is_deposit"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(p *BookingPayment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypeBookingPayment, p.ID),
		PaymentID:       p.ID,
		PaymentNumber:   p.PaymentNumber,
		BookingID:       p.BookingID,
		Amount:          p.Amount,
		IsDeposit:       p.IsDeposit,
	}
}

// EventType returns the event type name
func (e *PaymentRecordedEvent) EventType() string {
	return EventTypePaymentRecorded
}

// PaymentProcessedEvent is raised when the gateway confirms a payment and the
// booking balance has been updated
type PaymentProcessedEvent struct {
	shared.BaseDomainEvent
	PaymentID            uuid.UUID       `json:"payment_id"`
	PaymentNumber        string          `json:"payment_number"`
	BookingID            uuid.UUID       `json:"booking_id"`
	Amount               decimal.Decimal `json:"amount"`
	IsDeposit            bool            `json:"is_deposit"`
	GatewayName          string          `json:"gateway_name"`
	GatewayTransactionID string          `json:"gateway_transaction_id"`
}

// NewPaymentProcessedEvent creates a new PaymentProcessedEvent
func NewPaymentProcessedEvent(p *BookingPayment) *PaymentProcessedEvent {
	return &PaymentProcessedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypePaymentProcessed, AggregateTypeBookingPayment, p.ID),
		PaymentID:            p.ID,
		PaymentNumber:        p.PaymentNumber,
		BookingID:            p.BookingID,
		Amount:               p.Amount,
		IsDeposit:            p.IsDeposit,
		GatewayName:          p.GatewayName,
		GatewayTransactionID: p.GatewayTransactionID,
	}
}

// EventType returns the event type name
func (e *PaymentProcessedEvent) EventType() string {
	return EventTypePaymentProcessed
}
