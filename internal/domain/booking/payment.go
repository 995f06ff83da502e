package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/celebratech/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingPaymentStatus represents the status of a single payment
type BookingPaymentStatus string

const (
	BookingPaymentStatusPending BookingPaymentStatus = "PENDING"
	BookingPaymentStatusPaid    BookingPaymentStatus = "PAID"
)

// IsValid checks if the status is a valid BookingPaymentStatus
func (s BookingPaymentStatus) IsValid() bool {
	switch s {
	case BookingPaymentStatusPending, BookingPaymentStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of BookingPaymentStatus
func (s BookingPaymentStatus) String() string {
	return string(s)
}

// BookingPayment is one ledger entry against a booking's balance. It is
// recorded PENDING by the organizer and marked PAID exactly once when the
// gateway confirms the charge.
type BookingPayment struct {
	shared.BaseAggregateRoot
	PaymentNumber        string
	BookingID            uuid.UUID
	Amount               decimal.Decimal
	Currency             valueobject.Currency
	IsDeposit            bool
	PaymentMethod        string
	GatewayName          string
	GatewayTransactionID string
	Status               BookingPaymentStatus
	PaidAt               *time.Time
}

// NewBookingPayment records a new pending payment against a booking
func NewBookingPayment(paymentNumber string, bookingID uuid.UUID, amount decimal.Decimal, isDeposit bool, paymentMethod string) (*BookingPayment, error) {
	if paymentNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment number cannot be empty")
	}
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Booking ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}

	payment := &BookingPayment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PaymentNumber:     paymentNumber,
		BookingID:         bookingID,
		Amount:            amount.Round(2),
		Currency:          valueobject.DefaultCurrency,
		IsDeposit:         isDeposit,
		PaymentMethod:     paymentMethod,
		Status:            BookingPaymentStatusPending,
	}

	payment.AddDomainEvent(NewPaymentRecordedEvent(payment))
	return payment, nil
}

// MarkPaid settles the payment with the gateway confirmation. A payment can
// only be settled once.
func (p *BookingPayment) MarkPaid(gatewayName, gatewayTransactionID string, now time.Time) error {
	if p.Status != BookingPaymentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Payment has already been processed")
	}
	if gatewayTransactionID == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Gateway transaction ID cannot be empty")
	}
	p.Status = BookingPaymentStatusPaid
	p.GatewayName = gatewayName
	p.GatewayTransactionID = gatewayTransactionID
	p.PaidAt = &now
	p.UpdatedAt = now
	p.AddDomainEvent(NewPaymentProcessedEvent(p))
	return nil
}
