package booking

import (
	"context"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentCallbackTTL bounds how long a processed gateway transaction id is
// remembered for duplicate-callback suppression
const paymentCallbackTTL = 7 * 24 * time.Hour

// PaymentService handles the payment ledger: recording pending payments and
// settling them from gateway confirmations
type PaymentService struct {
	paymentRepo    booking.BookingPaymentRepository
	bookingRepo    booking.BookingRepository
	sequenceRepo   booking.NumberSequenceRepository
	idempotency    shared.IdempotencyStore
	eventPublisher shared.EventPublisher
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo booking.BookingPaymentRepository, bookingRepo booking.BookingRepository, sequenceRepo booking.NumberSequenceRepository, idempotency shared.IdempotencyStore) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		sequenceRepo: sequenceRepo,
		idempotency:  idempotency,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Record creates a pending payment against a booking. Organizer only. The
// amount must be positive and must not exceed the outstanding balance.
func (s *PaymentService) Record(ctx context.Context, caller Caller, req RecordPaymentRequest) (*PaymentResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && b.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the organizer can record payments for this booking")
	}
	if b.Status == booking.BookingStatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot record payments on a cancelled booking")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}
	if req.Amount.GreaterThan(b.AmountDue) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount cannot exceed the amount due")
	}

	year := time.Now().Year()
	value, err := s.sequenceRepo.Next(ctx, booking.SequenceScopePayment, year)
	if err != nil {
		return nil, err
	}
	paymentNumber := booking.FormatDocumentNumber(booking.NumberPrefixPayment, year, value)

	payment, err := booking.NewBookingPayment(paymentNumber, b.ID, req.Amount, req.IsDeposit, req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	s.publish(ctx, payment.GetDomainEvents())
	payment.ClearDomainEvents()

	response := ToPaymentResponse(payment)
	return &response, nil
}

// Process settles a pending payment from a gateway confirmation and applies
// it to the booking balance. The gateway transaction id is the idempotency
// key: a duplicate callback returns the already-settled payment without
// touching the balance again. Payment row and booking balance commit in one
// transaction; the booking is written under its optimistic version lock.
func (s *PaymentService) Process(ctx context.Context, paymentID uuid.UUID, req ProcessPaymentRequest) (*PaymentResponse, error) {
	if s.idempotency != nil {
		fresh, err := s.idempotency.MarkProcessed(ctx, "payment:callback:"+req.GatewayTransactionID, paymentCallbackTTL)
		if err == nil && !fresh {
			payment, ferr := s.paymentRepo.FindByGatewayTransactionID(ctx, req.GatewayTransactionID)
			if ferr == nil {
				response := ToPaymentResponse(payment)
				return &response, nil
			}
			// Fall through: the key was marked but the settlement never
			// committed, so process normally
		}
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	b, err := s.bookingRepo.FindByID(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := payment.MarkPaid(req.GatewayName, req.GatewayTransactionID, now); err != nil {
		return nil, err
	}
	if err := b.ApplyPayment(payment.Amount, payment.IsDeposit); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.SavePaymentAndBooking(ctx, payment, b); err != nil {
		return nil, err
	}
	s.publish(ctx, payment.GetDomainEvents())
	payment.ClearDomainEvents()

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment together with its booking-side authorization
func (s *PaymentService) GetByID(ctx context.Context, caller Caller, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	b, err := s.bookingRepo.FindByID(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && b.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Not a party to this payment")
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// ListByBooking retrieves all payments recorded against a booking
func (s *PaymentService) ListByBooking(ctx context.Context, caller Caller, bookingID uuid.UUID) ([]PaymentResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && b.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Not a party to this booking")
	}
	payments, err := s.paymentRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}

func (s *PaymentService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
