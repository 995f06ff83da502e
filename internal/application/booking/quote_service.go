package booking

import (
	"context"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteService handles the quote lifecycle: creation by the vendor, delivery
// to the organizer, and the accept/reject decision. Acceptance is the one
// compound operation: it turns the quote into a booking atomically.
type QuoteService struct {
	quoteRepo         booking.QuoteRepository
	requestRepo       booking.BookingRequestRepository
	bookingRepo       booking.BookingRepository
	sequenceRepo      booking.NumberSequenceRepository
	vendorDir         acl.VendorDirectory
	eventPublisher    shared.EventPublisher
	validityDays      int
	defaultDepositPct decimal.Decimal
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteRepo booking.QuoteRepository, requestRepo booking.BookingRequestRepository, bookingRepo booking.BookingRepository, sequenceRepo booking.NumberSequenceRepository, vendorDir acl.VendorDirectory, validityDays int, defaultDepositPct decimal.Decimal) *QuoteService {
	return &QuoteService{
		quoteRepo:         quoteRepo,
		requestRepo:       requestRepo,
		bookingRepo:       bookingRepo,
		sequenceRepo:      sequenceRepo,
		vendorDir:         vendorDir,
		validityDays:      validityDays,
		defaultDepositPct: defaultDepositPct,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *QuoteService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create drafts a new quote revision for a request. Only the owning vendor
// may quote, and only while the request is PENDING or QUOTED and unexpired.
func (s *QuoteService) Create(ctx context.Context, caller Caller, req CreateQuoteRequest) (*QuoteResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.getVendor(ctx, request.VendorID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !vendor.IsOwnedBy(caller.UserID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the owning vendor can quote this request")
	}
	now := time.Now()
	if request.IsExpired(now) {
		return nil, shared.NewDomainError("EXPIRED", "Booking request has expired")
	}
	if !request.CanReceiveQuote(now) {
		return nil, shared.NewDomainError("INVALID_STATE", "Request cannot receive a quote in status "+request.Status.String())
	}

	quoteNumber, err := s.nextNumber(ctx, booking.SequenceScopeQuote, booking.NumberPrefixQuote)
	if err != nil {
		return nil, err
	}
	revision, err := s.quoteRepo.NextRevision(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}

	depositPct := s.defaultDepositPct
	if req.DepositPercentage != nil {
		depositPct = *req.DepositPercentage
	}
	validDays := req.ValidDays
	if validDays <= 0 {
		validDays = s.validityDays
	}

	quote, err := booking.NewQuote(quoteNumber, request.ID, request.VendorID, request.OrganizerID, revision, req.TaxRate, req.DiscountAmount, depositPct, validDays)
	if err != nil {
		return nil, err
	}
	quote.Description = req.Description
	quote.PaymentTerms = req.PaymentTerms
	quote.CancellationPolicy = req.CancellationPolicy
	quote.DiscountReason = req.DiscountReason

	for _, input := range req.Items {
		if _, err := quote.AddItem(input.Name, input.UnitLabel, input.Quantity, input.UnitPrice, input.DiscountPercentage); err != nil {
			return nil, err
		}
		item := &quote.Items[len(quote.Items)-1]
		item.Description = input.Description
		item.Category = input.Category
		item.IsOptional = input.IsOptional
		item.IsCustomizable = input.IsCustomizable
	}

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}
	s.publish(ctx, quote.GetDomainEvents())
	quote.ClearDomainEvents()

	response := ToQuoteResponse(quote)
	return &response, nil
}

// GetByID retrieves a quote. Visible to the organizer, the owning vendor and
// admins.
func (s *QuoteService) GetByID(ctx context.Context, caller Caller, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeParty(ctx, caller, quote); err != nil {
		return nil, err
	}
	response := ToQuoteResponse(quote)
	return &response, nil
}

// ListByRequest retrieves all quote revisions for a request
func (s *QuoteService) ListByRequest(ctx context.Context, caller Caller, requestID uuid.UUID) ([]QuoteResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && request.OrganizerID != caller.UserID {
		vendor, err := s.getVendor(ctx, request.VendorID)
		if err != nil || !vendor.IsOwnedBy(caller.UserID) {
			return nil, shared.NewDomainError("FORBIDDEN", "Not a party to this booking request")
		}
	}

	quotes, err := s.quoteRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return ToQuoteResponses(quotes), nil
}

// Send delivers a draft quote to the organizer and marks the request QUOTED
func (s *QuoteService) Send(ctx context.Context, caller Caller, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.getVendor(ctx, quote.VendorID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !vendor.IsOwnedBy(caller.UserID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the owning vendor can send this quote")
	}

	request, err := s.requestRepo.FindByID(ctx, quote.RequestID)
	if err != nil {
		return nil, err
	}
	if err := quote.Send(); err != nil {
		return nil, err
	}
	if err := request.MarkQuoted(); err != nil {
		return nil, err
	}

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	s.publish(ctx, quote.GetDomainEvents())
	quote.ClearDomainEvents()

	response := ToQuoteResponse(quote)
	return &response, nil
}

// View records the organizer's first view of a sent quote. Idempotent.
func (s *QuoteService) View(ctx context.Context, caller Caller, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && quote.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the organizer can view this quote")
	}

	before := quote.Status
	if err := quote.MarkViewed(); err != nil {
		return nil, err
	}
	if quote.Status != before {
		if err := s.quoteRepo.Save(ctx, quote); err != nil {
			return nil, err
		}
		s.publish(ctx, quote.GetDomainEvents())
		quote.ClearDomainEvents()
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// Accept accepts a quote on behalf of the organizer and materializes the
// booking. The quote transition, the request transition and the booking
// creation commit in one transaction; if any of them fails nothing is
// persisted.
func (s *QuoteService) Accept(ctx context.Context, caller Caller, quoteID uuid.UUID) (*BookingResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && quote.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the organizer can accept this quote")
	}

	request, err := s.requestRepo.FindByID(ctx, quote.RequestID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.getVendor(ctx, quote.VendorID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := quote.Accept(now); err != nil {
		return nil, err
	}
	if err := request.Accept(); err != nil {
		return nil, err
	}

	bookingNumber, err := s.nextNumber(ctx, booking.SequenceScopeBooking, booking.NumberPrefixBooking)
	if err != nil {
		return nil, err
	}
	b, err := booking.NewBookingFromQuote(bookingNumber, quote, request, vendor.CommissionRate)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.AcceptQuoteAndCreateBooking(ctx, quote, request, b); err != nil {
		return nil, err
	}
	s.publish(ctx, quote.GetDomainEvents())
	s.publish(ctx, b.GetDomainEvents())
	quote.ClearDomainEvents()
	b.ClearDomainEvents()

	response := ToBookingResponse(b)
	return &response, nil
}

// Reject rejects a quote with the organizer's reason. The request stays
// QUOTED so the vendor may send a new revision.
func (s *QuoteService) Reject(ctx context.Context, caller Caller, quoteID uuid.UUID, req RejectQuoteRequest) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && quote.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the organizer can reject this quote")
	}

	if err := quote.Reject(req.Reason); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}
	s.publish(ctx, quote.GetDomainEvents())
	quote.ClearDomainEvents()

	response := ToQuoteResponse(quote)
	return &response, nil
}

func (s *QuoteService) getVendor(ctx context.Context, vendorID uuid.UUID) (*acl.VendorRef, error) {
	vid, err := acl.NewVendorID(vendorID)
	if err != nil {
		return nil, err
	}
	return s.vendorDir.GetVendor(ctx, vid)
}

func (s *QuoteService) authorizeParty(ctx context.Context, caller Caller, quote *booking.Quote) error {
	if caller.IsAdmin() || quote.OrganizerID == caller.UserID {
		return nil
	}
	vendor, err := s.getVendor(ctx, quote.VendorID)
	if err == nil && vendor.IsOwnedBy(caller.UserID) {
		return nil
	}
	return shared.NewDomainError("FORBIDDEN", "Not a party to this quote")
}

func (s *QuoteService) nextNumber(ctx context.Context, scope, prefix string) (string, error) {
	year := time.Now().Year()
	value, err := s.sequenceRepo.Next(ctx, scope, year)
	if err != nil {
		return "", err
	}
	return booking.FormatDocumentNumber(prefix, year, value), nil
}

func (s *QuoteService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
