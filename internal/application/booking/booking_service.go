package booking

import (
	"context"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BookingService handles confirmed bookings: metadata updates, completion
// and cancellation
type BookingService struct {
	bookingRepo      booking.BookingRepository
	cancellationRepo booking.BookingCancellationRepository
	vendorDir        acl.VendorDirectory
	eventPublisher   shared.EventPublisher
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo booking.BookingRepository, cancellationRepo booking.BookingCancellationRepository, vendorDir acl.VendorDirectory) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		cancellationRepo: cancellationRepo,
		vendorDir:        vendorDir,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *BookingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves a booking. Visible to the organizer, the owning vendor
// and admins.
func (s *BookingService) GetByID(ctx context.Context, caller Caller, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeParty(ctx, caller, b); err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// List retrieves bookings with filtering and pagination
func (s *BookingService) List(ctx context.Context, caller Caller, filter BookingListFilter) ([]BookingResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.EventID != nil {
		domainFilter.Filters["event_id"] = *filter.EventID
	}
	if filter.VendorID != nil {
		domainFilter.Filters["vendor_id"] = *filter.VendorID
	}
	if filter.OrganizerID != nil {
		domainFilter.Filters["organizer_id"] = *filter.OrganizerID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if !caller.IsAdmin() && caller.Role == RoleOrganizer {
		domainFilter.Filters["organizer_id"] = caller.UserID
	}

	bookings, err := s.bookingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bookingRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToBookingResponses(bookings), total, nil
}

// Update changes non-financial booking metadata. The agreed amounts and the
// commission snapshot are never touched here.
func (s *BookingService) Update(ctx context.Context, caller Caller, bookingID uuid.UUID, req UpdateBookingRequest) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && b.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the organizer can update this booking")
	}
	if b.Status != booking.BookingStatusConfirmed {
		return nil, shared.NewDomainError("INVALID_STATE", "Only confirmed bookings can be updated")
	}

	if req.VenueName != nil {
		b.VenueName = *req.VenueName
	}
	if req.VenueAddress != nil {
		b.VenueAddress = *req.VenueAddress
	}
	if req.GuestCount != nil {
		b.GuestCount = *req.GuestCount
	}
	b.UpdatedAt = time.Now()

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// Complete marks a booking delivered. Allowed for the owning vendor or an
// admin, only once the event date has passed. Emits BookingCompleted, which
// drives the vendor completion-rate recalculation.
func (s *BookingService) Complete(ctx context.Context, caller Caller, bookingID uuid.UUID, req CompleteBookingRequest) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		vendor, err := s.getVendor(ctx, b.VendorID)
		if err != nil {
			return nil, err
		}
		if !vendor.IsOwnedBy(caller.UserID) {
			return nil, shared.NewDomainError("FORBIDDEN", "Only the owning vendor can complete this booking")
		}
	}

	if err := b.Complete(time.Now(), req.Notes); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}
	s.publish(ctx, b.GetDomainEvents())
	b.ClearDomainEvents()

	response := ToBookingResponse(b)
	return &response, nil
}

// Cancel cancels a booking. The initiator is derived from the caller's
// relationship to the booking; the tiered refund policy determines the
// refund and penalty from the amount paid so far. The booking transition and
// the cancellation record commit in one transaction.
func (s *BookingService) Cancel(ctx context.Context, caller Caller, bookingID uuid.UUID, req CancelBookingRequest) (*CancellationResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	initiator, err := s.deriveInitiator(ctx, caller, b)
	if err != nil {
		return nil, err
	}

	cancellation, err := booking.NewBookingCancellation(b, caller.UserID, initiator, req.Reason, req.ReasonCategory, time.Now())
	if err != nil {
		return nil, err
	}
	switch initiator {
	case booking.InitiatorOrganizer:
		cancellation.OrganizerNotes = req.Notes
	case booking.InitiatorVendor:
		cancellation.VendorNotes = req.Notes
	}

	if err := b.Cancel(cancellation); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.CancelBooking(ctx, b, cancellation); err != nil {
		return nil, err
	}
	s.publish(ctx, b.GetDomainEvents())
	b.ClearDomainEvents()

	response := ToCancellationResponse(cancellation)
	return &response, nil
}

// GetCancellation retrieves the cancellation record of a cancelled booking
func (s *BookingService) GetCancellation(ctx context.Context, caller Caller, bookingID uuid.UUID) (*CancellationResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeParty(ctx, caller, b); err != nil {
		return nil, err
	}
	cancellation, err := s.cancellationRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	response := ToCancellationResponse(cancellation)
	return &response, nil
}

// deriveInitiator maps the caller to the cancelling side: admins cancel as
// ADMIN, the booking's organizer as ORGANIZER, the vendor owner as VENDOR.
// Anyone else is forbidden.
func (s *BookingService) deriveInitiator(ctx context.Context, caller Caller, b *booking.Booking) (booking.CancellationInitiator, error) {
	if caller.IsAdmin() {
		return booking.InitiatorAdmin, nil
	}
	if b.OrganizerID == caller.UserID {
		return booking.InitiatorOrganizer, nil
	}
	vendor, err := s.getVendor(ctx, b.VendorID)
	if err == nil && vendor.IsOwnedBy(caller.UserID) {
		return booking.InitiatorVendor, nil
	}
	return "", shared.NewDomainError("FORBIDDEN", "Not a party to this booking")
}

func (s *BookingService) authorizeParty(ctx context.Context, caller Caller, b *booking.Booking) error {
	if caller.IsAdmin() || b.OrganizerID == caller.UserID {
		return nil
	}
	vendor, err := s.getVendor(ctx, b.VendorID)
	if err == nil && vendor.IsOwnedBy(caller.UserID) {
		return nil
	}
	return shared.NewDomainError("FORBIDDEN", "Not a party to this booking")
}

func (s *BookingService) getVendor(ctx context.Context, vendorID uuid.UUID) (*acl.VendorRef, error) {
	vid, err := acl.NewVendorID(vendorID)
	if err != nil {
		return nil, err
	}
	return s.vendorDir.GetVendor(ctx, vid)
}

func (s *BookingService) publish(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}
