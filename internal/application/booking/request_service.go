package booking

import (
	"context"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestService handles booking request operations
type RequestService struct {
	requestRepo    booking.BookingRequestRepository
	vendorDir      acl.VendorDirectory
	eventDir       acl.EventDirectory
	eventPublisher shared.EventPublisher
	expiryDays     int
}

// NewRequestService creates a new RequestService
func NewRequestService(requestRepo booking.BookingRequestRepository, vendorDir acl.VendorDirectory, eventDir acl.EventDirectory, expiryDays int) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		vendorDir:   vendorDir,
		eventDir:    eventDir,
		expiryDays:  expiryDays,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *RequestService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a booking request for one of the caller's events. The
// target vendor must be active. Unless Draft is set the request is submitted
// to the vendor immediately.
func (s *RequestService) Create(ctx context.Context, caller Caller, req CreateRequestRequest) (*RequestResponse, error) {
	eventID, err := acl.NewEventID(req.EventID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventDir.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && !event.IsOrganizedBy(caller.UserID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the event organizer can create requests for it")
	}

	vendorID, err := acl.NewVendorID(req.VendorID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.vendorDir.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Vendor is not accepting booking requests")
	}

	request, err := booking.NewBookingRequest(req.EventID, event.OrganizerID, req.VendorID, req.Title, req.ServiceCategory, event.Date, s.expiryDays)
	if err != nil {
		return nil, err
	}
	if err := request.UpdateDetails(booking.RequestDetails{
		Title:               req.Title,
		Description:         req.Description,
		VenueName:           req.VenueName,
		VenueAddress:        req.VenueAddress,
		GuestCount:          req.GuestCount,
		SpecialRequirements: req.SpecialRequirements,
		BudgetMin:           req.BudgetMin,
		BudgetMax:           req.BudgetMax,
		PreferredContact:    req.PreferredContact,
		ResponseDeadline:    req.ResponseDeadline,
	}); err != nil {
		return nil, err
	}
	if !req.Draft {
		if err := request.Submit(); err != nil {
			return nil, err
		}
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, request)

	response := ToRequestResponse(request)
	return &response, nil
}

// GetByID retrieves a booking request. Visible to the organizer, the owning
// vendor and admins.
func (s *RequestService) GetByID(ctx context.Context, caller Caller, requestID uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeAccess(ctx, caller, request); err != nil {
		return nil, err
	}
	response := ToRequestResponse(request)
	return &response, nil
}

// List retrieves booking requests with filtering and pagination
func (s *RequestService) List(ctx context.Context, caller Caller, filter RequestListFilter) ([]RequestResponse, int64, error) {
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
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	// Non-admin callers only see their own side of the marketplace
	if !caller.IsAdmin() && caller.Role == RoleOrganizer {
		domainFilter.Filters["organizer_id"] = caller.UserID
	}

	requests, err := s.requestRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.requestRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToRequestResponses(requests), total, nil
}

// Update updates a booking request's editable fields. Organizer only, and
// only while the request is in DRAFT or PENDING.
func (s *RequestService) Update(ctx context.Context, caller Caller, requestID uuid.UUID, req UpdateRequestRequest) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && request.OrganizerID != caller.UserID {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the organizer can update this request")
	}

	if err := request.UpdateDetails(booking.RequestDetails{
		Title:               req.Title,
		Description:         req.Description,
		VenueName:           req.VenueName,
		VenueAddress:        req.VenueAddress,
		GuestCount:          req.GuestCount,
		SpecialRequirements: req.SpecialRequirements,
		BudgetMin:           req.BudgetMin,
		BudgetMax:           req.BudgetMax,
		PreferredContact:    req.PreferredContact,
		ResponseDeadline:    req.ResponseDeadline,
	}); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, request); err != nil {
		return nil, err
	}
	response := ToRequestResponse(request)
	return &response, nil
}

// MarkViewed records the owning vendor's first view of the request.
// Idempotent: repeat calls leave the timestamp untouched.
func (s *RequestService) MarkViewed(ctx context.Context, caller Caller, requestID uuid.UUID) (*RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeVendorOwner(ctx, caller, request.VendorID); err != nil {
		return nil, err
	}

	alreadyViewed := request.VendorViewedAt != nil
	request.MarkViewedByVendor()
	if !alreadyViewed {
		if err := s.requestRepo.Save(ctx, request); err != nil {
			return nil, err
		}
		s.publishEvents(ctx, request)
	}

	response := ToRequestResponse(request)
	return &response, nil
}

func (s *RequestService) authorizeAccess(ctx context.Context, caller Caller, request *booking.BookingRequest) error {
	if caller.IsAdmin() || request.OrganizerID == caller.UserID {
		return nil
	}
	if err := s.authorizeVendorOwner(ctx, caller, request.VendorID); err == nil {
		return nil
	}
	return shared.NewDomainError("FORBIDDEN", "Not a party to this booking request")
}

func (s *RequestService) authorizeVendorOwner(ctx context.Context, caller Caller, vendorID uuid.UUID) error {
	if caller.IsAdmin() {
		return nil
	}
	vid, err := acl.NewVendorID(vendorID)
	if err != nil {
		return err
	}
	vendor, err := s.vendorDir.GetVendor(ctx, vid)
	if err != nil {
		return err
	}
	if !vendor.IsOwnedBy(caller.UserID) {
		return shared.NewDomainError("FORBIDDEN", "Only the owning vendor can perform this action")
	}
	return nil
}

func (s *RequestService) publishEvents(ctx context.Context, request *booking.BookingRequest) {
	if s.eventPublisher == nil {
		return
	}
	events := request.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Best effort: event delivery failures must not fail the committed write
	_ = s.eventPublisher.Publish(ctx, events...)
	request.ClearDomainEvents()
}
