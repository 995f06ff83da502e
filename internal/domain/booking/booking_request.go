package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the status of a booking request
type RequestStatus string

const (
	RequestStatusDraft    RequestStatus = "DRAFT"
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusQuoted   RequestStatus = "QUOTED"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
)

// IsValid checks if the status is a valid RequestStatus
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusDraft, RequestStatusPending, RequestStatusQuoted, RequestStatusAccepted:
		return true
	}
	return false
}

// String returns the string representation of RequestStatus
func (s RequestStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	switch s {
	case RequestStatusDraft:
		return target == RequestStatusPending
	case RequestStatusPending:
		return target == RequestStatusQuoted
	case RequestStatusQuoted:
		return target == RequestStatusAccepted
	case RequestStatusAccepted:
		return false // Terminal state
	}
	return false
}

// DefaultRequestExpiryDays is the window a vendor has to respond before the
// request lapses.
const DefaultRequestExpiryDays = 30

// BookingRequest is an organizer's inquiry to a single vendor for a service
// at an event. It is the root of the quoting conversation: quotes reference
// it and acceptance of a quote moves it to its terminal state.
type BookingRequest struct {
	shared.BaseAggregateRoot
	EventID             uuid.UUID
	OrganizerID         uuid.UUID
	VendorID            uuid.UUID
	Title               string
	Description         string
	ServiceCategory     string
	EventDate           time.Time
	GuestCount          int
	VenueName           string
	VenueAddress        string
	SpecialRequirements string
	BudgetMin           *decimal.Decimal
	BudgetMax           *decimal.Decimal
	PreferredContact    string
	ResponseDeadline    *time.Time
	Status              RequestStatus
	ExpiresAt           time.Time
	VendorViewedAt      *time.Time
	RespondedAt         *time.Time
}

// NewBookingRequest creates a new booking request in DRAFT status
func NewBookingRequest(eventID, organizerID, vendorID uuid.UUID, title, serviceCategory string, eventDate time.Time, expiryDays int) (*BookingRequest, error) {
	if eventID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Event ID cannot be empty")
	}
	if organizerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Organizer ID cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Vendor ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title cannot be empty")
	}
	if serviceCategory == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Service category cannot be empty")
	}
	if !eventDate.After(time.Now()) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Event date must be in the future")
	}
	if expiryDays <= 0 {
		expiryDays = DefaultRequestExpiryDays
	}

	request := &BookingRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EventID:           eventID,
		OrganizerID:       organizerID,
		VendorID:          vendorID,
		Title:             title,
		ServiceCategory:   serviceCategory,
		EventDate:         eventDate,
		Status:            RequestStatusDraft,
		ExpiresAt:         time.Now().AddDate(0, 0, expiryDays),
	}

	request.AddDomainEvent(NewBookingRequestCreatedEvent(request))
	return request, nil
}

// Submit moves the request from DRAFT to PENDING so the vendor can see it
func (r *BookingRequest) Submit() error {
	if !r.Status.CanTransitionTo(RequestStatusPending) {
		return shared.NewDomainError("INVALID_STATE", "Only draft requests can be submitted")
	}
	r.Status = RequestStatusPending
	r.UpdatedAt = time.Now()
	return nil
}

// RequestDetails carries the organizer-editable fields of a request
type RequestDetails struct {
	Title               string
	Description         string
	VenueName           string
	VenueAddress        string
	GuestCount          int
	SpecialRequirements string
	BudgetMin           *decimal.Decimal
	BudgetMax           *decimal.Decimal
	PreferredContact    string
	ResponseDeadline    *time.Time
}

// UpdateDetails updates the editable fields. Allowed only while the request
// is in DRAFT or PENDING.
func (r *BookingRequest) UpdateDetails(details RequestDetails) error {
	if r.Status != RequestStatusDraft && r.Status != RequestStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Request can only be updated in draft or pending status")
	}
	if details.Title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Title cannot be empty")
	}
	if details.GuestCount < 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Guest count cannot be negative")
	}
	if details.BudgetMin != nil && details.BudgetMin.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Budget minimum cannot be negative")
	}
	if details.BudgetMin != nil && details.BudgetMax != nil && details.BudgetMax.LessThan(*details.BudgetMin) {
		return shared.NewDomainError("VALIDATION_ERROR", "Budget maximum cannot be less than budget minimum")
	}

	r.Title = details.Title
	r.Description = details.Description
	r.VenueName = details.VenueName
	r.VenueAddress = details.VenueAddress
	r.GuestCount = details.GuestCount
	r.SpecialRequirements = details.SpecialRequirements
	r.BudgetMin = details.BudgetMin
	r.BudgetMax = details.BudgetMax
	r.PreferredContact = details.PreferredContact
	r.ResponseDeadline = details.ResponseDeadline
	r.UpdatedAt = time.Now()
	return nil
}

// MarkViewedByVendor records the first time the vendor opened the request.
// Subsequent calls are no-ops.
func (r *BookingRequest) MarkViewedByVendor() {
	if r.VendorViewedAt != nil {
		return
	}
	now := time.Now()
	r.VendorViewedAt = &now
	r.UpdatedAt = now
	r.AddDomainEvent(NewBookingRequestViewedEvent(r))
}

// MarkQuoted records that the vendor has responded with a quote.
// The first quote sets RespondedAt; re-quotes keep the original timestamp.
func (r *BookingRequest) MarkQuoted() error {
	switch r.Status {
	case RequestStatusPending:
		r.Status = RequestStatusQuoted
	case RequestStatusQuoted:
		// Re-quote, already in the right status
	default:
		return shared.NewDomainError("INVALID_STATE", "Request cannot receive a quote in status "+r.Status.String())
	}
	if r.RespondedAt == nil {
		now := time.Now()
		r.RespondedAt = &now
	}
	r.UpdatedAt = time.Now()
	return nil
}

// Accept marks the request as accepted. Called when one of its quotes is
// accepted, within the same transaction that creates the booking.
func (r *BookingRequest) Accept() error {
	if !r.Status.CanTransitionTo(RequestStatusAccepted) {
		return shared.NewDomainError("INVALID_STATE", "Only quoted requests can be accepted")
	}
	r.Status = RequestStatusAccepted
	r.UpdatedAt = time.Now()
	return nil
}

// IsExpired reports whether the request has lapsed without acceptance
func (r *BookingRequest) IsExpired(now time.Time) bool {
	return r.Status != RequestStatusAccepted && now.After(r.ExpiresAt)
}

// CanReceiveQuote reports whether a vendor may create a quote for this request
func (r *BookingRequest) CanReceiveQuote(now time.Time) bool {
	if r.Status != RequestStatusPending && r.Status != RequestStatusQuoted {
		return false
	}
	return !r.IsExpired(now)
}
