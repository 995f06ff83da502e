package booking

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeBookingRequest = "BookingRequest"

// Event type constants
const (
	EventTypeBookingRequestCreated = "BookingRequestCreated"
	EventTypeBookingRequestViewed  = "BookingRequestViewed"
)

// BookingRequestCreatedEvent is raised when an organizer creates a booking request
type BookingRequestCreatedEvent struct {
	shared.BaseDomainEvent
	RequestID       uuid.UUID `json:"request_id"`
	EventRef        uuid.UUID `json:"event_id"`
	OrganizerID     uuid.UUID `json:"organizer_id"`
	VendorID        uuid.UUID `json:"vendor_id"`
	Title           string    `json:"title"`
	ServiceCategory string    `json:"service_category"`
	EventDate       time.Time `json:"event_date"`
}

// NewBookingRequestCreatedEvent creates a new BookingRequestCreatedEvent
func NewBookingRequestCreatedEvent(request *BookingRequest) *BookingRequestCreatedEvent {
	return &BookingRequestCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingRequestCreated, AggregateTypeBookingRequest, request.ID),
		RequestID:       request.ID,
		EventRef:        request.EventID,
		OrganizerID:     request.OrganizerID,
		VendorID:        request.VendorID,
		Title:           request.Title,
		ServiceCategory: request.ServiceCategory,
		EventDate:       request.EventDate,
	}
}

// EventType returns the event type name
func (e *BookingRequestCreatedEvent) EventType() string {
	return EventTypeBookingRequestCreated
}

// BookingRequestViewedEvent is raised the first time the vendor opens a request
type BookingRequestViewedEvent struct {
	shared.BaseDomainEvent
	RequestID   uuid.UUID `json:"request_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	ViewedAt    time.Time `json:"viewed_at"`
}

// NewBookingRequestViewedEvent creates a new BookingRequestViewedEvent
func NewBookingRequestViewedEvent(request *BookingRequest) *BookingRequestViewedEvent {
	viewedAt := time.Now()
	if request.VendorViewedAt != nil {
		viewedAt = *request.VendorViewedAt
	}
	return &BookingRequestViewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingRequestViewed, AggregateTypeBookingRequest, request.ID),
		RequestID:       request.ID,
		VendorID:        request.VendorID,
		OrganizerID:     request.OrganizerID,
		ViewedAt:        viewedAt,
	}
}

// EventType returns the event type name
func (e *BookingRequestViewedEvent) EventType() string {
	return EventTypeBookingRequestViewed
}
