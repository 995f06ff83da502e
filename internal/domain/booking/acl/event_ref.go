package acl

import (
	"time"

	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventID is a value object representing an event identifier within the
// booking context
type EventID struct {
	value uuid.UUID
}

// NewEventID creates a new EventID from a UUID.
// Returns an error if the UUID is nil/empty.
func NewEventID(id uuid.UUID) (EventID, error) {
	if id == uuid.Nil {
		return EventID{}, shared.NewDomainError("VALIDATION_ERROR", "Event ID cannot be empty")
	}
	return EventID{value: id}, nil
}

// MustNewEventID creates a new EventID, panicking if the ID is invalid
func MustNewEventID(id uuid.UUID) EventID {
	eid, err := NewEventID(id)
	if err != nil {
		panic(err)
	}
	return eid
}

// ParseEventID parses a string into an EventID
func ParseEventID(s string) (EventID, error) {
	if s == "" {
		return EventID{}, shared.NewDomainError("VALIDATION_ERROR", "Event ID cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return EventID{}, shared.NewDomainError("VALIDATION_ERROR", "Event ID is not a valid UUID")
	}
	return NewEventID(id)
}

// UUID returns the underlying UUID value
func (e EventID) UUID() uuid.UUID {
	return e.value
}

// String returns the string representation of the EventID
func (e EventID) String() string {
	return e.value.String()
}

// EventRef is a read-only projection of an event from the event-planning
// context: enough to authorize the organizer and anchor dates.
type EventRef struct {
	ID          EventID
	Title       string
	OrganizerID uuid.UUID
	Date        time.Time
}

// IsOrganizedBy reports whether the given user is the event's organizer
func (r *EventRef) IsOrganizedBy(userID uuid.UUID) bool {
	return r.OrganizerID != uuid.Nil && r.OrganizerID == userID
}
