package acl

import "context"

// EventDirectory is the booking context's view of the event-planning
// context's events
type EventDirectory interface {
	// GetEvent returns the event reference or a NOT_FOUND domain error
	GetEvent(ctx context.Context, id EventID) (*EventRef, error)
}
