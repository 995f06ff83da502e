package booking

import "github.com/google/uuid"

// Role is the marketplace role carried by the caller's identity token
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleVendor    Role = "vendor"
	RoleAdmin     Role = "admin"
)

// Caller identifies the authenticated user invoking an operation. Every
// mutating operation authorizes against it: organizers act on their own
// requests and bookings, vendor owners on their vendor's, admins on any.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the caller holds the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
