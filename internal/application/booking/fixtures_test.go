package booking

import (
	"testing"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	organizerID uuid.UUID
	vendorOwner uuid.UUID
	vendorID    uuid.UUID
	eventID     uuid.UUID
}

func newFixture() fixture {
	return fixture{
		organizerID: uuid.New(),
		vendorOwner: uuid.New(),
		vendorID:    uuid.New(),
		eventID:     uuid.New(),
	}
}

func (f fixture) organizer() Caller {
	return Caller{UserID: f.organizerID, Role: RoleOrganizer}
}

func (f fixture) vendorCaller() Caller {
	return Caller{UserID: f.vendorOwner, Role: RoleVendor}
}

func (f fixture) admin() Caller {
	return Caller{UserID: uuid.New(), Role: RoleAdmin}
}

func (f fixture) vendorRef() *acl.VendorRef {
	return &acl.VendorRef{
		ID:             acl.MustNewVendorID(f.vendorID),
		Name:           "Lezzet Catering",
		OwnerUserID:    f.vendorOwner,
		Status:         acl.VendorStatusActive,
		CommissionRate: d("15"),
	}
}

func (f fixture) eventRef() *acl.EventRef {
	return &acl.EventRef{
		ID:          acl.MustNewEventID(f.eventID),
		Title:       "Summer Wedding",
		OrganizerID: f.organizerID,
		Date:        time.Now().AddDate(0, 3, 0),
	}
}

func (f fixture) pendingRequest(t *testing.T) *booking.BookingRequest {
	t.Helper()
	request, err := booking.NewBookingRequest(f.eventID, f.organizerID, f.vendorID, "Wedding catering", "catering", time.Now().AddDate(0, 3, 0), 0)
	require.NoError(t, err)
	require.NoError(t, request.Submit())
	request.ClearDomainEvents()
	return request
}

func (f fixture) sentQuote(t *testing.T, request *booking.BookingRequest) *booking.Quote {
	t.Helper()
	quote, err := booking.NewQuote("Q-2026-00001", request.ID, f.vendorID, f.organizerID, 1, d("10"), decimal.Zero, d("20"), 0)
	require.NoError(t, err)
	_, err = quote.AddItem("Catering service", "person", d("2"), d("100.00"), d("10"))
	require.NoError(t, err)
	require.NoError(t, quote.Send())
	require.NoError(t, request.MarkQuoted())
	quote.ClearDomainEvents()
	request.ClearDomainEvents()
	return quote
}

func (f fixture) confirmedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	request := f.pendingRequest(t)
	quote := f.sentQuote(t, request)
	require.NoError(t, quote.Accept(time.Now()))
	require.NoError(t, request.Accept())
	b, err := booking.NewBookingFromQuote("B-2026-00001", quote, request, d("15"))
	require.NoError(t, err)
	b.ClearDomainEvents()
	return b
}
