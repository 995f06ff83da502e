package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) *BookingRequest {
	t.Helper()
	request, err := NewBookingRequest(uuid.New(), uuid.New(), uuid.New(), "Wedding catering", "catering", time.Now().AddDate(0, 3, 0), 0)
	require.NoError(t, err)
	return request
}

func TestNewBookingRequest(t *testing.T) {
	t.Run("creates draft request with expiry", func(t *testing.T) {
		request := newTestRequest(t)
		assert.Equal(t, RequestStatusDraft, request.Status)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, DefaultRequestExpiryDays), request.ExpiresAt, time.Minute)
		assert.Nil(t, request.VendorViewedAt)
		assert.Nil(t, request.RespondedAt)

		events := request.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeBookingRequestCreated, events[0].EventType())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewBookingRequest(uuid.New(), uuid.New(), uuid.New(), "", "catering", time.Now().AddDate(0, 1, 0), 0)
		assert.Error(t, err)
	})

	t.Run("rejects nil vendor", func(t *testing.T) {
		_, err := NewBookingRequest(uuid.New(), uuid.New(), uuid.Nil, "Wedding catering", "catering", time.Now().AddDate(0, 1, 0), 0)
		assert.Error(t, err)
	})

	t.Run("rejects past event date", func(t *testing.T) {
		_, err := NewBookingRequest(uuid.New(), uuid.New(), uuid.New(), "Wedding catering", "catering", time.Now().AddDate(0, 0, -1), 0)
		assert.Error(t, err)
	})
}

func TestBookingRequestSubmit(t *testing.T) {
	t.Run("draft submits to pending", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		assert.Equal(t, RequestStatusPending, request.Status)
	})

	t.Run("cannot submit twice", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		assert.Error(t, request.Submit())
	})
}

func TestBookingRequestUpdateDetails(t *testing.T) {
	details := RequestDetails{
		Title:      "Updated title",
		VenueName:  "Grand Hall",
		GuestCount: 120,
	}

	t.Run("updates while pending", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		require.NoError(t, request.UpdateDetails(details))
		assert.Equal(t, "Updated title", request.Title)
		assert.Equal(t, "Grand Hall", request.VenueName)
		assert.Equal(t, 120, request.GuestCount)
	})

	t.Run("rejected once quoted", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		require.NoError(t, request.MarkQuoted())
		assert.Error(t, request.UpdateDetails(details))
	})

	t.Run("rejects inverted budget range", func(t *testing.T) {
		request := newTestRequest(t)
		budgetMin := d("5000")
		budgetMax := d("1000")
		err := request.UpdateDetails(RequestDetails{Title: "x", BudgetMin: &budgetMin, BudgetMax: &budgetMax})
		assert.Error(t, err)
	})
}

func TestBookingRequestMarkViewedByVendor(t *testing.T) {
	request := newTestRequest(t)
	require.NoError(t, request.Submit())
	request.ClearDomainEvents()

	request.MarkViewedByVendor()
	require.NotNil(t, request.VendorViewedAt)
	firstViewed := *request.VendorViewedAt
	require.Len(t, request.GetDomainEvents(), 1)

	// Second call is a no-op
	request.MarkViewedByVendor()
	assert.Equal(t, firstViewed, *request.VendorViewedAt)
	assert.Len(t, request.GetDomainEvents(), 1)
}

func TestBookingRequestMarkQuoted(t *testing.T) {
	t.Run("pending becomes quoted with responded timestamp", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		require.NoError(t, request.MarkQuoted())
		assert.Equal(t, RequestStatusQuoted, request.Status)
		require.NotNil(t, request.RespondedAt)
	})

	t.Run("re-quote keeps original responded timestamp", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		require.NoError(t, request.MarkQuoted())
		first := *request.RespondedAt
		require.NoError(t, request.MarkQuoted())
		assert.Equal(t, first, *request.RespondedAt)
	})

	t.Run("draft cannot be quoted", func(t *testing.T) {
		request := newTestRequest(t)
		assert.Error(t, request.MarkQuoted())
	})
}

func TestBookingRequestAccept(t *testing.T) {
	t.Run("quoted request accepts", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		require.NoError(t, request.MarkQuoted())
		require.NoError(t, request.Accept())
		assert.Equal(t, RequestStatusAccepted, request.Status)
	})

	t.Run("pending request cannot accept", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		assert.Error(t, request.Accept())
	})

	t.Run("accepted is terminal", func(t *testing.T) {
		request := newTestRequest(t)
		require.NoError(t, request.Submit())
		require.NoError(t, request.MarkQuoted())
		require.NoError(t, request.Accept())
		assert.Error(t, request.Accept())
	})
}

func TestBookingRequestExpiry(t *testing.T) {
	request := newTestRequest(t)
	require.NoError(t, request.Submit())

	assert.True(t, request.CanReceiveQuote(time.Now()))
	assert.False(t, request.CanReceiveQuote(request.ExpiresAt.Add(time.Hour)))
	assert.True(t, request.IsExpired(request.ExpiresAt.Add(time.Hour)))

	require.NoError(t, request.MarkQuoted())
	require.NoError(t, request.Accept())
	assert.False(t, request.IsExpired(request.ExpiresAt.Add(time.Hour)), "accepted requests do not expire")
}
