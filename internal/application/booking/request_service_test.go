package booking

import (
	"context"
	"testing"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequestService(requestRepo *MockBookingRequestRepository, vendorDir *MockVendorDirectory, eventDir *MockEventDirectory) *RequestService {
	return NewRequestService(requestRepo, vendorDir, eventDir, booking.DefaultRequestExpiryDays)
}

func TestRequestServiceCreate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("submits immediately by default", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		eventDir := new(MockEventDirectory)
		service := newRequestService(requestRepo, vendorDir, eventDir)

		eventDir.On("GetEvent", ctx, acl.MustNewEventID(f.eventID)).Return(f.eventRef(), nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)
		requestRepo.On("Save", ctx, mock.AnythingOfType("*booking.BookingRequest")).Return(nil)

		response, err := service.Create(ctx, f.organizer(), CreateRequestRequest{
			EventID:         f.eventID,
			VendorID:        f.vendorID,
			Title:           "Wedding catering",
			ServiceCategory: "catering",
			GuestCount:      120,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.RequestStatusPending, response.Status)
		assert.Equal(t, f.organizerID, response.OrganizerID)
		assert.Equal(t, 120, response.GuestCount)
		requestRepo.AssertExpectations(t)
	})

	t.Run("draft flag keeps the request in DRAFT", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		eventDir := new(MockEventDirectory)
		service := newRequestService(requestRepo, vendorDir, eventDir)

		eventDir.On("GetEvent", ctx, acl.MustNewEventID(f.eventID)).Return(f.eventRef(), nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)
		requestRepo.On("Save", ctx, mock.AnythingOfType("*booking.BookingRequest")).Return(nil)

		response, err := service.Create(ctx, f.organizer(), CreateRequestRequest{
			EventID:         f.eventID,
			VendorID:        f.vendorID,
			Title:           "Wedding catering",
			ServiceCategory: "catering",
			Draft:           true,
		})
		require.NoError(t, err)
		assert.Equal(t, booking.RequestStatusDraft, response.Status)
	})

	t.Run("only the event organizer may create", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		eventDir := new(MockEventDirectory)
		service := newRequestService(requestRepo, vendorDir, eventDir)

		eventDir.On("GetEvent", ctx, acl.MustNewEventID(f.eventID)).Return(f.eventRef(), nil)

		_, err := service.Create(ctx, Caller{UserID: uuid.New(), Role: RoleOrganizer}, CreateRequestRequest{
			EventID:         f.eventID,
			VendorID:        f.vendorID,
			Title:           "Wedding catering",
			ServiceCategory: "catering",
		})
		require.Error(t, err)
		requestRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("inactive vendor is rejected", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		eventDir := new(MockEventDirectory)
		service := newRequestService(requestRepo, vendorDir, eventDir)

		suspended := f.vendorRef()
		suspended.Status = acl.VendorStatusSuspended

		eventDir.On("GetEvent", ctx, acl.MustNewEventID(f.eventID)).Return(f.eventRef(), nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(suspended, nil)

		_, err := service.Create(ctx, f.organizer(), CreateRequestRequest{
			EventID:         f.eventID,
			VendorID:        f.vendorID,
			Title:           "Wedding catering",
			ServiceCategory: "catering",
		})
		require.Error(t, err)
	})

	t.Run("invalid budget range is rejected", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		eventDir := new(MockEventDirectory)
		service := newRequestService(requestRepo, vendorDir, eventDir)

		eventDir.On("GetEvent", ctx, acl.MustNewEventID(f.eventID)).Return(f.eventRef(), nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)

		budgetMin := d("5000")
		budgetMax := d("1000")
		_, err := service.Create(ctx, f.organizer(), CreateRequestRequest{
			EventID:         f.eventID,
			VendorID:        f.vendorID,
			Title:           "Wedding catering",
			ServiceCategory: "catering",
			BudgetMin:       &budgetMin,
			BudgetMax:       &budgetMax,
		})
		require.Error(t, err)
	})
}

func TestRequestServiceGetByID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("organizer and vendor owner can read", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		service := newRequestService(requestRepo, vendorDir, new(MockEventDirectory))

		request := f.pendingRequest(t)
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)

		_, err := service.GetByID(ctx, f.organizer(), request.ID)
		require.NoError(t, err)
		_, err = service.GetByID(ctx, f.vendorCaller(), request.ID)
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		service := newRequestService(requestRepo, vendorDir, new(MockEventDirectory))

		request := f.pendingRequest(t)
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)

		_, err := service.GetByID(ctx, Caller{UserID: uuid.New(), Role: RoleVendor}, request.ID)
		require.Error(t, err)
	})
}

func TestRequestServiceList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("organizer listing is scoped to own requests", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		service := newRequestService(requestRepo, new(MockVendorDirectory), new(MockEventDirectory))

		request := f.pendingRequest(t)
		scoped := mock.MatchedBy(func(filter shared.Filter) bool {
			return filter.Filters["organizer_id"] == f.organizerID
		})
		requestRepo.On("FindAll", ctx, scoped).Return([]booking.BookingRequest{*request}, nil)
		requestRepo.On("Count", ctx, scoped).Return(int64(1), nil)

		responses, total, err := service.List(ctx, f.organizer(), RequestListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, responses, 1)
		assert.Equal(t, request.ID, responses[0].ID)
		requestRepo.AssertExpectations(t)
	})

	t.Run("admin listing is not scoped", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		service := newRequestService(requestRepo, new(MockVendorDirectory), new(MockEventDirectory))

		unscoped := mock.MatchedBy(func(filter shared.Filter) bool {
			_, ok := filter.Filters["organizer_id"]
			return !ok
		})
		requestRepo.On("FindAll", ctx, unscoped).Return([]booking.BookingRequest{}, nil)
		requestRepo.On("Count", ctx, unscoped).Return(int64(0), nil)

		_, _, err := service.List(ctx, f.admin(), RequestListFilter{})
		require.NoError(t, err)
		requestRepo.AssertExpectations(t)
	})
}

func TestRequestServiceUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("organizer updates a pending request", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		service := newRequestService(requestRepo, new(MockVendorDirectory), new(MockEventDirectory))

		request := f.pendingRequest(t)
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		requestRepo.On("Save", ctx, request).Return(nil)

		response, err := service.Update(ctx, f.organizer(), request.ID, UpdateRequestRequest{
			Title:      "Wedding catering deluxe",
			GuestCount: 200,
		})
		require.NoError(t, err)
		assert.Equal(t, "Wedding catering deluxe", response.Title)
		assert.Equal(t, 200, response.GuestCount)
	})

	t.Run("vendor cannot update", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		service := newRequestService(requestRepo, new(MockVendorDirectory), new(MockEventDirectory))

		request := f.pendingRequest(t)
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)

		_, err := service.Update(ctx, f.vendorCaller(), request.ID, UpdateRequestRequest{Title: "x"})
		require.Error(t, err)
	})

	t.Run("quoted request rejects updates", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		service := newRequestService(requestRepo, new(MockVendorDirectory), new(MockEventDirectory))

		request := f.pendingRequest(t)
		require.NoError(t, request.MarkQuoted())
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)

		_, err := service.Update(ctx, f.organizer(), request.ID, UpdateRequestRequest{Title: "too late"})
		require.Error(t, err)
	})
}

func TestRequestServiceMarkViewed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("first view persists, repeat views do not", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		service := newRequestService(requestRepo, vendorDir, new(MockEventDirectory))

		request := f.pendingRequest(t)
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)
		requestRepo.On("Save", ctx, request).Return(nil).Once()

		response, err := service.MarkViewed(ctx, f.vendorCaller(), request.ID)
		require.NoError(t, err)
		require.NotNil(t, response.VendorViewedAt)
		firstViewed := *response.VendorViewedAt

		response, err = service.MarkViewed(ctx, f.vendorCaller(), request.ID)
		require.NoError(t, err)
		assert.Equal(t, firstViewed, *response.VendorViewedAt)
		requestRepo.AssertExpectations(t)
	})

	t.Run("organizer cannot mark viewed", func(t *testing.T) {
		requestRepo := new(MockBookingRequestRepository)
		vendorDir := new(MockVendorDirectory)
		service := newRequestService(requestRepo, vendorDir, new(MockEventDirectory))

		request := f.pendingRequest(t)
		requestRepo.On("FindByID", ctx, request.ID).Return(request, nil)
		vendorDir.On("GetVendor", ctx, acl.MustNewVendorID(f.vendorID)).Return(f.vendorRef(), nil)

		_, err := service.MarkViewed(ctx, f.organizer(), request.ID)
		require.Error(t, err)
	})
}
