package booking

import (
	"context"
	"time"

	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/booking/acl"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBookingRequestRepository is a mock implementation of BookingRequestRepository
type MockBookingRequestRepository struct {
	mock.Mock
}

func (m *MockBookingRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.BookingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.BookingRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRequestRepository) Save(ctx context.Context, request *booking.BookingRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockQuoteRepository is a mock implementation of QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]booking.Quote, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Quote), args.Error(1)
}

func (m *MockQuoteRepository) NextRevision(ctx context.Context, requestID uuid.UUID) (int, error) {
	args := m.Called(ctx, requestID)
	return args.Int(0), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, quote *booking.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) AcceptQuoteAndCreateBooking(ctx context.Context, quote *booking.Quote, request *booking.BookingRequest, b *booking.Booking) error {
	args := m.Called(ctx, quote, request, b)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelBooking(ctx context.Context, b *booking.Booking, cancellation *booking.BookingCancellation) error {
	args := m.Called(ctx, b, cancellation)
	return args.Error(0)
}

func (m *MockBookingRepository) CompletionStats(ctx context.Context, vendorID uuid.UUID) (int64, int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockBookingPaymentRepository is a mock implementation of BookingPaymentRepository
type MockBookingPaymentRepository struct {
	mock.Mock
}

func (m *MockBookingPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.BookingPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingPayment), args.Error(1)
}

func (m *MockBookingPaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]booking.BookingPayment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.BookingPayment), args.Error(1)
}

func (m *MockBookingPaymentRepository) FindByGatewayTransactionID(ctx context.Context, transactionID string) (*booking.BookingPayment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingPayment), args.Error(1)
}

func (m *MockBookingPaymentRepository) Save(ctx context.Context, payment *booking.BookingPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockBookingPaymentRepository) SavePaymentAndBooking(ctx context.Context, payment *booking.BookingPayment, b *booking.Booking) error {
	args := m.Called(ctx, payment, b)
	return args.Error(0)
}

// MockBookingCancellationRepository is a mock implementation of BookingCancellationRepository
type MockBookingCancellationRepository struct {
	mock.Mock
}

func (m *MockBookingCancellationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.BookingCancellation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingCancellation), args.Error(1)
}

// MockNumberSequenceRepository is a mock implementation of NumberSequenceRepository
type MockNumberSequenceRepository struct {
	mock.Mock
}

func (m *MockNumberSequenceRepository) Next(ctx context.Context, scope string, year int) (int64, error) {
	args := m.Called(ctx, scope, year)
	return args.Get(0).(int64), args.Error(1)
}

// MockVendorDirectory is a mock implementation of acl.VendorDirectory
type MockVendorDirectory struct {
	mock.Mock
}

func (m *MockVendorDirectory) GetVendor(ctx context.Context, id acl.VendorID) (*acl.VendorRef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*acl.VendorRef), args.Error(1)
}

func (m *MockVendorDirectory) UpdateCompletionStats(ctx context.Context, id acl.VendorID, completedBookings, totalBookings int64, completionRate decimal.Decimal) error {
	args := m.Called(ctx, id, completedBookings, totalBookings, completionRate)
	return args.Error(0)
}

// MockEventDirectory is a mock implementation of acl.EventDirectory
type MockEventDirectory struct {
	mock.Mock
}

func (m *MockEventDirectory) GetEvent(ctx context.Context, id acl.EventID) (*acl.EventRef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*acl.EventRef), args.Error(1)
}

// MockIdempotencyStore is a mock implementation of shared.IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, eventID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
