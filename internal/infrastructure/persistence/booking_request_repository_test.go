package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/celebratech/backend/internal/domain/booking"
	"github.com/celebratech/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBookingRequestRepository creates a GormBookingRequestRepository with a mocked SQL connection
func newMockBookingRequestRepository(t *testing.T) (*GormBookingRequestRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormBookingRequestRepository(gormDB), mock, mockDB
}

func TestNewGormBookingRequestRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockBookingRequestRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormBookingRequestRepository_FindByID(t *testing.T) {
	t.Run("finds existing request", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRequestRepository(t)
		defer mockDB.Close()

		requestID := uuid.New()
		organizerID := uuid.New()
		vendorID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "organizer_id", "vendor_id", "title", "service_category", "status", "event_date"}).
			AddRow(requestID, organizerID, vendorID, "Wedding catering", "CATERING", "PENDING", time.Now().AddDate(0, 3, 0))

		mock.ExpectQuery(`SELECT \* FROM "booking_requests" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(requestID, 1).
			WillReturnRows(rows)

		request, err := repo.FindByID(context.Background(), requestID)

		assert.NoError(t, err)
		assert.NotNil(t, request)
		assert.Equal(t, requestID, request.ID)
		assert.Equal(t, booking.RequestStatusPending, request.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing request", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRequestRepository(t)
		defer mockDB.Close()

		requestID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "booking_requests" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(requestID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		request, err := repo.FindByID(context.Background(), requestID)

		assert.Error(t, err)
		assert.Nil(t, request)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRequestRepository_FindAll(t *testing.T) {
	t.Run("applies organizer scope and pagination", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRequestRepository(t)
		defer mockDB.Close()

		organizerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "organizer_id", "title", "status"}).
			AddRow(uuid.New(), organizerID, "Wedding catering", "PENDING").
			AddRow(uuid.New(), organizerID, "Birthday venue", "QUOTED")

		mock.ExpectQuery(`SELECT \* FROM "booking_requests" WHERE organizer_id = \$1 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(organizerID, 20).
			WillReturnRows(rows)

		requests, err := repo.FindAll(context.Background(), shared.Filter{
			Page:     1,
			PageSize: 20,
			Filters:  map[string]interface{}{"organizer_id": organizerID},
		})

		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to whitelist default for unknown sort field", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRequestRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "title"})

		mock.ExpectQuery(`SELECT \* FROM "booking_requests" ORDER BY created_at DESC`).
			WillReturnRows(rows)

		_, err := repo.FindAll(context.Background(), shared.Filter{
			OrderBy: "title; DROP TABLE booking_requests",
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBookingRequestRepository_Count(t *testing.T) {
	t.Run("counts with status filter", func(t *testing.T) {
		repo, mock, mockDB := newMockBookingRequestRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "booking_requests" WHERE status = \$1`).
			WithArgs("PENDING").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.Count(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"status": "PENDING"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
