package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMock(t)

	restaurantID := uuid.New()
	tableID := uuid.New()
	resID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows(columns).
		AddRow(resID.String(), restaurantID.String(), "restaurant", nil, tableID.String(),
			nil, nil, date, "9:00", nil, int64(4), "confirmed", "120.50", now, now)

	mock.ExpectQuery(`SELECT .+ FROM reservations WHERE business_id = \$1 AND business_type = \$2 AND date >= \$3 AND date < \$4 AND status IN \(\$5,\$6\)`).
		WillReturnRows(rows)

	filter := domain.ReservationFilter{
		BusinessID:   restaurantID,
		BusinessType: ptr.Ptr(domain.BusinessRestaurant),
		DateFrom:     &date,
		DateTo:       ptr.Ptr(date.AddDate(0, 0, 1)),
		Statuses:     domain.CapacityStatuses,
	}

	got, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, got, 1)

	res := got[0]
	assert.Equal(t, resID, res.ID)
	assert.Equal(t, domain.BusinessRestaurant, res.BusinessType)
	assert.Nil(t, res.RoomID)
	require.NotNil(t, res.TableID)
	assert.Equal(t, tableID, *res.TableID)
	assert.Nil(t, res.CheckIn)
	require.NotNil(t, res.Date)
	assert.Equal(t, date, *res.Date)
	require.NotNil(t, res.Time)
	assert.Equal(t, "9:00", *res.Time)
	assert.Equal(t, 4, res.Party())
	assert.Equal(t, "120.5", res.Amount().String())
	assert.Equal(t, domain.StatusConfirmed, res.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM reservations WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(`UPDATE reservations SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(`UPDATE reservations`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(`UPDATE reservations`).
			WillReturnError(assert.AnError)

		err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusCancelled)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}
