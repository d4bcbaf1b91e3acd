package get_dashboard_metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeSettings struct {
	settings *domain.RestaurantSettings
	err      error
}

func (f *fakeSettings) GetSettings(_ context.Context, _ uuid.UUID) (*domain.RestaurantSettings, error) {
	return f.settings, f.err
}

type fakeReservations struct {
	reservations []*domain.Reservation
	err          error
	calls        int
	lastFilter   domain.ReservationFilter
}

func (f *fakeReservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.calls++
	f.lastFilter = filter
	return f.reservations, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(settings *fakeSettings, reservations *fakeReservations, now time.Time) *UseCase {
	uc := NewUseCase(settings, reservations, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func restaurantSettings() *domain.RestaurantSettings {
	return &domain.RestaurantSettings{
		Horaires: []domain.Horaire{
			{Ouverture: "12:00", Fermeture: "14:00"},
			{Ouverture: "19:00", Fermeture: "22:00"},
		},
		FrequenceCreneauxMinutes: ptr.Ptr(30),
		CapaciteTotale:           ptr.Ptr(10),
		Tables:                   domain.TableSizes{Size4: 2},
	}
}

func dinner(party int, amount string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:          uuid.New(),
		Date:        ptr.Ptr(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)),
		PartySize:   ptr.Ptr(party),
		TotalAmount: ptr.Ptr(decimal.RequireFromString(amount)),
		Status:      status,
	}
}

func TestUseCase_Execute(t *testing.T) {
	id := uuid.New()
	reservations := &fakeReservations{reservations: []*domain.Reservation{
		dinner(4, "50.50", domain.StatusConfirmed),
		dinner(4, "49.50", domain.StatusConfirmed),
		dinner(2, "30", domain.StatusPending),
		dinner(6, "80", domain.StatusCancelled),
	}}
	uc := newUseCase(&fakeSettings{settings: restaurantSettings()}, reservations, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: id, From: "2024-06-03", To: "2024-06-03"})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Metrics.ReservationsTotales)
	assert.True(t, decimal.NewFromInt(100).Equal(resp.Metrics.ChiffreAffaires), resp.Metrics.ChiffreAffaires.String())
	// 1 день * 2 интервала * (60/30) = 4 слота, вместимость min(10, 8) = 8
	assert.Equal(t, 0.25, resp.Metrics.TauxRemplissage)

	f := reservations.lastFilter
	assert.Equal(t, domain.BusinessRestaurant, *f.BusinessType)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *f.DateFrom)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), *f.DateTo)
	assert.Empty(t, f.Statuses)
}

func TestUseCase_Execute_DefaultsToCurrentMonth(t *testing.T) {
	reservations := &fakeReservations{}
	now := time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC)
	uc := newUseCase(&fakeSettings{settings: restaurantSettings()}, reservations, now)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *resp.From)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *resp.To)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *reservations.lastFilter.DateTo)
	assert.Zero(t, resp.Metrics.TauxRemplissage)
}

func TestUseCase_Execute_NeutralResults(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		settings *domain.RestaurantSettings
		req      *Request
		queried  bool
	}{
		{
			name:     "inverted range",
			settings: restaurantSettings(),
			req:      &Request{RestaurantID: id, From: "2024-06-10", To: "2024-06-01"},
		},
		{
			name:     "unparsable from",
			settings: restaurantSettings(),
			req:      &Request{RestaurantID: id, From: "June", To: "2024-06-01"},
		},
		{
			name:     "unlimited capacity",
			settings: &domain.RestaurantSettings{Horaires: []domain.Horaire{{Ouverture: "12:00", Fermeture: "14:00"}}, FrequenceCreneauxMinutes: ptr.Ptr(30)},
			req:      &Request{RestaurantID: id, From: "2024-06-03", To: "2024-06-03"},
			queried:  true,
		},
		{
			name:     "no horaires",
			settings: &domain.RestaurantSettings{CapaciteTotale: ptr.Ptr(10)},
			req:      &Request{RestaurantID: id, From: "2024-06-03", To: "2024-06-03"},
			queried:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservations := &fakeReservations{reservations: []*domain.Reservation{dinner(4, "10", domain.StatusConfirmed)}}
			uc := newUseCase(&fakeSettings{settings: tt.settings}, reservations, time.Now())

			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Zero(t, resp.Metrics.TauxRemplissage)
			if tt.queried {
				assert.Equal(t, 1, resp.Metrics.ReservationsTotales)
			} else {
				assert.Zero(t, resp.Metrics.ReservationsTotales)
				assert.Zero(t, reservations.calls)
			}
		})
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("missing restaurant id", func(t *testing.T) {
		uc := newUseCase(&fakeSettings{}, &fakeReservations{}, time.Now())
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("restaurant not found", func(t *testing.T) {
		uc := newUseCase(&fakeSettings{err: restaurantRepo.ErrRestaurantNotFound}, &fakeReservations{}, time.Now())
		_, err := uc.Execute(context.Background(), &Request{RestaurantID: uuid.New()})
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})

	t.Run("reservations failure", func(t *testing.T) {
		uc := newUseCase(&fakeSettings{settings: restaurantSettings()}, &fakeReservations{err: errors.New("broken pipe")}, time.Now())
		_, err := uc.Execute(context.Background(), &Request{RestaurantID: uuid.New()})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUseCase_Execute_SameSnapshotSameResult(t *testing.T) {
	reservations := &fakeReservations{reservations: []*domain.Reservation{
		dinner(4, "50.50", domain.StatusConfirmed),
		dinner(2, "30", domain.StatusPending),
		dinner(3, "42.10", domain.StatusConfirmed),
	}}
	uc := newUseCase(&fakeSettings{settings: restaurantSettings()}, reservations, time.Now())
	req := &Request{RestaurantID: uuid.New(), From: "2024-06-01", To: "2024-06-30"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
