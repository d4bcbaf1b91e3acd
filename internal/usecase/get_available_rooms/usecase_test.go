package get_available_rooms

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
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeRooms struct {
	rooms []*domain.Room
	err   error
}

func (f *fakeRooms) ListBookable(_ context.Context, _ uuid.UUID) ([]*domain.Room, error) {
	return f.rooms, f.err
}

type fakeReservations struct {
	reservations []*domain.Reservation
	err          error
	lastFilter   domain.ReservationFilter
}

func (f *fakeReservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.reservations, f.err
}

func newRoom(hotelID uuid.UUID, number string, price int64) *domain.Room {
	return &domain.Room{
		ID:        uuid.New(),
		HotelID:   hotelID,
		Number:    number,
		BasePrice: decimal.NewFromInt(price),
		Status:    domain.RoomAvailable,
		IsActive:  true,
	}
}

func stay(roomID uuid.UUID, from, to string, status domain.ReservationStatus) *domain.Reservation {
	in, _ := time.Parse(domain.DateFormat, from)
	out, _ := time.Parse(domain.DateFormat, to)
	return &domain.Reservation{
		ID:           uuid.New(),
		BusinessType: domain.BusinessHotel,
		RoomID:       ptr.Ptr(roomID),
		CheckIn:      &in,
		CheckOut:     &out,
		Status:       status,
	}
}

func TestUseCase_Execute(t *testing.T) {
	hotelID := uuid.New()
	r101 := newRoom(hotelID, "101", 100)
	r102 := newRoom(hotelID, "102", 120)
	r103 := newRoom(hotelID, "103", 150)

	reservations := &fakeReservations{reservations: []*domain.Reservation{
		stay(r101.ID, "2024-06-01", "2024-06-05", domain.StatusConfirmed),
		// выезд в день заезда не пересекается
		stay(r102.ID, "2024-05-28", "2024-06-03", domain.StatusConfirmed),
		stay(r103.ID, "2024-06-03", "2024-06-04", domain.StatusCancelled),
	}}
	uc := NewUseCase(&fakeRooms{rooms: []*domain.Room{r101, r102, r103}}, reservations, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID:  hotelID,
		CheckIn:  "2024-06-03",
		CheckOut: "2024-06-05",
		Adults:   2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "102", resp.Rooms[0].Room.Number)
	assert.True(t, decimal.NewFromInt(240).Equal(resp.Rooms[0].StayPrice))
	assert.Equal(t, "103", resp.Rooms[1].Room.Number)
	assert.Equal(t, 2, resp.Nights)

	assert.Equal(t, hotelID, reservations.lastFilter.BusinessID)
	assert.Equal(t, domain.BusinessHotel, *reservations.lastFilter.BusinessType)
	assert.Equal(t, []domain.ReservationStatus{domain.StatusCancelled}, reservations.lastFilter.ExcludeStatuses)
}

func TestUseCase_Execute_InvalidStay(t *testing.T) {
	hotelID := uuid.New()
	rooms := &fakeRooms{rooms: []*domain.Room{newRoom(hotelID, "101", 100)}}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "unparsable check-in", checkIn: "tomorrow", checkOut: "2024-06-05"},
		{name: "unparsable check-out", checkIn: "2024-06-03", checkOut: ""},
		{name: "same day", checkIn: "2024-06-03", checkOut: "2024-06-03"},
		{name: "inverted", checkIn: "2024-06-05", checkOut: "2024-06-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(rooms, &fakeReservations{}, logger.Nop())
			resp, err := uc.Execute(context.Background(), &Request{HotelID: hotelID, CheckIn: tt.checkIn, CheckOut: tt.checkOut})
			require.NoError(t, err)
			assert.Empty(t, resp.Rooms)
			assert.Nil(t, resp.CheckIn)
		})
	}
}

func TestUseCase_Execute_RFC3339(t *testing.T) {
	hotelID := uuid.New()
	uc := NewUseCase(&fakeRooms{rooms: []*domain.Room{newRoom(hotelID, "101", 80)}}, &fakeReservations{}, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID:  hotelID,
		CheckIn:  "2024-06-03T14:00:00Z",
		CheckOut: "2024-06-04T11:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.True(t, decimal.NewFromInt(80).Equal(resp.Rooms[0].StayPrice))
}

func TestUseCase_Execute_Errors(t *testing.T) {
	hotelID := uuid.New()

	t.Run("missing hotel", func(t *testing.T) {
		uc := NewUseCase(&fakeRooms{}, &fakeReservations{}, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{CheckIn: "2024-06-03", CheckOut: "2024-06-04"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rooms repository", func(t *testing.T) {
		uc := NewUseCase(&fakeRooms{err: errors.New("db down")}, &fakeReservations{}, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{HotelID: hotelID, CheckIn: "2024-06-03", CheckOut: "2024-06-04"})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("reservations repository", func(t *testing.T) {
		uc := NewUseCase(&fakeRooms{}, &fakeReservations{err: errors.New("db down")}, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{HotelID: hotelID, CheckIn: "2024-06-03", CheckOut: "2024-06-04"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUseCase_CountExecute(t *testing.T) {
	hotelID := uuid.New()
	busy := newRoom(hotelID, "201", 100)
	inactive := newRoom(hotelID, "202", 100)
	inactive.IsActive = false

	rooms := &fakeRooms{rooms: []*domain.Room{busy, inactive, newRoom(hotelID, "203", 100), newRoom(hotelID, "204", 100)}}
	reservations := &fakeReservations{reservations: []*domain.Reservation{
		stay(busy.ID, "2024-06-02", "2024-06-10", domain.StatusPending),
	}}
	uc := NewUseCase(rooms, reservations, logger.Nop())

	count, err := uc.CountExecute(context.Background(), &Request{HotelID: hotelID, CheckIn: "2024-06-03", CheckOut: "2024-06-04"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUseCase_Execute_SameSnapshotSameResult(t *testing.T) {
	hotelID := uuid.New()
	r201 := newRoom(hotelID, "201", 90)
	r202 := newRoom(hotelID, "202", 110)

	reservations := &fakeReservations{reservations: []*domain.Reservation{
		stay(r201.ID, "2024-06-02", "2024-06-04", domain.StatusConfirmed),
	}}
	uc := NewUseCase(&fakeRooms{rooms: []*domain.Room{r201, r202}}, reservations, logger.Nop())
	req := &Request{HotelID: hotelID, CheckIn: "2024-06-04", CheckOut: "2024-06-07"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first.Rooms, 2)
}
