package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"inside", day(2024, 1, 1), day(2024, 1, 10), day(2024, 1, 3), day(2024, 1, 4), true},
		{"partial", day(2024, 1, 1), day(2024, 1, 5), day(2024, 1, 4), day(2024, 1, 8), true},
		{"touching end", day(2024, 1, 1), day(2024, 1, 5), day(2024, 1, 5), day(2024, 1, 8), false},
		{"touching start", day(2024, 1, 5), day(2024, 1, 8), day(2024, 1, 1), day(2024, 1, 5), false},
		{"disjoint", day(2024, 1, 1), day(2024, 1, 2), day(2024, 2, 1), day(2024, 2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestReservation_Interval(t *testing.T) {
	t.Run("check-in and check-out", func(t *testing.T) {
		r := &Reservation{CheckIn: ptr.Ptr(day(2024, 5, 1)), CheckOut: ptr.Ptr(day(2024, 5, 3))}
		start, end, ok := r.Interval()
		assert.True(t, ok)
		assert.Equal(t, day(2024, 5, 1), start)
		assert.Equal(t, day(2024, 5, 3), end)
	})

	t.Run("date only spans one day", func(t *testing.T) {
		r := &Reservation{Date: ptr.Ptr(day(2024, 5, 1))}
		start, end, ok := r.Interval()
		assert.True(t, ok)
		assert.Equal(t, day(2024, 5, 1), start)
		assert.Equal(t, day(2024, 5, 2), end)
	})

	t.Run("no start", func(t *testing.T) {
		r := &Reservation{CheckOut: ptr.Ptr(day(2024, 5, 3))}
		_, _, ok := r.Interval()
		assert.False(t, ok)
	})

	t.Run("end before start", func(t *testing.T) {
		r := &Reservation{CheckIn: ptr.Ptr(day(2024, 5, 3)), CheckOut: ptr.Ptr(day(2024, 5, 1))}
		_, _, ok := r.Interval()
		assert.False(t, ok)
	})
}

func TestRoom_IsFreeFor(t *testing.T) {
	roomID := uuid.New()
	otherID := uuid.New()
	room := &Room{ID: roomID, IsActive: true, Status: RoomAvailable}

	stayIn, stayOut := day(2024, 7, 10), day(2024, 7, 12)

	tests := []struct {
		name string
		res  *Reservation
		want bool
	}{
		{
			name: "overlapping stay blocks",
			res:  &Reservation{RoomID: &roomID, CheckIn: ptr.Ptr(day(2024, 7, 11)), CheckOut: ptr.Ptr(day(2024, 7, 13)), Status: StatusConfirmed},
			want: false,
		},
		{
			name: "checkout on check-in day does not block",
			res:  &Reservation{RoomID: &roomID, CheckIn: ptr.Ptr(day(2024, 7, 8)), CheckOut: ptr.Ptr(day(2024, 7, 10)), Status: StatusConfirmed},
			want: true,
		},
		{
			name: "other room ignored",
			res:  &Reservation{RoomID: &otherID, CheckIn: ptr.Ptr(day(2024, 7, 10)), CheckOut: ptr.Ptr(day(2024, 7, 12)), Status: StatusConfirmed},
			want: true,
		},
		{
			name: "cancelled ignored",
			res:  &Reservation{RoomID: &roomID, CheckIn: ptr.Ptr(day(2024, 7, 10)), CheckOut: ptr.Ptr(day(2024, 7, 12)), Status: StatusCancelled},
			want: true,
		},
		{
			name: "date-only reservation blocks that night",
			res:  &Reservation{RoomID: &roomID, Date: ptr.Ptr(day(2024, 7, 11)), Status: StatusPending},
			want: false,
		},
		{
			name: "reservation without dates does not block",
			res:  &Reservation{RoomID: &roomID, Status: StatusPending},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, room.IsFreeFor(stayIn, stayOut, []*Reservation{tt.res}))
		})
	}
}

func TestParseBusinessType(t *testing.T) {
	bt, err := ParseBusinessType(" Hotel ")
	assert.NoError(t, err)
	assert.Equal(t, BusinessHotel, bt)
	assert.Equal(t, "room", bt.ResourceLabel())

	_, err = ParseBusinessType("spa")
	assert.ErrorIs(t, err, ErrUnknownBusinessType)
}

func TestReservation_NormalizedTime(t *testing.T) {
	r := &Reservation{Time: ptr.Ptr("9:00")}
	ts, ok := r.NormalizedTime()
	assert.True(t, ok)
	assert.Equal(t, "09:00", ts.String())

	_, ok = (&Reservation{Time: ptr.Ptr("soon")}).NormalizedTime()
	assert.False(t, ok)

	_, ok = (&Reservation{}).NormalizedTime()
	assert.False(t, ok)
}
