package get_stay_quote

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	roomRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/room"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeRooms struct {
	room *domain.Room
	err  error
}

func (f *fakeRooms) GetByID(_ context.Context, _ uuid.UUID) (*domain.Room, error) {
	return f.room, f.err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seasideRoom() *domain.Room {
	return &domain.Room{
		ID:        uuid.New(),
		BasePrice: dec("100"),
		Status:    domain.RoomAvailable,
		IsActive:  true,
		SpecialPrices: []domain.SpecialPrice{
			{StartMonth: 12, StartDay: 31, EndMonth: 1, EndDay: 1, Price: dec("250")},
		},
		MonthlyPrices: []domain.MonthlyPrice{
			{StartMonth: 7, EndMonth: 8, Price: dec("140")},
		},
		ViewOptions: []domain.ViewOption{
			{Name: "Sea", Price: ptr.Ptr(dec("15"))},
			{Name: "Garden"},
		},
		PaidOptions: []domain.PaidOption{
			{Name: "Breakfast", Price: dec("20")},
			{Name: "Parking", Price: dec("12.50")},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	room := seasideRoom()
	uc := NewUseCase(&fakeRooms{room: room}, dec("10"), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:      room.ID,
		CheckIn:     "2024-12-30",
		CheckOut:    "2025-01-02",
		View:        "Sea",
		PaidOptions: []string{"Breakfast", "Spa", "Parking"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Nights, 3)
	assert.Nil(t, resp.Nights[0].Rule, "30 Dec uses base price")
	require.NotNil(t, resp.Nights[1].Rule)
	assert.Equal(t, domain.RuleSpecial, *resp.Nights[1].Rule)
	assert.True(t, dec("600").Equal(resp.Subtotal), resp.Subtotal.String())

	require.NotNil(t, resp.View)
	assert.Equal(t, "Sea", resp.View.Name)
	assert.True(t, dec("45").Equal(resp.ViewTotal))

	require.Len(t, resp.PaidOptions, 2)
	assert.True(t, dec("32.5").Equal(resp.OptionsTotal))

	assert.True(t, dec("30").Equal(resp.Tax))
	assert.True(t, dec("707.5").Equal(resp.Total), resp.Total.String())
}

func TestUseCase_Execute_ViewWithoutPrice(t *testing.T) {
	room := seasideRoom()
	uc := NewUseCase(&fakeRooms{room: room}, decimal.Zero, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID: room.ID, CheckIn: "2024-07-10", CheckOut: "2024-07-12", View: "Garden",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.View)
	assert.True(t, resp.ViewTotal.IsZero())
	assert.True(t, dec("280").Equal(resp.Total))
}

func TestUseCase_Execute_InvalidStay(t *testing.T) {
	room := seasideRoom()
	uc := NewUseCase(&fakeRooms{room: room}, dec("10"), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{RoomID: room.ID, CheckIn: "2024-07-12", CheckOut: "2024-07-10"})
	require.NoError(t, err)

	assert.Empty(t, resp.Nights)
	assert.True(t, resp.Total.IsZero())
	assert.Nil(t, resp.CheckIn)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("missing room id", func(t *testing.T) {
		uc := NewUseCase(&fakeRooms{}, decimal.Zero, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("room not found", func(t *testing.T) {
		uc := NewUseCase(&fakeRooms{err: roomRepo.ErrRoomNotFound}, decimal.Zero, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{RoomID: uuid.New()})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := NewUseCase(&fakeRooms{err: errors.New("timeout")}, decimal.Zero, logger.Nop())
		_, err := uc.Execute(context.Background(), &Request{RoomID: uuid.New()})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
