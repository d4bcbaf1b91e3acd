package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для поиска свободных номеров отеля на период
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает номера, свободные на весь период [checkIn, checkOut)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: hotel=%s, checkIn=%s, checkOut=%s, adults=%d, children=%d",
		req.HotelID, req.CheckIn, req.CheckOut, req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{HotelID: req.HotelID, Rooms: []AvailableRoom{}}

	// 2. Некорректный период дает пустой список
	checkIn, checkOut, ok := parseStay(req.CheckIn, req.CheckOut)
	if !ok {
		uc.logger.Warn("GetAvailableRooms: invalid stay checkIn=%q checkOut=%q", req.CheckIn, req.CheckOut)
		return resp, nil
	}
	resp.CheckIn = &checkIn
	resp.CheckOut = &checkOut
	resp.Nights = domain.DaysBetween(checkIn, checkOut)

	// 3. Номера и бронирования отеля
	rooms, reservations, err := uc.load(ctx, req.HotelID)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: hotel=%s: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Оставляем номера без пересекающихся бронирований
	for _, room := range rooms {
		if !room.IsBookable() || !room.IsFreeFor(checkIn, checkOut, reservations) {
			continue
		}
		resp.Rooms = append(resp.Rooms, AvailableRoom{
			Room:      room,
			StayPrice: room.PriceForStay(checkIn, checkOut),
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available for hotel=%s",
		len(resp.Rooms), len(rooms), req.HotelID)

	return resp, nil
}

// CountExecute возвращает количество свободных номеров
func (uc *UseCase) CountExecute(ctx context.Context, req *Request) (int, error) {
	resp, err := uc.Execute(ctx, req)
	if err != nil {
		return 0, err
	}
	return len(resp.Rooms), nil
}

func (uc *UseCase) load(ctx context.Context, hotelID uuid.UUID) ([]*domain.Room, []*domain.Reservation, error) {
	var (
		rooms        []*domain.Room
		reservations []*domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.roomRepo.ListBookable(dbmetrics.WithOperation(gctx, "rooms_list_bookable"), hotelID)
		if err != nil {
			return fmt.Errorf("failed to get rooms: %w", err)
		}
		rooms = list
		return nil
	})
	g.Go(func() error {
		filter := domain.ReservationFilter{
			BusinessID:      hotelID,
			BusinessType:    ptr.Ptr(domain.BusinessHotel),
			ExcludeStatuses: []domain.ReservationStatus{domain.StatusCancelled},
		}
		list, err := uc.reservationRepo.List(dbmetrics.WithOperation(gctx, "reservations_by_hotel"), filter)
		if err != nil {
			return fmt.Errorf("failed to get reservations: %w", err)
		}
		reservations = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rooms, reservations, nil
}
