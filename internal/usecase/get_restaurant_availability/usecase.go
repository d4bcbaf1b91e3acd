package get_restaurant_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для получения доступных слотов ресторана на дату
type UseCase struct {
	settingsRepo    SettingsRepository
	reservationRepo ReservationRepository
	observer        SlotObserver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// observer может быть nil
func NewUseCase(
	settingsRepo SettingsRepository,
	reservationRepo ReservationRepository,
	observer SlotObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo:    settingsRepo,
		reservationRepo: reservationRepo,
		observer:        observer,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRestaurantAvailability: restaurant=%s, date=%s, partySize=%d",
		req.RestaurantID, req.Date, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRestaurantAvailability: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		PartySize:    req.PartySize,
		Slots:        []Slot{},
	}

	// 2. Разбираем дату; некорректная дата дает пустой список
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetRestaurantAvailability: unparsable date %q", req.Date)
		return resp, nil
	}

	// 3. Параллельно получаем настройки и бронирования на дату
	var (
		settings     *domain.RestaurantSettings
		reservations []*domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.settingsRepo.GetSettings(dbmetrics.WithOperation(gctx, "restaurant_settings_get"), req.RestaurantID)
		if err != nil {
			if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings = s
		return nil
	})
	g.Go(func() error {
		filter := domain.ReservationFilter{
			BusinessID:   req.RestaurantID,
			BusinessType: ptr.Ptr(domain.BusinessRestaurant),
			DateFrom:     ptr.Ptr(date),
			DateTo:       ptr.Ptr(date.AddDate(0, 0, 1)),
			Statuses:     domain.CapacityStatuses,
		}
		list, err := uc.reservationRepo.List(dbmetrics.WithOperation(gctx, "reservations_by_day"), filter)
		if err != nil {
			return fmt.Errorf("failed to get reservations: %w", err)
		}
		reservations = list
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetRestaurantAvailability: restaurant=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if settings == nil {
		uc.logger.Warn("GetRestaurantAvailability: restaurant=%s not found", req.RestaurantID)
		return resp, nil
	}

	// 4. Проверяем, что расписание настроено
	if !settings.IsSlotConfigured() {
		uc.logger.Warn("GetRestaurantAvailability: restaurant=%s has no horaires or valid frequency", req.RestaurantID)
		return nil, ErrSettingsIncomplete
	}

	capacity := settings.SlotCapacity()
	if !capacity.Unlimited {
		resp.Capacity = ptr.Ptr(capacity.Value)
	}

	// 5. Закрытые даты и дни недели
	if settings.IsClosedOn(date) {
		uc.logger.Info("GetRestaurantAvailability: restaurant=%s is closed on %s", req.RestaurantID, req.Date)
		return resp, nil
	}

	// 6. Генерируем слоты и считаем доступность
	times := settings.GenerateSlots()
	booked := domain.BookedGuests(reservations)
	resolved := domain.ResolveSlots(times, booked, capacity, req.PartySize)

	available := 0
	resp.Slots = make([]Slot, len(resolved))
	for i, s := range resolved {
		resp.Slots[i] = Slot{Time: s.Time, Available: s.Available, BookedGuests: s.Booked}
		if s.Available {
			available++
		}
	}

	if uc.observer != nil {
		uc.observer.ObserveSlots(available, len(resolved)-available)
	}

	uc.logger.Info("GetRestaurantAvailability: generated %d slots (%d available) for restaurant=%s, date=%s",
		len(resolved), available, req.RestaurantID, req.Date)

	return resp, nil
}
