package get_dashboard_metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	restaurantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для расчета показателей ресторана за период
type UseCase struct {
	settingsRepo    SettingsRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(settingsRepo SettingsRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		settingsRepo:    settingsRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute рассчитывает количество бронирований, выручку и заполняемость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDashboardMetrics: restaurant=%s, from=%q, to=%q", req.RestaurantID, req.From, req.To)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDashboardMetrics: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки ресторана
	settings, err := uc.settingsRepo.GetSettings(dbmetrics.WithOperation(ctx, "restaurant_settings_get"), req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetDashboardMetrics: restaurant=%s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetDashboardMetrics: failed to get settings restaurant=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	resp := &Response{
		RestaurantID: req.RestaurantID,
		Metrics:      domain.DashboardMetrics{ChiffreAffaires: decimal.Zero},
	}

	// 3. Период; некорректный период дает нулевые показатели
	from, to, ok := resolvePeriod(req.From, req.To, uc.timeProvider.Now())
	if !ok {
		uc.logger.Warn("GetDashboardMetrics: invalid period from=%q to=%q", req.From, req.To)
		return resp, nil
	}
	resp.From = &from
	resp.To = &to

	// 4. Бронирования за период любых статусов
	filter := domain.ReservationFilter{
		BusinessID:   req.RestaurantID,
		BusinessType: ptr.Ptr(domain.BusinessRestaurant),
		DateFrom:     ptr.Ptr(from),
		DateTo:       ptr.Ptr(to.AddDate(0, 0, 1)),
	}
	reservations, err := uc.reservationRepo.List(dbmetrics.WithOperation(ctx, "reservations_by_period"), filter)
	if err != nil {
		uc.logger.Error("GetDashboardMetrics: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Агрегируем
	resp.Metrics = aggregate(settings, reservations, domain.DaysBetween(from, to)+1)

	uc.logger.Info("GetDashboardMetrics: restaurant=%s total=%d revenue=%s fill=%.2f",
		req.RestaurantID, resp.Metrics.ReservationsTotales, resp.Metrics.ChiffreAffaires, resp.Metrics.TauxRemplissage)

	return resp, nil
}

// aggregate считает показатели по бронированиям периода длиной days дней
func aggregate(settings *domain.RestaurantSettings, reservations []*domain.Reservation, days int) domain.DashboardMetrics {
	revenue := decimal.Zero
	guests := 0
	for _, r := range reservations {
		if !r.IsConfirmed() {
			continue
		}
		revenue = revenue.Add(r.Amount())
		guests += r.Party()
	}

	slots := domain.PeriodSlots(days, len(settings.Horaires), settings.Frequency())

	return domain.DashboardMetrics{
		ReservationsTotales: len(reservations),
		ChiffreAffaires:     revenue,
		TauxRemplissage:     domain.FillRate(guests, slots, settings.MetricsCapacity()),
	}
}
