package get_dashboard_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для тепловой карты бронирований ресторана за месяц
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute считает бронирования любых статусов по дням месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDashboardCalendar: restaurant=%s, month=%q", req.RestaurantID, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDashboardCalendar: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{RestaurantID: req.RestaurantID, Days: []domain.DayCount{}}

	// 2. Границы месяца
	month, ok := parseMonth(req.Month)
	if !ok {
		uc.logger.Warn("GetDashboardCalendar: unparsable month %q", req.Month)
		return resp, nil
	}
	from, to := domain.MonthRange(month)
	resp.Month = from.Format(domain.MonthFormat)

	// 3. Бронирования месяца
	filter := domain.ReservationFilter{
		BusinessID:   req.RestaurantID,
		BusinessType: ptr.Ptr(domain.BusinessRestaurant),
		DateFrom:     ptr.Ptr(from),
		DateTo:       ptr.Ptr(to),
	}
	reservations, err := uc.reservationRepo.List(dbmetrics.WithOperation(ctx, "reservations_by_month"), filter)
	if err != nil {
		uc.logger.Error("GetDashboardCalendar: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Группировка по дням
	resp.Days = domain.CountByDay(reservations)

	uc.logger.Info("GetDashboardCalendar: restaurant=%s month=%s days=%d reservations=%d",
		req.RestaurantID, resp.Month, len(resp.Days), len(reservations))

	return resp, nil
}
