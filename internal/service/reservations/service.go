package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	reservation, err := s.reservationRepo.GetByID(dbmetrics.WithOperation(ctx, "reservation_get"), id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByDate получает бронирования ресторана на дату любых статусов, упорядоченные по времени
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDate: fetching reservations for restaurant=%s, date=%s", req.RestaurantID, req.Date)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("ListByDate: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	filter := domain.ReservationFilter{
		BusinessID:   req.RestaurantID,
		BusinessType: ptr.Ptr(domain.BusinessRestaurant),
		DateFrom:     ptr.Ptr(date),
		DateTo:       ptr.Ptr(date.AddDate(0, 0, 1)),
	}

	list, err := s.reservationRepo.List(dbmetrics.WithOperation(ctx, "reservations_by_day"), filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error for restaurant=%s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	sortByTime(list)

	s.logger.Info("ListByDate: found %d reservations for restaurant=%s", len(list), req.RestaurantID)
	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронирование
// Отменить можно только бронирование в статусе pending или confirmed
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	var cancelled *domain.Reservation

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Получаем бронирование с блокировкой строки
		reservation, err := s.reservationRepo.GetByID(dbmetrics.WithOperation(ctx, "reservation_get_for_update"), id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Проверяем, можно ли отменить бронирование
		if !reservation.CanBeCancelled() {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, reservation.Status)
		}

		if err := s.reservationRepo.UpdateStatus(dbmetrics.WithOperation(ctx, "reservation_cancel"), id, domain.StatusCancelled); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		reservation.Status = domain.StatusCancelled
		cancelled = reservation
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("Cancel: reservation id=%s not found", id)
		case errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: reservation id=%s cannot be cancelled: %v", id, err)
		default:
			s.logger.Error("Cancel: failed to cancel reservation id=%s: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: Cancel - transaction error: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return models.FromDomainReservation(cancelled), nil
}

// sortByTime упорядочивает бронирования по нормализованному времени
// "9:00" идет раньше "12:00"; бронирования без времени в конце
func sortByTime(list []*domain.Reservation) {
	sort.SliceStable(list, func(i, j int) bool {
		ti, okI := list[i].NormalizedTime()
		tj, okJ := list[j].NormalizedTime()
		switch {
		case okI && okJ:
			return ti.IsBefore(tj)
		default:
			return okI && !okJ
		}
	})
}
