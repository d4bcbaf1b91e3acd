package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	restaurantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/restaurant"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

// Service сервис чтения настроек ресторана
type Service struct {
	settingsRepo SettingsRepository
	invalidator  CacheInvalidator
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
// invalidator может быть nil, если кэш не используется
func NewService(settingsRepo SettingsRepository, invalidator CacheInvalidator, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// Get получает настройки ресторана
func (s *Service) Get(ctx context.Context, restaurantID uuid.UUID) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for restaurant=%s", restaurantID)

	settings, err := s.settingsRepo.GetSettings(dbmetrics.WithOperation(ctx, "restaurant_settings_get"), restaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Get: restaurant=%s not found", restaurantID)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Get: repository error for restaurant=%s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Refresh сбрасывает кэш настроек и перечитывает их из БД
func (s *Service) Refresh(ctx context.Context, restaurantID uuid.UUID) (*models.SettingsResponse, error) {
	s.logger.Info("Refresh: invalidating settings cache for restaurant=%s", restaurantID)

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, restaurantID); err != nil {
			s.logger.Error("Refresh: failed to invalidate cache for restaurant=%s: %v", restaurantID, err)
			return nil, fmt.Errorf("%w: Refresh - cache error: %v", ErrInternal, err)
		}
	}

	return s.Get(ctx, restaurantID)
}
