package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SettingsRepository источник настроек ресторана
type SettingsRepository interface {
	GetSettings(ctx context.Context, restaurantID uuid.UUID) (*domain.RestaurantSettings, error)
}

// CacheInvalidator сбрасывает закэшированные настройки
type CacheInvalidator interface {
	Invalidate(ctx context.Context, restaurantID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
