package get_restaurant_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SettingsRepository источник настроек ресторана (репозиторий или кэш)
type SettingsRepository interface {
	GetSettings(ctx context.Context, restaurantID uuid.UUID) (*domain.RestaurantSettings, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// List получает бронирования по фильтру
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// SlotObserver учитывает проверенные слоты в метриках
type SlotObserver interface {
	ObserveSlots(available, full int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
