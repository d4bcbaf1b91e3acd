package get_dashboard_calendar

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса тепловой карты
type Request struct {
	RestaurantID uuid.UUID
	Month        string // YYYY-MM или любая дата месяца YYYY-MM-DD
}

// Response модель ответа: только дни с бронированиями, по возрастанию даты
type Response struct {
	RestaurantID uuid.UUID
	Month        string // YYYY-MM, пусто для неразбираемого месяца
	Days         []domain.DayCount
}
