package get_dashboard_metrics

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса показателей ресторана
type Request struct {
	RestaurantID uuid.UUID
	From         string // YYYY-MM-DD, пусто - начало текущего месяца
	To           string // YYYY-MM-DD включительно, пусто - конец текущего месяца
}

// Response модель ответа с показателями
type Response struct {
	RestaurantID uuid.UUID
	From         *time.Time // nil, если период некорректен
	To           *time.Time
	Metrics      domain.DashboardMetrics
}
