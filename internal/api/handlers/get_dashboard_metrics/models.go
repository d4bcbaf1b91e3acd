package get_dashboard_metrics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getDashboardMetrics "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_metrics"
)

// MetricsQuery query параметры запроса, обе даты необязательны
type MetricsQuery struct {
	From string `json:"from" validate:"omitempty,date"`
	To   string `json:"to" validate:"omitempty,date"`
}

// MetricsResponse HTTP response model
type MetricsResponse struct {
	RestaurantID        uuid.UUID       `json:"restaurantId"`
	From                *string         `json:"from"`
	To                  *string         `json:"to"`
	ReservationsTotales int             `json:"reservationsTotales"`
	ChiffreAffaires     decimal.Decimal `json:"chiffreAffaires"`
	TauxRemplissage     float64         `json:"tauxRemplissage"` // Проценты, до двух знаков
}

// ToUseCaseRequest конвертирует query в запрос use case
func ToUseCaseRequest(restaurantID uuid.UUID, q MetricsQuery) *getDashboardMetrics.Request {
	return &getDashboardMetrics.Request{
		RestaurantID: restaurantID,
		From:         q.From,
		To:           q.To,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDashboardMetrics.Response) *MetricsResponse {
	result := &MetricsResponse{
		RestaurantID:        resp.RestaurantID,
		ReservationsTotales: resp.Metrics.ReservationsTotales,
		ChiffreAffaires:     resp.Metrics.ChiffreAffaires,
		TauxRemplissage:     resp.Metrics.TauxRemplissage,
	}
	if resp.From != nil {
		from := resp.From.Format(domain.DateFormat)
		result.From = &from
	}
	if resp.To != nil {
		to := resp.To.Format(domain.DateFormat)
		result.To = &to
	}
	return result
}
