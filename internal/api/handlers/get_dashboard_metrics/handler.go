package get_dashboard_metrics

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getDashboardMetrics "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validator"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgNotFound            = "ресторан не найден"
)

type Handler struct {
	useCase GetDashboardMetricsUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardMetricsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/dashboard/metrics
// Query params: from, to (YYYY-MM-DD, по умолчанию текущий месяц)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/dashboard/metrics - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := MetricsQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if fields := validator.Validate(query); fields != nil {
		h.logger.Warn("GET /restaurants/{id}/dashboard/metrics - Validation failed: %v", fields)
		handlers.RespondValidationError(w, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(restaurantID, query))
	if err != nil {
		switch {
		case errors.Is(err, getDashboardMetrics.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/dashboard/metrics - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getDashboardMetrics.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/dashboard/metrics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /restaurants/{id}/dashboard/metrics - Failed to get metrics: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/dashboard/metrics - Metrics calculated: restaurant_id=%s, total=%d",
		restaurantID, result.Metrics.ReservationsTotales)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
