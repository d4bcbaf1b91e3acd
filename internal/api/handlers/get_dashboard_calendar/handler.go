package get_dashboard_calendar

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getDashboardCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_calendar"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validator"
)

const msgInvalidRestaurantID = "некорректный ID ресторана"

type Handler struct {
	useCase GetDashboardCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/dashboard/calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/dashboard/calendar - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := CalendarQuery{Month: r.URL.Query().Get("month")}
	if fields := validator.Validate(query); fields != nil {
		h.logger.Warn("GET /restaurants/{id}/dashboard/calendar - Validation failed: %v", fields)
		handlers.RespondValidationError(w, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDashboardCalendar.Request{
		RestaurantID: restaurantID,
		Month:        query.Month,
	})
	if err != nil {
		if errors.Is(err, getDashboardCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /restaurants/{id}/dashboard/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /restaurants/{id}/dashboard/calendar - Failed to get calendar: restaurant_id=%s, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/dashboard/calendar - Calendar retrieved: restaurant_id=%s, month=%s, days=%d",
		restaurantID, result.Month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
