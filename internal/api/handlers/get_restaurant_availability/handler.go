package get_restaurant_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getRestaurantAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_restaurant_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validator"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidPartySize    = "некорректное количество гостей"
	msgSettingsIncomplete  = "у ресторана не настроены часы работы или частота слотов"
)

type Handler struct {
	useCase GetRestaurantAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRestaurantAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/availability
// Query params: date (required, YYYY-MM-DD), partySize (required, >= 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := AvailabilityQuery{Date: r.URL.Query().Get("date")}

	if raw := r.URL.Query().Get("partySize"); raw != "" {
		query.PartySize, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid party size: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
	}

	if fields := validator.Validate(query); fields != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Validation failed: %v", fields)
		handlers.RespondValidationError(w, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(restaurantID, query))
	if err != nil {
		switch {
		case errors.Is(err, getRestaurantAvailability.ErrSettingsIncomplete):
			h.logger.Warn("GET /restaurants/{id}/availability - Settings incomplete: restaurant_id=%s", restaurantID)
			handlers.RespondUnprocessable(w, msgSettingsIncomplete)

		case errors.Is(err, getRestaurantAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /restaurants/{id}/availability - Failed to get availability: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/availability - Slots retrieved successfully: restaurant_id=%s, date=%s, slots_count=%d",
		restaurantID, query.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
