package get_restaurant_settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgNotFound            = "ресторан не найден"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /restaurants/{id}/settings", h.service.Get)
}

// HandleRefresh POST /api/v1/restaurants/{restaurantId}/settings/refresh
// Сбрасывает кэш настроек после изменения их администратором
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /restaurants/{id}/settings/refresh", h.service.Refresh)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	load func(ctx context.Context, restaurantID uuid.UUID) (*models.SettingsResponse, error),
) {
	restaurantID, err := uuid.Parse(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.logger.Warn("%s - Invalid restaurant ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	result, err := load(r.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, settings.ErrRestaurantNotFound) {
			h.logger.Warn("%s - Restaurant not found: restaurant_id=%s", route, restaurantID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("%s - Failed to get settings: restaurant_id=%s, error=%v", route, restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Settings retrieved successfully: restaurant_id=%s", route, restaurantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
