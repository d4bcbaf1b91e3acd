package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_reservation"
	getAvailableRoomsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_rooms"
	getDashboardCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_dashboard_calendar"
	getDashboardMetricsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_dashboard_metrics"
	getReservationHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_reservation"
	getReservationsByDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_reservations_by_date"
	getRestaurantAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_restaurant_availability"
	getRestaurantSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_restaurant_settings"
	getRoomHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_room"
	getStayQuoteHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_stay_quote"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// Handlers обработчики HTTP API
type Handlers struct {
	AvailableRooms         *getAvailableRoomsHandler.Handler
	Room                   *getRoomHandler.Handler
	StayQuote              *getStayQuoteHandler.Handler
	RestaurantAvailability *getRestaurantAvailabilityHandler.Handler
	RestaurantSettings     *getRestaurantSettingsHandler.Handler
	DashboardMetrics       *getDashboardMetricsHandler.Handler
	DashboardCalendar      *getDashboardCalendarHandler.Handler
	ReservationsByDate     *getReservationsByDateHandler.Handler
	Reservation            *getReservationHandler.Handler
	CancelReservation      *cancelReservationHandler.Handler
}

// RouterOptions параметры роутера
// Metrics nil - метрики выключены, эндпоинт не публикуется
type RouterOptions struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	Logger      middleware.Logger
}

// NewRouter настраивает маршруты API
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.Logger != nil {
		r.Use(middleware.AccessLog(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Отели ---
	api.HandleFunc("/hotels/{hotelId}/available-rooms", h.AvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/available-rooms/count", h.AvailableRooms.HandleCount).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", h.Room.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/quote", h.StayQuote.Handle).Methods(http.MethodGet)

	// --- Рестораны ---
	api.HandleFunc("/restaurants/{restaurantId}/availability", h.RestaurantAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/settings", h.RestaurantSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/settings/refresh", h.RestaurantSettings.HandleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/restaurants/{restaurantId}/dashboard/metrics", h.DashboardMetrics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/dashboard/calendar", h.DashboardCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/reservations", h.ReservationsByDate.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations/{reservationId}", h.Reservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", h.CancelReservation.Handle).Methods(http.MethodPatch)

	return r
}
