package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// Сервисы не вызываются: запросы отклоняются на разборе id
func newHandlers() Handlers {
	log := logger.Nop()
	return Handlers{
		AvailableRooms:         getAvailableRoomsHandler.NewHandler(nil, log),
		Room:                   getRoomHandler.NewHandler(nil, log),
		StayQuote:              getStayQuoteHandler.NewHandler(nil, log),
		RestaurantAvailability: getRestaurantAvailabilityHandler.NewHandler(nil, log),
		RestaurantSettings:     getRestaurantSettingsHandler.NewHandler(nil, log),
		DashboardMetrics:       getDashboardMetricsHandler.NewHandler(nil, log),
		DashboardCalendar:      getDashboardCalendarHandler.NewHandler(nil, log),
		ReservationsByDate:     getReservationsByDateHandler.NewHandler(nil, log),
		Reservation:            getReservationHandler.NewHandler(nil, log),
		CancelReservation:      cancelReservationHandler.NewHandler(nil, log),
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := NewRouter(newHandlers(), RouterOptions{})

	var templates []string
	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if tpl, err := route.GetPathTemplate(); err == nil {
			if _, err := route.GetMethods(); err == nil {
				templates = append(templates, tpl)
			}
		}
		return nil
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"/api/v1/hotels/{hotelId}/available-rooms",
		"/api/v1/hotels/{hotelId}/available-rooms/count",
		"/api/v1/rooms/{roomId}",
		"/api/v1/rooms/{roomId}/quote",
		"/api/v1/restaurants/{restaurantId}/availability",
		"/api/v1/restaurants/{restaurantId}/settings",
		"/api/v1/restaurants/{restaurantId}/settings/refresh",
		"/api/v1/restaurants/{restaurantId}/dashboard/metrics",
		"/api/v1/restaurants/{restaurantId}/dashboard/calendar",
		"/api/v1/restaurants/{restaurantId}/reservations",
		"/api/v1/reservations/{reservationId}",
		"/api/v1/reservations/{reservationId}/cancel",
	}, templates)
}

func TestNewRouter_Dispatch(t *testing.T) {
	m := metrics.NewWithRegisterer("availability_service", prometheus.NewRegistry())
	router := NewRouter(newHandlers(), RouterOptions{Metrics: m, MetricsPath: "/metrics", Logger: logger.Nop()})

	tests := []struct {
		method   string
		target   string
		expected int
	}{
		{http.MethodGet, "/api/v1/rooms/abc", http.StatusBadRequest},
		{http.MethodPatch, "/api/v1/reservations/abc/cancel", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/reservations/abc/cancel", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
