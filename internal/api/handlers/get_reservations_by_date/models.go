package get_reservations_by_date

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
)

// ReservationsQuery query параметры запроса
type ReservationsQuery struct {
	Date string `json:"date" validate:"required,date"`
}

// ToServiceRequest формирует запрос к сервису
func ToServiceRequest(restaurantID uuid.UUID, q ReservationsQuery) *models.ListByDateRequest {
	return &models.ListByDateRequest{
		RestaurantID: restaurantID,
		Date:         q.Date,
	}
}
