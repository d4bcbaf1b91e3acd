package get_dashboard_calendar

import (
	"github.com/google/uuid"

	getDashboardCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_calendar"
)

// CalendarQuery query параметры запроса
type CalendarQuery struct {
	Month string `json:"month" validate:"required"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	RestaurantID uuid.UUID     `json:"restaurantId"`
	Month        string        `json:"month"`
	Days         []DayResponse `json:"days"`
}

// DayResponse количество бронирований за день
type DayResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDashboardCalendar.Response) *CalendarResponse {
	result := &CalendarResponse{
		RestaurantID: resp.RestaurantID,
		Month:        resp.Month,
		Days:         make([]DayResponse, 0, len(resp.Days)),
	}
	for _, d := range resp.Days {
		result.Days = append(result.Days, DayResponse{Date: d.Date, Count: d.Count})
	}
	return result
}
