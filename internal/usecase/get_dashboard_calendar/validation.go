package get_dashboard_calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}
	return nil
}

// parseMonth разбирает месяц в формате YYYY-MM или YYYY-MM-DD
func parseMonth(s string) (time.Time, bool) {
	if t, err := time.Parse(domain.MonthFormat, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
