package get_dashboard_metrics

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

// resolvePeriod возвращает период [from, to] с днями включительно
// Пустые границы заменяются границами текущего месяца
// ok=false для неразбираемых дат и to раньше from
func resolvePeriod(fromStr, toStr string, now time.Time) (time.Time, time.Time, bool) {
	monthStart, nextMonth := domain.MonthRange(now)

	from := monthStart
	if fromStr != "" {
		t, err := parseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		from = t
	}

	to := nextMonth.AddDate(0, 0, -1)
	if toStr != "" {
		t, err := parseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		to = t
	}

	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
