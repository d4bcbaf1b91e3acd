package get_available_rooms

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HotelID == uuid.Nil {
		return fmt.Errorf("%w: hotelID is required", ErrInvalidInput)
	}
	return nil
}

// parseStay разбирает даты проживания
// ok=false для некорректных дат и checkOut <= checkIn
func parseStay(checkIn, checkOut string) (time.Time, time.Time, bool) {
	in, err := parseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
