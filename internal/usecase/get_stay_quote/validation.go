package get_stay_quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == uuid.Nil {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	return nil
}

// parseStay разбирает даты проживания, ok=false для некорректного периода
func parseStay(checkIn, checkOut string) (time.Time, time.Time, bool) {
	in, errIn := parseDate(checkIn)
	out, errOut := parseDate(checkOut)
	if errIn != nil || errOut != nil || !out.After(in) {
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
