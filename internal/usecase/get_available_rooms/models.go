package get_available_rooms

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса свободных номеров
type Request struct {
	HotelID  uuid.UUID
	CheckIn  string // YYYY-MM-DD или RFC3339
	CheckOut string
	Adults   int // Только для логирования
	Children int // Только для логирования
}

// Response модель ответа со свободными номерами
type Response struct {
	HotelID  uuid.UUID
	CheckIn  *time.Time // nil, если даты некорректны
	CheckOut *time.Time
	Nights   int
	Rooms    []AvailableRoom
}

// AvailableRoom свободный номер со стоимостью проживания
type AvailableRoom struct {
	Room      *domain.Room
	StayPrice decimal.Decimal
}
