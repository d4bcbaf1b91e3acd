package get_restaurant_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса доступности ресторана
type Request struct {
	RestaurantID uuid.UUID // ID ресторана
	Date         string    // Дата в формате YYYY-MM-DD
	PartySize    int       // Количество гостей
}

// Response модель ответа со списком слотов
type Response struct {
	RestaurantID uuid.UUID
	Date         string
	PartySize    int
	Capacity     *int // Вместимость слота, nil - без ограничений
	Slots        []Slot
}

// Slot модель слота
type Slot struct {
	Time         types.TimeString // Время начала слота, "HH:mm"
	Available    bool             // Помещается ли компания
	BookedGuests int              // Уже забронировано гостей
}
