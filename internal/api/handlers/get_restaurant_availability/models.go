package get_restaurant_availability

import (
	"github.com/google/uuid"

	getRestaurantAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_restaurant_availability"
)

// AvailabilityQuery query параметры запроса
// Неразбираемая дата не является ошибкой: вернется пустой список слотов
type AvailabilityQuery struct {
	Date      string `json:"date" validate:"required"`
	PartySize int    `json:"partySize" validate:"gte=1"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RestaurantID uuid.UUID          `json:"restaurantId"`
	Date         string             `json:"date"`
	PartySize    int                `json:"partySize"`
	Capacity     *int               `json:"capacity"`
	Slots        []AvailabilitySlot `json:"slots"`
}

// AvailabilitySlot модель слота
type AvailabilitySlot struct {
	Time         string `json:"time"`
	Available    bool   `json:"available"`
	BookedGuests int    `json:"bookedGuests"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRestaurantAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailabilitySlot{
			Time:         slot.Time.String(),
			Available:    slot.Available,
			BookedGuests: slot.BookedGuests,
		}
	}

	return &AvailabilityResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date,
		PartySize:    resp.PartySize,
		Capacity:     resp.Capacity,
		Slots:        slots,
	}
}

// ToUseCaseRequest создает запрос use case
func ToUseCaseRequest(restaurantID uuid.UUID, q AvailabilityQuery) *getRestaurantAvailability.Request {
	return &getRestaurantAvailability.Request{
		RestaurantID: restaurantID,
		Date:         q.Date,
		PartySize:    q.PartySize,
	}
}
