package get_available_rooms

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	roomModels "github.com/m04kA/SMC-AvailabilityService/internal/service/rooms/models"
	getAvailableRooms "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_rooms"
)

// RoomsQuery query параметры запроса
// Некорректный период не является ошибкой: вернется пустой список
type RoomsQuery struct {
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
	Adults   int    `json:"adults" validate:"gte=0"`
	Children int    `json:"children" validate:"gte=0"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	HotelID  uuid.UUID       `json:"hotelId"`
	CheckIn  *string         `json:"checkIn"`
	CheckOut *string         `json:"checkOut"`
	Nights   int             `json:"nights"`
	Rooms    []AvailableRoom `json:"rooms"`
}

// AvailableRoom свободный номер со стоимостью проживания
type AvailableRoom struct {
	roomModels.RoomResponse
	StayPrice decimal.Decimal `json:"stayPrice"`
}

// CountResponse ответ с количеством свободных номеров
type CountResponse struct {
	HotelID uuid.UUID `json:"hotelId"`
	Count   int       `json:"count"`
}

// ParseQuery разбирает query параметры; adults и children необязательны
func ParseQuery(values url.Values) (RoomsQuery, error) {
	q := RoomsQuery{
		CheckIn:  values.Get("checkIn"),
		CheckOut: values.Get("checkOut"),
	}

	var err error
	if raw := values.Get("adults"); raw != "" {
		if q.Adults, err = strconv.Atoi(raw); err != nil {
			return q, err
		}
	}
	if raw := values.Get("children"); raw != "" {
		if q.Children, err = strconv.Atoi(raw); err != nil {
			return q, err
		}
	}
	return q, nil
}

// ToUseCaseRequest создает запрос use case
func ToUseCaseRequest(hotelID uuid.UUID, q RoomsQuery) *getAvailableRooms.Request {
	return &getAvailableRooms.Request{
		HotelID:  hotelID,
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Adults:   q.Adults,
		Children: q.Children,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	out := &AvailableRoomsResponse{
		HotelID: resp.HotelID,
		Nights:  resp.Nights,
		Rooms:   make([]AvailableRoom, 0, len(resp.Rooms)),
	}
	if resp.CheckIn != nil && resp.CheckOut != nil {
		in := resp.CheckIn.Format(domain.DateFormat)
		checkOut := resp.CheckOut.Format(domain.DateFormat)
		out.CheckIn, out.CheckOut = &in, &checkOut
	}
	for _, r := range resp.Rooms {
		out.Rooms = append(out.Rooms, AvailableRoom{
			RoomResponse: *roomModels.FromDomainRoom(r.Room),
			StayPrice:    r.StayPrice,
		})
	}
	return out
}
