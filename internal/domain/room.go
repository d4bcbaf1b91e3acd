package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomStatus состояние номера
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
)

// Room номер отеля
type Room struct {
	ID        uuid.UUID
	HotelID   uuid.UUID
	Number    string
	Type      string
	Capacity  int
	BasePrice decimal.Decimal
	Status    RoomStatus
	IsActive  bool

	SpecialPrices []SpecialPrice
	MonthlyPrices []MonthlyPrice
	ViewOptions   []ViewOption
	PaidOptions   []PaidOption

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpecialPrice цена на период месяц/день, повторяется ежегодно
// Период с началом позже конца переходит через Новый год
type SpecialPrice struct {
	StartMonth int             `json:"startMonth"`
	StartDay   int             `json:"startDay"`
	EndMonth   int             `json:"endMonth"`
	EndDay     int             `json:"endDay"`
	Price      decimal.Decimal `json:"price"`
}

// MonthlyPrice цена на диапазон месяцев включительно
type MonthlyPrice struct {
	StartMonth int             `json:"startMonth"`
	EndMonth   int             `json:"endMonth"`
	Price      decimal.Decimal `json:"price"`
}

// ViewOption вид из номера
type ViewOption struct {
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// PaidOption платная опция номера
type PaidOption struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// IsBookable возвращает true, если номер активен и свободен по статусу
func (r *Room) IsBookable() bool {
	return r.IsActive && r.Status == RoomAvailable
}

// IsFreeFor проверяет, что ни одно из бронирований номера не пересекается с проживанием
// Отмененные бронирования и бронирования других номеров игнорируются
func (r *Room) IsFreeFor(checkIn, checkOut time.Time, reservations []*Reservation) bool {
	for _, res := range reservations {
		if res.RoomID == nil || *res.RoomID != r.ID {
			continue
		}
		if res.IsCancelled() {
			continue
		}
		if res.OverlapsStay(checkIn, checkOut) {
			return false
		}
	}
	return true
}

// FindView ищет вид по имени
func (r *Room) FindView(name string) (ViewOption, bool) {
	for _, v := range r.ViewOptions {
		if v.Name == name {
			return v, true
		}
	}
	return ViewOption{}, false
}

// FindPaidOption ищет платную опцию по имени
func (r *Room) FindPaidOption(name string) (PaidOption, bool) {
	for _, o := range r.PaidOptions {
		if o.Name == name {
			return o, true
		}
	}
	return PaidOption{}, false
}
