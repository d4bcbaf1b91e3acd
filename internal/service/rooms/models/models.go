package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RoomResponse ответ с данными номера
// Цены и опции отдаются в том виде, в котором хранятся
type RoomResponse struct {
	ID            uuid.UUID             `json:"id"`
	HotelID       uuid.UUID             `json:"hotelId"`
	Number        string                `json:"number"`
	Type          string                `json:"type"`
	Capacity      int                   `json:"capacity"`
	Price         decimal.Decimal       `json:"price"`
	Status        string                `json:"status"`
	IsActive      bool                  `json:"isActive"`
	SpecialPrices []domain.SpecialPrice `json:"specialPrices"`
	MonthlyPrices []domain.MonthlyPrice `json:"monthlyPrices"`
	ViewOptions   []domain.ViewOption   `json:"viewOptions"`
	PaidOptions   []domain.PaidOption   `json:"paidOptions"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		Number:        r.Number,
		Type:          r.Type,
		Capacity:      r.Capacity,
		Price:         r.BasePrice,
		Status:        string(r.Status),
		IsActive:      r.IsActive,
		SpecialPrices: nonNil(r.SpecialPrices),
		MonthlyPrices: nonNil(r.MonthlyPrices),
		ViewOptions:   nonNil(r.ViewOptions),
		PaidOptions:   nonNil(r.PaidOptions),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
