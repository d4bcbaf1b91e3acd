package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// ListByDateRequest запрос бронирований ресторана на дату
type ListByDateRequest struct {
	RestaurantID uuid.UUID `json:"restaurantId"`
	Date         string    `json:"date"` // "2025-10-15"
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           uuid.UUID        `json:"id"`
	BusinessID   uuid.UUID        `json:"businessId"`
	BusinessType string           `json:"businessType"`
	RoomID       *uuid.UUID       `json:"roomId,omitempty"`
	TableID      *uuid.UUID       `json:"tableId,omitempty"`
	CheckIn      *time.Time       `json:"checkIn,omitempty"`
	CheckOut     *time.Time       `json:"checkOut,omitempty"`
	Date         *string          `json:"date,omitempty"` // "2025-10-15"
	Time         *string          `json:"time,omitempty"` // "09:00"
	Guests       *int             `json:"guests,omitempty"`
	PartySize    *int             `json:"partySize,omitempty"`
	Status       string           `json:"status"`
	TotalAmount  *decimal.Decimal `json:"totalAmount,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
// Время приводится к виду HH:mm, если его удается разобрать
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		BusinessType: string(r.BusinessType),
		RoomID:       r.RoomID,
		TableID:      r.TableID,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Time:         r.Time,
		Guests:       r.Guests,
		PartySize:    r.PartySize,
		Status:       string(r.Status),
		TotalAmount:  r.TotalAmount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if r.Date != nil {
		date := r.Date.Format(domain.DateFormat)
		resp.Date = &date
	}

	if ts, ok := r.NormalizedTime(); ok {
		normalized := ts.String()
		resp.Time = &normalized
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}
