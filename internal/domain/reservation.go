package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in-progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no-show"
)

// Reservation бронирование любого типа бизнеса
// Для отеля заполнены RoomID, CheckIn, CheckOut и Guests,
// для ресторана TableID, Date, Time и PartySize
type Reservation struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessType BusinessType

	RoomID  *uuid.UUID
	TableID *uuid.UUID

	CheckIn  *time.Time
	CheckOut *time.Time
	Date     *time.Time
	Time     *string // "HH:mm", хранится как ввели

	Guests    *int
	PartySize *int

	Status      ReservationStatus
	TotalAmount *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает занятый полуоткрытый интервал [start, end)
// Начало: CheckIn, иначе Date. Конец: CheckOut, иначе начало + 1 день
// ok=false, если начало неизвестно или конец не позже начала
func (r *Reservation) Interval() (start, end time.Time, ok bool) {
	switch {
	case r.CheckIn != nil && !r.CheckIn.IsZero():
		start = *r.CheckIn
	case r.Date != nil && !r.Date.IsZero():
		start = *r.Date
	default:
		return time.Time{}, time.Time{}, false
	}

	if r.CheckOut != nil && !r.CheckOut.IsZero() {
		end = *r.CheckOut
	} else {
		end = start.AddDate(0, 0, 1)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// OverlapsStay проверяет, пересекается ли бронирование с проживанием [checkIn, checkOut)
// Бронирования без вычислимого интервала не блокируют проживание
func (r *Reservation) OverlapsStay(checkIn, checkOut time.Time) bool {
	start, end, ok := r.Interval()
	if !ok {
		return false
	}
	return Overlaps(start, end, checkIn, checkOut)
}

// NormalizedTime время бронирования в виде HH:mm ("9:00" -> "09:00")
func (r *Reservation) NormalizedTime() (types.TimeString, bool) {
	if r.Time == nil {
		return types.TimeString{}, false
	}
	ts, err := types.NewTimeStringFromString(*r.Time)
	if err != nil {
		return types.TimeString{}, false
	}
	return ts, true
}

// Party количество гостей ресторанного бронирования, 0 если не указано
func (r *Reservation) Party() int {
	if r.PartySize == nil || *r.PartySize < 0 {
		return 0
	}
	return *r.PartySize
}

// Amount сумма бронирования, 0 если не указана
func (r *Reservation) Amount() decimal.Decimal {
	if r.TotalAmount == nil {
		return decimal.Zero
	}
	return *r.TotalAmount
}

// IsCancelled возвращает true для отмененного бронирования
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsConfirmed возвращает true для подтвержденного бронирования
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// HoldsCapacity возвращает true, если бронирование занимает места в слоте
func (r *Reservation) HoldsCapacity() bool {
	return r.Status == StatusConfirmed || r.Status == StatusPending
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationFilter фильтр выборки бронирований
type ReservationFilter struct {
	BusinessID   uuid.UUID           // Обязательный параметр
	BusinessType *BusinessType       // Тип бизнеса (опционально)
	DateFrom     *time.Time          // date >= DateFrom (опционально)
	DateTo       *time.Time          // date < DateTo (опционально)
	Statuses     []ReservationStatus // Пустой список - любые статусы

	// Статусы, которые нужно исключить (опционально)
	ExcludeStatuses []ReservationStatus
}
