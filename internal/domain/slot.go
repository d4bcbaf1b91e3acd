package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Slot слот ресторана на конкретную дату
type Slot struct {
	Time      types.TimeString
	Available bool
	Booked    int // гостей уже забронировано на это время
}

// BookedGuests суммирует гостей по нормализованному времени слота
// Учитываются только бронирования, занимающие места (confirmed, pending)
func BookedGuests(reservations []*Reservation) map[types.TimeString]int {
	booked := make(map[types.TimeString]int)
	for _, r := range reservations {
		if !r.HoldsCapacity() {
			continue
		}
		ts, ok := r.NormalizedTime()
		if !ok {
			continue
		}
		booked[ts] += r.Party()
	}
	return booked
}

// ResolveSlots отмечает доступность каждого слота для компании из partySize гостей
func ResolveSlots(times []types.TimeString, booked map[types.TimeString]int, capacity Capacity, partySize int) []Slot {
	slots := make([]Slot, len(times))
	for i, t := range times {
		slots[i] = Slot{
			Time:      t,
			Booked:    booked[t],
			Available: capacity.Allows(booked[t] + partySize),
		}
	}
	return slots
}
