package domain

// Ограничения расписания ресторана
const (
	MinSlotFrequencyMinutes = 5
	MinPartySize            = 1
)

// Форматы даты и времени
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// CapacityStatuses статусы, занимающие места в слоте ресторана
var CapacityStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPending,
}

// CancellableStatuses статусы, из которых допускается отмена
var CancellableStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
