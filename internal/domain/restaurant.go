package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// RestaurantSettings расписание и вместимость ресторана
type RestaurantSettings struct {
	RestaurantID uuid.UUID

	Horaires                 []Horaire
	FrequenceCreneauxMinutes *int

	CapaciteTotale            *int
	Tables                    TableSizes
	CapaciteTheorique         *int
	MaxReservationsParCreneau *int

	Fermetures   []Closure
	JoursOuverts []string // названия дней недели, пустой список - открыто каждый день

	UpdatedAt time.Time
}

// Horaire интервал работы, время в формате HH:mm
type Horaire struct {
	Ouverture string `json:"ouverture"`
	Fermeture string `json:"fermeture"`
}

// Closure период закрытия, даты включительно
type Closure struct {
	Debut time.Time `json:"debut"`
	Fin   time.Time `json:"fin"`
}

// TableSizes количество столов по вместимости
type TableSizes struct {
	Size2 int `json:"size2"`
	Size4 int `json:"size4"`
	Size6 int `json:"size6"`
	Size8 int `json:"size8"`
}

// Seats суммарное количество мест за столами
func (t TableSizes) Seats() int {
	return t.Size2*2 + t.Size4*4 + t.Size6*6 + t.Size8*8
}

// Capacity вместимость; Unlimited=true, если ни одно ограничение не задано
type Capacity struct {
	Value     int
	Unlimited bool
}

// Allows проверяет, помещается ли нужное число гостей
func (c Capacity) Allows(guests int) bool {
	return c.Unlimited || guests <= c.Value
}

// HasFrequency частота задана и кратна MinSlotFrequencyMinutes
func (s *RestaurantSettings) HasFrequency() bool {
	f := s.FrequenceCreneauxMinutes
	return f != nil && *f > 0 && *f%MinSlotFrequencyMinutes == 0
}

// Frequency частота слотов в минутах, 0 если не задана
func (s *RestaurantSettings) Frequency() int {
	if s.FrequenceCreneauxMinutes == nil {
		return 0
	}
	return *s.FrequenceCreneauxMinutes
}

// IsSlotConfigured расписание пригодно для генерации слотов
func (s *RestaurantSettings) IsSlotConfigured() bool {
	return len(s.Horaires) > 0 && s.HasFrequency()
}

// TheoreticalCapacity сохраненная теоретическая вместимость,
// а если она не задана - сумма мест за столами
func (s *RestaurantSettings) TheoreticalCapacity() int {
	if definedCapacity(s.CapaciteTheorique) {
		return *s.CapaciteTheorique
	}
	return s.Tables.Seats()
}

// SlotCapacity вместимость одного слота: min(capaciteTotale, maxReservationsParCreneau)
// Не заданные или неположительные значения не ограничивают
func (s *RestaurantSettings) SlotCapacity() Capacity {
	return minCapacity(s.CapaciteTotale, s.MaxReservationsParCreneau)
}

// MetricsCapacity вместимость для расчета заполняемости:
// min(capaciteTotale, capaciteTheorique, maxReservationsParCreneau)
func (s *RestaurantSettings) MetricsCapacity() Capacity {
	var theoretical *int
	if tc := s.TheoreticalCapacity(); tc > 0 {
		theoretical = &tc
	}
	return minCapacity(s.CapaciteTotale, theoretical, s.MaxReservationsParCreneau)
}

func minCapacity(terms ...*int) Capacity {
	c := Capacity{Unlimited: true}
	for _, t := range terms {
		if !definedCapacity(t) {
			continue
		}
		if c.Unlimited || *t < c.Value {
			c = Capacity{Value: *t}
		}
	}
	return c
}

func definedCapacity(v *int) bool {
	return v != nil && *v > 0
}

// GenerateSlots время начала всех слотов дня
// Для каждого интервала работы: ouverture + k*frequence, пока строго раньше fermeture
// Fermeture "24:00" означает конец суток
// Интервалы с пустым или некорректным временем пропускаются
func (s *RestaurantSettings) GenerateSlots() []types.TimeString {
	freq := s.Frequency()
	if freq <= 0 {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0)
	for _, h := range s.Horaires {
		open, err := types.NewTimeStringFromString(h.Ouverture)
		if err != nil {
			continue
		}
		closeAt, ok := parseClose(h.Fermeture)
		if !ok {
			continue
		}

		for m := open.Minutes(); m < closeAt; m += freq {
			slot, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				break
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// parseClose время закрытия в минутах от начала суток, "24:00" - 1440
func parseClose(s string) (int, bool) {
	if v := strings.TrimSpace(s); v == "24:00" || v == "24:00:00" {
		return 24 * 60, true
	}
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, false
	}
	return t.Minutes(), true
}

// IsClosedOn проверяет, закрыт ли ресторан в указанную дату:
// дата внутри периода закрытия или день недели не входит в JoursOuverts
func (s *RestaurantSettings) IsClosedOn(date time.Time) bool {
	day := DateOnly(date)
	for _, c := range s.Fermetures {
		if c.Debut.IsZero() || c.Fin.IsZero() {
			continue
		}
		from := DateOnly(c.Debut)
		to := DateOnly(c.Fin)
		if !day.Before(from) && !day.After(to) {
			return true
		}
	}

	if len(s.JoursOuverts) == 0 {
		return false
	}
	for _, name := range s.JoursOuverts {
		if wd, ok := ParseWeekday(name); ok && wd == date.Weekday() {
			return false
		}
	}
	return true
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday, "friday": time.Friday,
	"saturday": time.Saturday,

	"dimanche": time.Sunday, "lundi": time.Monday, "mardi": time.Tuesday,
	"mercredi": time.Wednesday, "jeudi": time.Thursday, "vendredi": time.Friday,
	"samedi": time.Saturday,
}

// ParseWeekday разбирает день недели по-английски или по-французски
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
