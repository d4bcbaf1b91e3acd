package domain

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics показатели ресторана за период
type DashboardMetrics struct {
	ReservationsTotales int
	ChiffreAffaires     decimal.Decimal
	TauxRemplissage     float64
}

// DayCount количество бронирований за день
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// PeriodSlots количество слотов за период: days * len(horaires) * (60 / frequence)
// Дробное значение сохраняется
func PeriodSlots(days, horaires, frequency int) float64 {
	if days <= 0 || horaires <= 0 || frequency <= 0 {
		return 0
	}
	return float64(days) * float64(horaires) * (60.0 / float64(frequency))
}

// FillRate заполняемость гостями, округленная до сотых
// 0, если вместимость не ограничена или знаменатель нулевой
func FillRate(guests int, slots float64, capacity Capacity) float64 {
	if capacity.Unlimited {
		return 0
	}
	denominator := slots * float64(capacity.Value)
	if denominator <= 0 {
		return 0
	}
	return math.Round(float64(guests)/denominator*100) / 100
}

// CountByDay группирует бронирования по дате, результат отсортирован по возрастанию
func CountByDay(reservations []*Reservation) []DayCount {
	counts := make(map[string]int)
	for _, r := range reservations {
		if r.Date == nil || r.Date.IsZero() {
			continue
		}
		counts[r.Date.Format(DateFormat)]++
	}

	result := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		result = append(result, DayCount{Date: date, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// MonthRange границы месяца [first, firstOfNext)
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, 0)
}
