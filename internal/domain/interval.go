package domain

import (
	"math"
	"time"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, касающиеся границами, не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DateOnly обнуляет время, оставляя календарную дату в той же локации
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween количество полных суток между датами (без учета времени)
func DaysBetween(from, to time.Time) int {
	f := DateOnly(from)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, f.Location())
	return int(math.Round(t.Sub(f).Hours() / 24))
}
