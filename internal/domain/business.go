package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBusinessType возвращается для неизвестного типа бизнеса
var ErrUnknownBusinessType = errors.New("domain: unknown business type")

// BusinessType тип бизнеса, к которому относится бронирование
type BusinessType string

const (
	BusinessHotel      BusinessType = "hotel"
	BusinessRestaurant BusinessType = "restaurant"
	BusinessSalon      BusinessType = "salon"
)

// ParseBusinessType разбирает тип бизнеса без учета регистра
func ParseBusinessType(s string) (BusinessType, error) {
	switch bt := BusinessType(strings.ToLower(strings.TrimSpace(s))); bt {
	case BusinessHotel, BusinessRestaurant, BusinessSalon:
		return bt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBusinessType, s)
	}
}

// ResourceLabel название бронируемого ресурса для логов и ответов
func (t BusinessType) ResourceLabel() string {
	switch t {
	case BusinessHotel:
		return "room"
	case BusinessRestaurant:
		return "table"
	case BusinessSalon:
		return "service"
	default:
		return "unknown"
	}
}
