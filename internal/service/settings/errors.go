package settings

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда настройки ресторана не найдены
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
