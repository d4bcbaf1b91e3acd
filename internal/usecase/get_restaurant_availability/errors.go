package get_restaurant_availability

import "errors"

var (
	// ErrSettingsIncomplete возвращается, когда у ресторана не заданы часы работы или частота слотов
	ErrSettingsIncomplete = errors.New("restaurant settings incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
