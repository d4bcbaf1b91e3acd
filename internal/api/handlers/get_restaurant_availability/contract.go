package get_restaurant_availability

import (
	"context"

	getRestaurantAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_restaurant_availability"
)

type GetRestaurantAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getRestaurantAvailability.Request) (*getRestaurantAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
