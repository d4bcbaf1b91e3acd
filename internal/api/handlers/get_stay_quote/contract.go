package get_stay_quote

import (
	"context"

	getStayQuote "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_stay_quote"
)

type GetStayQuoteUseCase interface {
	Execute(ctx context.Context, req *getStayQuote.Request) (*getStayQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
