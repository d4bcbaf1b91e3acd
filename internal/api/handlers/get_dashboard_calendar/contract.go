package get_dashboard_calendar

import (
	"context"

	getDashboardCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_calendar"
)

type GetDashboardCalendarUseCase interface {
	Execute(ctx context.Context, req *getDashboardCalendar.Request) (*getDashboardCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
