package get_dashboard_metrics

import (
	"context"

	getDashboardMetrics "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_metrics"
)

type GetDashboardMetricsUseCase interface {
	Execute(ctx context.Context, req *getDashboardMetrics.Request) (*getDashboardMetrics.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
