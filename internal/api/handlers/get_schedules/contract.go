package get_schedules

import (
	"context"

	getScheduleOverview "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/get_schedule_overview"
)

type GetScheduleOverviewUseCase interface {
	Execute(ctx context.Context) (*getScheduleOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
