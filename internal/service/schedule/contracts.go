package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний на даты
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailySchedule, error)
	List(ctx context.Context) ([]*domain.DailySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
