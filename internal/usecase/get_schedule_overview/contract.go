package get_schedule_overview

import (
	"context"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// ScheduleService список бронируемых дат
type ScheduleService interface {
	Days(ctx context.Context) ([]domain.DailySchedule, error)
}

// WatercraftRepository интерфейс справочника плавсредств
type WatercraftRepository interface {
	List(ctx context.Context) ([]*domain.Watercraft, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Cache кэш готовых ответов
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
