package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// WatercraftRepository интерфейс справочника плавсредств
type WatercraftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Watercraft, error)
}

// ScheduleService возвращает рабочее окно на дату
type ScheduleService interface {
	Window(ctx context.Context, date time.Time) (domain.OperatingWindow, error)
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
