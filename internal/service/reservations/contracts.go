package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// AvailabilityCache кэш сетки доступности
type AvailabilityCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// EventPublisher публикует события о бронированиях
type EventPublisher interface {
	PublishReservationDeleted(ctx context.Context, reservation *domain.Reservation) error
}

// Metrics счётчики исходов операций
type Metrics interface {
	IncReservation(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
