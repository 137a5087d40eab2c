package update_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// WatercraftRepository интерфейс справочника плавсредств
type WatercraftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Watercraft, error)
}

// ScheduleService возвращает рабочее окно на дату
type ScheduleService interface {
	Window(ctx context.Context, date time.Time) (domain.OperatingWindow, error)
	IsBookable(ctx context.Context, date time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache кэш сетки доступности
type AvailabilityCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// EventPublisher публикует события о бронированиях
type EventPublisher interface {
	PublishReservationUpdated(ctx context.Context, reservation *domain.Reservation) error
}

// Metrics счётчики исходов бронирования
type Metrics interface {
	IncReservation(operation, outcome string)
	IncConflict(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
