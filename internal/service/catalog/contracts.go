package catalog

import (
	"context"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// WatercraftRepository интерфейс справочника плавсредств
type WatercraftRepository interface {
	List(ctx context.Context) ([]*domain.Watercraft, error)
	GetByID(ctx context.Context, id int64) (*domain.Watercraft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
