package list_watercraft

import (
	"context"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

type CatalogService interface {
	ListWatercraft(ctx context.Context) ([]*domain.Watercraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
