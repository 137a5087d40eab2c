package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/availability"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	availabilityCache "github.com/m04kA/SMC-ExcursionBooking/internal/infra/cache/availability"
	watercraftRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/watercraft"
)

// UseCase use case для получения сетки доступности
type UseCase struct {
	reservationRepo ReservationRepository
	watercraftRepo  WatercraftRepository
	schedule        ScheduleService
	cache           Cache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	watercraftRepo WatercraftRepository,
	schedule ScheduleService,
	cache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		watercraftRepo:  watercraftRepo,
		schedule:        schedule,
		cache:           cache,
		logger:          logger,
	}
}

// Execute возвращает сетку и процент свободных мест, сначала из кэша
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() || req.WatercraftTypeID <= 0 {
		return nil, fmt.Errorf("%w: date and watercraftTypeID are required", ErrInvalidInput)
	}

	key := availabilityCache.GridKey(req.Date, req.WatercraftTypeID)

	// 1. Пробуем кэш, ошибки кэша не критичны
	if data, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.logger.Warn("GetAvailability: cache get failed for %s: %v", key, err)
	} else if ok {
		var cached Response
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		uc.logger.Warn("GetAvailability: broken cache entry %s", key)
	}

	// 2. Строим индекс из хранилища
	idx, err := uc.LoadIndex(ctx, req.Date, req.WatercraftTypeID)
	if err != nil {
		return nil, err
	}
	resp := fromIndex(idx)

	// 3. Кладём в кэш
	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, data); err != nil {
			uc.logger.Warn("GetAvailability: cache set failed for %s: %v", key, err)
		}
	}

	uc.logger.Info("GetAvailability: date=%s, watercraft=%d, percentage=%d",
		resp.Date, req.WatercraftTypeID, resp.Percentage)
	return resp, nil
}

// LoadIndex строит свежий индекс доступности без кэша
func (uc *UseCase) LoadIndex(ctx context.Context, date time.Time, watercraftTypeID int64) (*availability.Index, error) {
	wc, err := uc.watercraftRepo.GetByID(ctx, watercraftTypeID)
	if err != nil {
		if errors.Is(err, watercraftRepo.ErrWatercraftNotFound) {
			return nil, ErrWatercraftNotFound
		}
		uc.logger.Error("LoadIndex: failed to get watercraft id=%d: %v", watercraftTypeID, err)
		return nil, fmt.Errorf("%w: failed to get watercraft: %v", ErrInternal, err)
	}

	window, err := uc.schedule.Window(ctx, date)
	if err != nil {
		uc.logger.Error("LoadIndex: failed to get window for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get operating window: %v", ErrInternal, err)
	}

	day := domain.DateOnly(date)
	id := wc.ID
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{Date: &day, WatercraftTypeID: &id})
	if err != nil {
		uc.logger.Error("LoadIndex: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	return availability.NewIndex(day, *wc, window, reservations), nil
}
