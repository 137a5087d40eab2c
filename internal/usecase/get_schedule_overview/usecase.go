package get_schedule_overview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-ExcursionBooking/internal/availability"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	availabilityCache "github.com/m04kA/SMC-ExcursionBooking/internal/infra/cache/availability"
)

// UseCase use case для сводки расписания
type UseCase struct {
	schedule        ScheduleService
	watercraftRepo  WatercraftRepository
	reservationRepo ReservationRepository
	cache           Cache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleService,
	watercraftRepo WatercraftRepository,
	reservationRepo ReservationRepository,
	cache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:        schedule,
		watercraftRepo:  watercraftRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Execute возвращает даты с окнами и процентом свободных мест по каждому плавсредству
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	key := availabilityCache.OverviewKey()

	// 1. Пробуем кэш
	if data, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.logger.Warn("GetScheduleOverview: cache get failed: %v", err)
	} else if ok {
		var cached Response
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		uc.logger.Warn("GetScheduleOverview: broken cache entry")
	}

	// 2. Даты и справочник плавсредств
	days, err := uc.schedule.Days(ctx)
	if err != nil {
		uc.logger.Error("GetScheduleOverview: failed to get days: %v", err)
		return nil, fmt.Errorf("%w: failed to get days: %v", ErrInternal, err)
	}

	fleet, err := uc.watercraftRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetScheduleOverview: failed to list watercraft: %v", err)
		return nil, fmt.Errorf("%w: failed to list watercraft: %v", ErrInternal, err)
	}

	// 3. По каждой дате один запрос бронирований, индексы строим в памяти
	resp := &Response{Days: make([]Day, 0, len(days))}
	for _, d := range days {
		date := d.Date
		reservations, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{Date: &date})
		if err != nil {
			uc.logger.Error("GetScheduleOverview: failed to list reservations for %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		day := Day{
			Date:        date.Format(domain.DateFormat),
			Weekday:     date.Weekday().String(),
			WindowStart: d.Window.Start.String(),
			WindowEnd:   d.Window.End.String(),
			Closed:      d.Window.IsClosed(),
			Watercraft:  make([]WatercraftAvailability, 0, len(fleet)),
		}
		for _, wc := range fleet {
			idx := availability.NewIndex(date, *wc, d.Window, reservations)
			day.Watercraft = append(day.Watercraft, WatercraftAvailability{
				ID:         wc.ID,
				Kind:       string(wc.Kind),
				Percentage: idx.Percentage(),
			})
		}

		resp.Days = append(resp.Days, day)
	}

	// 4. Кладём в кэш
	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, data); err != nil {
			uc.logger.Warn("GetScheduleOverview: cache set failed: %v", err)
		}
	}

	uc.logger.Info("GetScheduleOverview: %d days, %d watercraft types", len(resp.Days), len(fleet))
	return resp, nil
}
