package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ExcursionBooking/internal/conflicts"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/reservation"
	watercraftRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/watercraft"
)

const operationUpdate = "update"

// UseCase use case для изменения бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	watercraftRepo  WatercraftRepository
	schedule        ScheduleService
	txManager       TransactionManager
	cache           AvailabilityCache
	publisher       EventPublisher
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	watercraftRepo WatercraftRepository,
	schedule ScheduleService,
	txManager TransactionManager,
	cache AvailabilityCache,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		watercraftRepo:  watercraftRepo,
		schedule:        schedule,
		txManager:       txManager,
		cache:           cache,
		publisher:       publisher,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, date=%s, watercraft=%d, unit=%d, seat=%d, time=%s-%s",
		req.ID, req.Date.Format(domain.DateFormat), req.WatercraftTypeID, req.UnitIndex, req.SeatIndex, req.StartTime, req.EndTime)

	// 1. Изменять может только авторизованный пользователь
	if req.Identity == nil {
		uc.metrics.IncReservation(operationUpdate, "denied")
		return nil, ErrAccessDenied
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		uc.metrics.IncReservation(operationUpdate, "invalid")
		return nil, err
	}

	// 3. Получаем текущее бронирование и проверяем права
	current, err := uc.reservationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}
	if !req.Identity.CanManage(current) {
		uc.logger.Warn("UpdateReservation: user %s is not allowed to edit reservation id=%d", req.Identity.UserID, req.ID)
		uc.metrics.IncReservation(operationUpdate, "denied")
		return nil, ErrAccessDenied
	}

	// 4. Получаем плавсредство
	wc, err := uc.watercraftRepo.GetByID(ctx, req.WatercraftTypeID)
	if err != nil {
		if errors.Is(err, watercraftRepo.ErrWatercraftNotFound) {
			return nil, ErrWatercraftNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get watercraft id=%d: %v", req.WatercraftTypeID, err)
		return nil, fmt.Errorf("%w: failed to get watercraft: %v", ErrInternal, err)
	}

	// 5. Проверяем дату и сетку слотов
	window, err := uc.resolveWindow(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateSlotRange(wc, window, req.UnitIndex, req.SeatIndex, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("UpdateReservation: invalid slot range: %v", err)
		uc.metrics.IncReservation(operationUpdate, "invalid")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated := *current
	updated.Date = domain.DateOnly(req.Date)
	updated.WatercraftTypeID = wc.ID
	updated.WatercraftType = wc.Kind
	updated.UnitIndex = req.UnitIndex
	updated.SeatIndex = req.SeatIndex
	updated.StartTime = req.StartTime
	updated.EndTime = req.EndTime
	updated.FirstName = strings.TrimSpace(req.FirstName)

	var result *domain.Reservation

	// 6. Проверка конфликтов без учёта самого бронирования и запись
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		date := updated.Date
		existing, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{Date: &date})
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if err := conflicts.Check(candidateOf(&updated), existing); err != nil {
			uc.logger.Warn("UpdateReservation: %v", err)
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}

		saved, err := uc.reservationRepo.Update(txCtx, &updated)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		uc.recordFailure(err)
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)
	uc.metrics.IncReservation(operationUpdate, "success")

	// 7. Сбрасываем кэш старой и новой даты, публикуем событие
	uc.invalidate(ctx, current)
	if !domain.SameDate(current.Date, result.Date) {
		uc.invalidate(ctx, result)
	}
	if err := uc.publisher.PublishReservationUpdated(ctx, result); err != nil {
		uc.logger.Warn("UpdateReservation: failed to publish event for reservation id=%d: %v", result.ID, err)
	}

	return fromDomain(result), nil
}

func (uc *UseCase) resolveWindow(ctx context.Context, req *Request) (domain.OperatingWindow, error) {
	bookable, err := uc.schedule.IsBookable(ctx, req.Date)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to check date %s: %v", req.Date.Format(domain.DateFormat), err)
		return domain.OperatingWindow{}, fmt.Errorf("%w: failed to check date: %v", ErrInternal, err)
	}
	if !bookable {
		return domain.OperatingWindow{}, ErrDateNotBookable
	}

	window, err := uc.schedule.Window(ctx, req.Date)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to get window for %s: %v", req.Date.Format(domain.DateFormat), err)
		return domain.OperatingWindow{}, fmt.Errorf("%w: failed to get operating window: %v", ErrInternal, err)
	}
	if window.IsClosed() {
		return domain.OperatingWindow{}, ErrDateNotBookable
	}

	return window, nil
}

func (uc *UseCase) invalidate(ctx context.Context, r *domain.Reservation) {
	if err := uc.cache.InvalidateDate(ctx, r.Date); err != nil {
		uc.logger.Warn("UpdateReservation: failed to invalidate cache for %s: %v", r.Date.Format(domain.DateFormat), err)
	}
}

func (uc *UseCase) recordFailure(err error) {
	var seatErr *conflicts.SeatConflictError
	var customerErr *conflicts.CustomerConflictError

	switch {
	case errors.As(err, &seatErr):
		uc.metrics.IncConflict("seat")
		uc.metrics.IncReservation(operationUpdate, "conflict")
	case errors.As(err, &customerErr):
		uc.metrics.IncConflict("customer")
		uc.metrics.IncReservation(operationUpdate, "conflict")
	case errors.Is(err, ErrReservationNotFound):
		uc.metrics.IncReservation(operationUpdate, "not_found")
	default:
		uc.metrics.IncReservation(operationUpdate, "error")
	}
}

func candidateOf(r *domain.Reservation) conflicts.Candidate {
	id := r.ID
	return conflicts.Candidate{
		Date:             r.Date,
		WatercraftTypeID: r.WatercraftTypeID,
		Unit:             r.UnitIndex,
		Seat:             r.SeatIndex,
		Start:            r.StartTime,
		End:              r.EndTime,
		CustomerName:     r.FirstName,
		ExcludeID:        &id,
	}
}
