package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ExcursionBooking/internal/conflicts"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	watercraftRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/watercraft"
)

const operationCreate = "create"

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, watercraft=%d, unit=%d, seat=%d, time=%s-%s",
		req.Date.Format(domain.DateFormat), req.WatercraftTypeID, req.UnitIndex, req.SeatIndex, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservation(operationCreate, "invalid")
		return nil, err
	}

	// 2. Получаем плавсредство
	wc, err := uc.watercraftRepo.GetByID(ctx, req.WatercraftTypeID)
	if err != nil {
		if errors.Is(err, watercraftRepo.ErrWatercraftNotFound) {
			uc.logger.Warn("CreateReservation: watercraft id=%d not found", req.WatercraftTypeID)
			return nil, ErrWatercraftNotFound
		}
		uc.logger.Error("CreateReservation: failed to get watercraft id=%d: %v", req.WatercraftTypeID, err)
		return nil, fmt.Errorf("%w: failed to get watercraft: %v", ErrInternal, err)
	}

	// 3. Проверяем дату и рабочее окно
	window, err := uc.resolveWindow(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем, что диапазон лежит на сетке слотов
	if err := domain.ValidateSlotRange(wc, window, req.UnitIndex, req.SeatIndex, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: invalid slot range: %v", err)
		uc.metrics.IncReservation(operationCreate, "invalid")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservation := &domain.Reservation{
		Date:             domain.DateOnly(req.Date),
		WatercraftTypeID: wc.ID,
		WatercraftType:   wc.Kind,
		UnitIndex:        req.UnitIndex,
		SeatIndex:        req.SeatIndex,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		FirstName:        strings.TrimSpace(req.FirstName),
	}
	if req.Identity != nil {
		userID := req.Identity.UserID
		reservation.UserID = &userID
	}

	var result *domain.Reservation

	// 5. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Все бронирования на дату с блокировкой (FOR UPDATE)
		date := reservation.Date
		existing, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{Date: &date})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 5.2. Проверяем конфликты места и клиента
		if err := conflicts.Check(candidateOf(reservation), existing); err != nil {
			uc.logger.Warn("CreateReservation: %v", err)
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}

		// 5.3. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.recordFailure(err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)
	uc.metrics.IncReservation(operationCreate, "success")

	// 6. Сбрасываем кэш и публикуем событие, ошибки не влияют на результат
	if err := uc.cache.InvalidateDate(ctx, result.Date); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate cache for %s: %v", result.Date.Format(domain.DateFormat), err)
	}
	if err := uc.publisher.PublishReservationCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish event for reservation id=%d: %v", result.ID, err)
	}

	return fromDomain(result), nil
}

func (uc *UseCase) resolveWindow(ctx context.Context, req *Request) (domain.OperatingWindow, error) {
	bookable, err := uc.schedule.IsBookable(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check date %s: %v", req.Date.Format(domain.DateFormat), err)
		return domain.OperatingWindow{}, fmt.Errorf("%w: failed to check date: %v", ErrInternal, err)
	}
	if !bookable {
		uc.logger.Warn("CreateReservation: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return domain.OperatingWindow{}, ErrDateNotBookable
	}

	window, err := uc.schedule.Window(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get window for %s: %v", req.Date.Format(domain.DateFormat), err)
		return domain.OperatingWindow{}, fmt.Errorf("%w: failed to get operating window: %v", ErrInternal, err)
	}
	if window.IsClosed() {
		uc.logger.Warn("CreateReservation: closed on %s", req.Date.Format(domain.DateFormat))
		return domain.OperatingWindow{}, ErrDateNotBookable
	}

	return window, nil
}

func (uc *UseCase) recordFailure(err error) {
	var seatErr *conflicts.SeatConflictError
	var customerErr *conflicts.CustomerConflictError

	switch {
	case errors.As(err, &seatErr):
		uc.metrics.IncConflict("seat")
		uc.metrics.IncReservation(operationCreate, "conflict")
	case errors.As(err, &customerErr):
		uc.metrics.IncConflict("customer")
		uc.metrics.IncReservation(operationCreate, "conflict")
	default:
		uc.metrics.IncReservation(operationCreate, "error")
	}
}

func candidateOf(r *domain.Reservation) conflicts.Candidate {
	return conflicts.Candidate{
		Date:             r.Date,
		WatercraftTypeID: r.WatercraftTypeID,
		Unit:             r.UnitIndex,
		Seat:             r.SeatIndex,
		Start:            r.StartTime,
		End:              r.EndTime,
		CustomerName:     r.FirstName,
	}
}
