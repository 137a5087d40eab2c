package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ExcursionBooking/internal/service/reservations/models"
)

const operationDelete = "delete"

// Service сервис для чтения и удаления бронирований
type Service struct {
	reservationRepo ReservationRepository
	cache           AvailabilityCache
	publisher       EventPublisher
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	cache AvailabilityCache,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		cache:           cache,
		publisher:       publisher,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования с фильтрацией по дате, плавсредству и пользователю
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	list, err := s.reservationRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Delete удаляет бронирование
// Удалять может только создатель бронирования или администратор,
// даже если хранилище позволило бы удаление
func (s *Service) Delete(ctx context.Context, id int64, identity *domain.Identity) error {
	if identity == nil {
		s.logger.Warn("Delete: anonymous attempt to delete reservation id=%d", id)
		s.metrics.IncReservation(operationDelete, "denied")
		return ErrAccessDenied
	}

	s.logger.Info("Delete: deleting reservation id=%d by user=%s", id, identity.UserID)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		s.metrics.IncReservation(operationDelete, "error")
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if !identity.CanManage(reservation) {
		s.logger.Warn("Delete: access denied for user=%s to reservation id=%d", identity.UserID, id)
		s.metrics.IncReservation(operationDelete, "denied")
		return ErrAccessDenied
	}

	// Удаляем бронирование
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		s.metrics.IncReservation(operationDelete, "error")
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	s.metrics.IncReservation(operationDelete, "success")

	if err := s.cache.InvalidateDate(ctx, reservation.Date); err != nil {
		s.logger.Warn("Delete: failed to invalidate cache for %s: %v", reservation.Date.Format(domain.DateFormat), err)
	}
	if err := s.publisher.PublishReservationDeleted(ctx, reservation); err != nil {
		s.logger.Warn("Delete: failed to publish event for reservation id=%d: %v", id, err)
	}

	return nil
}
