package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	watercraftRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/watercraft"
)

// Service сервис справочника плавсредств
type Service struct {
	repo   WatercraftRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(repo WatercraftRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListWatercraft возвращает все типы плавсредств
func (s *Service) ListWatercraft(ctx context.Context) ([]*domain.Watercraft, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListWatercraft: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWatercraft - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// GetWatercraft возвращает тип плавсредства по ID
func (s *Service) GetWatercraft(ctx context.Context, id int64) (*domain.Watercraft, error) {
	wc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, watercraftRepo.ErrWatercraftNotFound) {
			s.logger.Warn("GetWatercraft: watercraft id=%d not found", id)
			return nil, ErrWatercraftNotFound
		}
		s.logger.Error("GetWatercraft: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetWatercraft - repository error: %v", ErrInternal, err)
	}
	return wc, nil
}
