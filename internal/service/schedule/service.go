package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/config"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/schedule"
)

// Service отвечает на вопрос "когда открыто": дата -> рабочее окно
// Приоритет: запись в daily_schedules -> правило дня недели из конфигурации -> закрыто
type Service struct {
	repo   ScheduleRepository
	rules  *config.ScheduleRules
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo ScheduleRepository, rules *config.ScheduleRules, logger Logger) *Service {
	return &Service{
		repo:   repo,
		rules:  rules,
		logger: logger,
	}
}

// Location часовой пояс площадки
func (s *Service) Location() *time.Location {
	return s.rules.Location
}

// Window возвращает рабочее окно на дату
func (s *Service) Window(ctx context.Context, date time.Time) (domain.OperatingWindow, error) {
	stored, err := s.repo.GetByDate(ctx, date)
	if err == nil {
		return stored.Window, nil
	}
	if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Error("Window: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return domain.OperatingWindow{}, fmt.Errorf("%w: Window - repository error: %v", ErrInternal, err)
	}

	return s.weekdayWindow(date), nil
}

func (s *Service) weekdayWindow(date time.Time) domain.OperatingWindow {
	// День недели считаем по календарной дате в поясе площадки
	y, m, d := date.Date()
	weekday := time.Date(y, m, d, 12, 0, 0, 0, s.rules.Location).Weekday()

	if window, ok := s.rules.Weekly[weekday]; ok {
		return window
	}
	return domain.ClosedWindow()
}

// IsBookable сообщает, открыта ли дата для бронирования
func (s *Service) IsBookable(ctx context.Context, date time.Time) (bool, error) {
	for _, d := range s.rules.Dates {
		if domain.SameDate(d, date) {
			return true, nil
		}
	}

	_, err := s.repo.GetByDate(ctx, date)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		return false, nil
	}

	s.logger.Error("IsBookable: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
	return false, fmt.Errorf("%w: IsBookable - repository error: %v", ErrInternal, err)
}

// Days возвращает все бронируемые даты с окнами, по возрастанию
// Объединяет даты из конфигурации и записи daily_schedules
func (s *Service) Days(ctx context.Context) ([]domain.DailySchedule, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Days: repository error: %v", err)
		return nil, fmt.Errorf("%w: Days - repository error: %v", ErrInternal, err)
	}

	byDate := make(map[string]domain.DailySchedule, len(s.rules.Dates)+len(stored))
	for _, d := range s.rules.Dates {
		key := d.Format(domain.DateFormat)
		byDate[key] = domain.DailySchedule{Date: toUTCDate(d), Window: s.weekdayWindow(d)}
	}
	for _, st := range stored {
		key := st.Date.Format(domain.DateFormat)
		byDate[key] = domain.DailySchedule{ID: st.ID, Date: toUTCDate(st.Date), Window: st.Window}
	}

	days := make([]domain.DailySchedule, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	s.logger.Info("Days: %d bookable dates", len(days))
	return days, nil
}

// toUTCDate приводит календарную дату к полуночи UTC, как её разбирают хендлеры
func toUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
