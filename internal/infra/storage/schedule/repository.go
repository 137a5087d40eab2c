package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/psqlbuilder"
)

var columns = []string{"id", "date", "start_time", "end_time"}

// Repository репозиторий расписаний на конкретные даты
// Запись в daily_schedules переопределяет правило дня недели из конфигурации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает расписание на дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DailySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("daily_schedules").
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if errors.Is(err, ErrInvalidWindow) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// List возвращает все расписания по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]*domain.DailySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("daily_schedules").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.DailySchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			if errors.Is(err, ErrInvalidWindow) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(s scanner) (*domain.DailySchedule, error) {
	var schedule domain.DailySchedule

	err := s.Scan(
		&schedule.ID,
		&schedule.Date,
		&schedule.Window.Start,
		&schedule.Window.End,
	)
	if err != nil {
		return nil, err
	}

	if err := schedule.Window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWindow, schedule.Date.Format(domain.DateFormat), err)
	}

	return &schedule, nil
}
