package watercraft

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/psqlbuilder"
)

var columns = []string{"id", "kind", "capacity", "quantity"}

// Repository репозиторий справочника плавсредств
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория плавсредств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все типы плавсредств по возрастанию ID
func (r *Repository) List(ctx context.Context) ([]*domain.Watercraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("watercraft_types").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Watercraft, 0)
	for rows.Next() {
		wc, err := scanWatercraft(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, wc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает тип плавсредства по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Watercraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("watercraft_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	wc, err := scanWatercraft(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWatercraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan watercraft: %v", ErrScanRow, err)
	}

	return wc, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanWatercraft(s scanner) (*domain.Watercraft, error) {
	var (
		wc       domain.Watercraft
		kind     string
		quantity sql.NullInt64
	)

	if err := s.Scan(&wc.ID, &kind, &wc.Capacity, &quantity); err != nil {
		return nil, err
	}

	parsed, err := domain.ParseWatercraftKind(kind)
	if err != nil {
		return nil, err
	}
	wc.Kind = parsed

	// Отсутствующее количество означает одну единицу
	wc.Quantity = domain.DefaultUnitQuantity
	if quantity.Valid && quantity.Int64 > 0 {
		wc.Quantity = int(quantity.Int64)
	}

	return &wc, nil
}
