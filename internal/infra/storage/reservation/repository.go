package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/psqlbuilder"
)

// В БД номера единиц и мест хранятся с 1, в домене с 0
// Конвертация выполняется только в этом пакете
const storageOffset = 1

var selectColumns = []string{
	"r.id",
	"r.date",
	"r.watercraft_type_id",
	"w.kind",
	"r.unit_number",
	"r.seat_number",
	"r.start_time",
	"r.end_time",
	"r.first_name",
	"r.user_id",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("reservations r").
		Join("watercraft_types w ON w.id = r.watercraft_type_id")
}

// List получает бронирования с фильтрацией по дате, плавсредству и пользователю
// Если в контексте активная транзакция и задана дата, строки дня блокируются (FOR UPDATE),
// чтобы параллельное создание на ту же дату ждало завершения проверки конфликтов
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := baseSelect()

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.date": domain.DateOnly(*filter.Date)})
	}
	if filter.WatercraftTypeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.watercraft_type_id": *filter.WatercraftTypeID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.user_id": *filter.UserID})
	}

	selectBuilder = selectBuilder.OrderBy("r.date ASC", "r.start_time ASC", "r.id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"date",
			"watercraft_type_id",
			"unit_number",
			"seat_number",
			"start_time",
			"end_time",
			"first_name",
			"user_id",
		).
		Values(
			domain.DateOnly(reservation.Date),
			reservation.WatercraftTypeID,
			reservation.UnitIndex+storageOffset,
			reservation.SeatIndex+storageOffset,
			reservation.StartTime,
			reservation.EndTime,
			reservation.FirstName,
			nullUUID(reservation.UserID),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// Update перезаписывает изменяемые поля бронирования
// Владелец (user_id) и дата создания не меняются
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("date", domain.DateOnly(reservation.Date)).
		Set("watercraft_type_id", reservation.WatercraftTypeID).
		Set("unit_number", reservation.UnitIndex+storageOffset).
		Set("seat_number", reservation.SeatIndex+storageOffset).
		Set("start_time", reservation.StartTime).
		Set("end_time", reservation.EndTime).
		Set("first_name", reservation.FirstName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var (
		reservation          domain.Reservation
		kind                 string
		unitNumber           int
		seatNumber           int
		userID               uuid.NullUUID
		createdAt, updatedAt sql.NullTime
	)

	err := s.Scan(
		&reservation.ID,
		&reservation.Date,
		&reservation.WatercraftTypeID,
		&kind,
		&unitNumber,
		&seatNumber,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.FirstName,
		&userID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.WatercraftType = domain.WatercraftKind(kind)
	reservation.UnitIndex = unitNumber - storageOffset
	reservation.SeatIndex = seatNumber - storageOffset
	if userID.Valid {
		id := userID.UUID
		reservation.UserID = &id
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
