package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

var saturday = time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetByDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, date, start_time, end_time FROM daily_schedules WHERE date = \$1`).
		WithArgs(saturday).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), saturday, "14:00:00", "18:00:00"))

	schedule, err := repo.GetByDate(context.Background(), saturday.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, domain.OperatingWindow{Start: "14:00", End: "18:00"}, schedule.Window)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDate_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM daily_schedules`).WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByDate(context.Background(), saturday)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestRepository_GetByDate_RejectsMisalignedWindow(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM daily_schedules`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), saturday, "14:10:00", "18:00:00"))

	_, err := repo.GetByDate(context.Background(), saturday)

	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)

	sunday := saturday.AddDate(0, 0, 1)
	mock.ExpectQuery(`FROM daily_schedules ORDER BY date ASC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), saturday, "14:00:00", "18:00:00").
			AddRow(int64(2), sunday, "00:00:00", "00:00:00"))

	list, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[1].Window.IsClosed())
}
