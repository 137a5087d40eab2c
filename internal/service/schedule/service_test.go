package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/internal/config"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/schedule"
)

type fakeRepo struct {
	byDate map[string]*domain.DailySchedule
	err    error
}

func (f *fakeRepo) GetByDate(_ context.Context, date time.Time) (*domain.DailySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byDate[date.Format(domain.DateFormat)]; ok {
		return s, nil
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeRepo) List(context.Context) ([]*domain.DailySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.DailySchedule, 0, len(f.byDate))
	for _, s := range f.byDate {
		out = append(out, s)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func newService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	rules, err := config.Default().Schedule.Build()
	require.NoError(t, err)
	return NewService(repo, rules, nopLogger{})
}

func TestService_Window_WeekdayRules(t *testing.T) {
	svc := newService(t, &fakeRepo{})
	ctx := context.Background()

	tests := []struct {
		date     string
		expected domain.OperatingWindow
	}{
		{"2025-06-21", domain.OperatingWindow{Start: "14:00", End: "18:00"}}, // суббота
		{"2025-06-22", domain.OperatingWindow{Start: "13:00", End: "17:00"}}, // воскресенье
		{"2025-06-23", domain.OperatingWindow{Start: "13:00", End: "17:00"}}, // понедельник
		{"2025-06-24", domain.OperatingWindow{Start: "13:00", End: "17:00"}}, // вторник
		{"2025-06-25", domain.ClosedWindow()},                                // среда
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			window, err := svc.Window(ctx, date(tt.date))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, window)
		})
	}
}

func TestService_Window_StoredOverride(t *testing.T) {
	override := &domain.DailySchedule{ID: 3, Date: date("2025-06-22"), Window: domain.OperatingWindow{Start: "10:00", End: "12:00"}}
	svc := newService(t, &fakeRepo{byDate: map[string]*domain.DailySchedule{"2025-06-22": override}})

	window, err := svc.Window(context.Background(), date("2025-06-22"))

	require.NoError(t, err)
	assert.Equal(t, override.Window, window)
}

func TestService_Window_RepositoryError(t *testing.T) {
	svc := newService(t, &fakeRepo{err: errors.New("db down")})

	_, err := svc.Window(context.Background(), date("2025-06-22"))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_IsBookable(t *testing.T) {
	extra := &domain.DailySchedule{Date: date("2025-06-28"), Window: domain.OperatingWindow{Start: "14:00", End: "18:00"}}
	svc := newService(t, &fakeRepo{byDate: map[string]*domain.DailySchedule{"2025-06-28": extra}})
	ctx := context.Background()

	ok, err := svc.IsBookable(ctx, date("2025-06-23"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsBookable(ctx, date("2025-06-28"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsBookable(ctx, date("2025-07-01"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Days(t *testing.T) {
	extra := &domain.DailySchedule{ID: 9, Date: date("2025-06-28"), Window: domain.OperatingWindow{Start: "14:00", End: "18:00"}}
	override := &domain.DailySchedule{ID: 4, Date: date("2025-06-21"), Window: domain.ClosedWindow()}
	svc := newService(t, &fakeRepo{byDate: map[string]*domain.DailySchedule{
		"2025-06-28": extra,
		"2025-06-21": override,
	}})

	days, err := svc.Days(context.Background())

	require.NoError(t, err)
	require.Len(t, days, 5)
	assert.Equal(t, "2025-06-21", days[0].Date.Format(domain.DateFormat))
	assert.True(t, days[0].Window.IsClosed())
	assert.Equal(t, domain.OperatingWindow{Start: "13:00", End: "17:00"}, days[1].Window)
	assert.Equal(t, "2025-06-28", days[4].Date.Format(domain.DateFormat))
}
