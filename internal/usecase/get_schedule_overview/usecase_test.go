package get_schedule_overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

var (
	saturday = time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	sunday   = saturday.AddDate(0, 0, 1)
)

type fakeSchedule struct{ err error }

func (f fakeSchedule) Days(context.Context) ([]domain.DailySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.DailySchedule{
		{Date: saturday, Window: domain.OperatingWindow{Start: "14:00", End: "18:00"}},
		{Date: sunday, Window: domain.OperatingWindow{Start: "13:00", End: "17:00"}},
	}, nil
}

type fakeWatercraftRepo struct{}

func (fakeWatercraftRepo) List(context.Context) ([]*domain.Watercraft, error) {
	return []*domain.Watercraft{
		{ID: 1, Kind: domain.KindPontoon, Capacity: 8, Quantity: 1},
		{ID: 2, Kind: domain.KindSpeedBoat, Capacity: 5, Quantity: 1},
		{ID: 3, Kind: domain.KindJetSki, Capacity: 2, Quantity: 2},
	}, nil
}

type fakeReservationRepo struct {
	items []*domain.Reservation
	calls int
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.calls++
	out := make([]*domain.Reservation, 0)
	for _, r := range f.items {
		if filter.Date != nil && !domain.SameDate(r.Date, *filter.Date) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type memoryCache struct{ data map[string][]byte }

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	repo := &fakeReservationRepo{items: []*domain.Reservation{{
		ID:               1,
		Date:             sunday,
		WatercraftTypeID: 2,
		WatercraftType:   domain.KindSpeedBoat,
		SeatIndex:        0,
		StartTime:        types.MustTimeString("13:00"),
		EndTime:          types.MustTimeString("14:00"),
		FirstName:        "Alice",
	}}}
	cache := &memoryCache{data: make(map[string][]byte)}
	uc := NewUseCase(fakeSchedule{}, fakeWatercraftRepo{}, repo, cache, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2025-06-21", resp.Days[0].Date)
	assert.Equal(t, "Saturday", resp.Days[0].Weekday)
	assert.Equal(t, "14:00", resp.Days[0].WindowStart)
	for _, wc := range resp.Days[0].Watercraft {
		assert.Equal(t, 100, wc.Percentage)
	}

	sundayFleet := resp.Days[1].Watercraft
	require.Len(t, sundayFleet, 3)
	assert.Equal(t, 100, sundayFleet[0].Percentage)
	assert.Equal(t, "SpeedBoat", sundayFleet[1].Kind)
	assert.Equal(t, 95, sundayFleet[1].Percentage)
	assert.Equal(t, 100, sundayFleet[2].Percentage)

	_, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestExecute_ScheduleError(t *testing.T) {
	uc := NewUseCase(fakeSchedule{err: errors.New("db down")}, fakeWatercraftRepo{}, &fakeReservationRepo{},
		&memoryCache{data: make(map[string][]byte)}, nopLogger{})

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
