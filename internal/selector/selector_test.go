package selector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/internal/availability"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

var sunday = time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)

func speedBoatIndex(reservations ...*domain.Reservation) *availability.Index {
	wc := domain.Watercraft{ID: 2, Kind: domain.KindSpeedBoat, Capacity: 5, Quantity: 1}
	window := domain.OperatingWindow{Start: "13:00", End: "17:00"}
	return availability.NewIndex(sunday, wc, window, reservations)
}

func booked(seat int, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:               1,
		Date:             sunday,
		WatercraftTypeID: 2,
		SeatIndex:        seat,
		StartTime:        types.MustTimeString(start),
		EndTime:          types.MustTimeString(end),
		FirstName:        "Alice",
	}
}

func TestSelector_DragDown(t *testing.T) {
	s := New(speedBoatIndex())

	require.True(t, s.PointerDown(0, 2, "13:00"))
	assert.Equal(t, StateDragging, s.State())
	require.True(t, s.PointerEnter(0, 2, "13:15"))
	require.True(t, s.PointerUp())

	assert.Equal(t, StatePendingConfirmation, s.State())
	assert.Equal(t, []string{"0-2-13:00", "0-2-13:15"}, s.HighlightedKeys())

	rng, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, Range{Unit: 0, Seat: 2, Start: "13:00", End: "13:30"}, rng)
}

func TestSelector_DragUpIsNormalized(t *testing.T) {
	s := New(speedBoatIndex())

	s.PointerDown(0, 1, "13:45")
	s.PointerEnter(0, 1, "13:15")
	s.PointerUp()

	rng, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, types.TimeString("13:15"), rng.Start)
	assert.Equal(t, types.TimeString("14:00"), rng.End)
	assert.Len(t, s.HighlightedKeys(), 3)
}

func TestSelector_PointerDownOnBookedCellIsNoop(t *testing.T) {
	s := New(speedBoatIndex(booked(2, "13:00", "13:30")))

	assert.False(t, s.PointerDown(0, 2, "13:15"))
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.HighlightedKeys())

	assert.True(t, s.PointerDown(0, 2, "13:30"))
}

func TestSelector_PointerDownOutsideGrid(t *testing.T) {
	s := New(speedBoatIndex())

	assert.False(t, s.PointerDown(0, 5, "13:00"))
	assert.False(t, s.PointerDown(1, 0, "13:00"))
	assert.False(t, s.PointerDown(0, 0, "17:00"))
	assert.Equal(t, StateIdle, s.State())
}

func TestSelector_CrossColumnEnterIgnored(t *testing.T) {
	s := New(speedBoatIndex())

	s.PointerDown(0, 2, "13:00")
	assert.False(t, s.PointerEnter(0, 3, "13:30"))
	s.PointerUp()

	rng, _ := s.Range()
	assert.Equal(t, 2, rng.Seat)
	assert.Equal(t, types.TimeString("13:15"), rng.End)
}

func TestSelector_ReleaseOutsideCellFinalizes(t *testing.T) {
	s := New(speedBoatIndex())

	s.PointerDown(0, 0, "14:00")
	s.PointerEnter(0, 0, "14:30")

	assert.True(t, s.PointerUp())
	assert.Equal(t, StatePendingConfirmation, s.State())
}

func TestSelector_LastSlotEndsAtWindowEnd(t *testing.T) {
	s := New(speedBoatIndex())

	s.PointerDown(0, 0, "16:30")
	s.PointerEnter(0, 0, "16:45")
	s.PointerUp()

	rng, ok := s.Range()
	require.True(t, ok)
	assert.Equal(t, types.TimeString("17:00"), rng.End)
}

func TestSelector_Cancel(t *testing.T) {
	s := New(speedBoatIndex())

	s.PointerDown(0, 0, "13:00")
	s.PointerUp()
	s.Cancel()

	assert.Equal(t, StateIdle, s.State())
	_, ok := s.Range()
	assert.False(t, ok)
	assert.Nil(t, s.HighlightedKeys())
}

func TestSelector_IgnoresEventsOutOfOrder(t *testing.T) {
	s := New(speedBoatIndex())

	assert.False(t, s.PointerEnter(0, 0, "13:00"))
	assert.False(t, s.PointerUp())

	s.PointerDown(0, 0, "13:00")
	assert.False(t, s.PointerDown(0, 1, "13:00"))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "pending_confirmation", StatePendingConfirmation.String())
}
