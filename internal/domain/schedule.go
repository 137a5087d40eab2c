package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// ErrMisalignedWindow is returned for windows whose bounds are not on the slot grid
var ErrMisalignedWindow = errors.New("operating window is not aligned to slot grid")

// OperatingWindow is the half-open [Start, End) range a watercraft may be booked in.
// Start == End means closed.
type OperatingWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// ClosedWindow returns the window of a non-operating day
func ClosedWindow() OperatingWindow {
	return OperatingWindow{Start: "00:00", End: "00:00"}
}

// IsClosed reports whether the window produces no slots
func (w OperatingWindow) IsClosed() bool {
	return !w.Start.IsBefore(w.End)
}

// Validate checks bounds and slot alignment
func (w OperatingWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("window start: %w", err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("window end: %w", err)
	}
	if w.End.IsBefore(w.Start) {
		return fmt.Errorf("window end %s before start %s", w.End, w.Start)
	}
	if w.Start.Minutes()%SlotMinutes != 0 || w.End.Minutes()%SlotMinutes != 0 {
		return fmt.Errorf("%w: %s-%s", ErrMisalignedWindow, w.Start, w.End)
	}
	return nil
}

// Slots returns slot start times from Start in SlotMinutes steps strictly before End
func (w OperatingWindow) Slots() []types.TimeString {
	start, end := w.Start.Minutes(), w.End.Minutes()
	if start < 0 || end <= start {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (end-start)/SlotMinutes)
	for m := start; m < end; m += SlotMinutes {
		ts, err := types.FromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, ts)
	}
	return slots
}

// Contains reports whether [start, end) lies within the window
func (w OperatingWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.Start) && !end.IsAfter(w.End) && start.IsBefore(end)
}

// IsAligned reports whether t sits on the slot grid anchored at Start
func (w OperatingWindow) IsAligned(t types.TimeString) bool {
	diff := t.Minutes() - w.Start.Minutes()
	return t.Minutes() >= 0 && diff%SlotMinutes == 0
}

// DailySchedule is an operating window for a concrete calendar date
type DailySchedule struct {
	ID     int64
	Date   time.Time
	Window OperatingWindow
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate compares calendar dates ignoring the clock
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
