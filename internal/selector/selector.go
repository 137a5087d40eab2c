// Package selector tracks a drag gesture over the availability grid and turns
// it into a candidate time range within a single (unit, seat) column.
package selector

import (
	"fmt"

	"github.com/m04kA/SMC-ExcursionBooking/internal/availability"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// State of the selector
type State int

const (
	StateIdle State = iota
	StateDragging
	StatePendingConfirmation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StatePendingConfirmation:
		return "pending_confirmation"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Range is a normalized selection ready to be submitted. End is exclusive.
type Range struct {
	Unit  int
	Seat  int
	Start types.TimeString
	End   types.TimeString
}

// Selector is not safe for concurrent use; it is driven by a single event loop.
type Selector struct {
	index *availability.Index
	state State

	anchorUnit int
	anchorSeat int
	anchorIdx  int
	currentIdx int
}

// New returns an idle selector over index
func New(index *availability.Index) *Selector {
	return &Selector{index: index, state: StateIdle}
}

func (s *Selector) State() State {
	return s.state
}

// Index returns the grid the selector works on
func (s *Selector) Index() *availability.Index {
	return s.index
}

// PointerDown starts a drag on a free cell. Booked or unknown cells are ignored.
func (s *Selector) PointerDown(unit, seat int, slot types.TimeString) bool {
	if s.state != StateIdle {
		return false
	}

	wc := s.index.Watercraft()
	idx := s.index.SlotIndex(slot)
	if idx < 0 || !wc.HasSeat(unit, seat) {
		return false
	}
	if s.index.IsBooked(unit, seat, slot) {
		return false
	}

	s.state = StateDragging
	s.anchorUnit = unit
	s.anchorSeat = seat
	s.anchorIdx = idx
	s.currentIdx = idx
	return true
}

// PointerEnter extends the drag inside the anchor's column only
func (s *Selector) PointerEnter(unit, seat int, slot types.TimeString) bool {
	if s.state != StateDragging {
		return false
	}
	if unit != s.anchorUnit || seat != s.anchorSeat {
		return false
	}

	idx := s.index.SlotIndex(slot)
	if idx < 0 {
		return false
	}

	s.currentIdx = idx
	return true
}

// PointerUp finalizes the drag. It is a global release and needs no cell.
func (s *Selector) PointerUp() bool {
	if s.state != StateDragging {
		return false
	}

	lo, hi := s.bounds()
	s.anchorIdx, s.currentIdx = lo, hi
	s.state = StatePendingConfirmation
	return true
}

// Cancel discards the selection
func (s *Selector) Cancel() {
	s.reset()
}

func (s *Selector) reset() {
	s.state = StateIdle
	s.anchorUnit, s.anchorSeat = 0, 0
	s.anchorIdx, s.currentIdx = 0, 0
}

// Reload swaps the grid after the reservation list changed and returns to Idle
func (s *Selector) Reload(index *availability.Index) {
	s.index = index
	s.reset()
}

func (s *Selector) bounds() (int, int) {
	if s.anchorIdx <= s.currentIdx {
		return s.anchorIdx, s.currentIdx
	}
	return s.currentIdx, s.anchorIdx
}

// HighlightedKeys returns "unit-seat-HH:MM" keys of the contiguous selection
func (s *Selector) HighlightedKeys() []string {
	if s.state == StateIdle {
		return nil
	}

	lo, hi := s.bounds()
	keys := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		slot, ok := s.index.SlotAt(i)
		if !ok {
			break
		}
		keys = append(keys, CellKey(s.anchorUnit, s.anchorSeat, slot))
	}
	return keys
}

// Range returns the pending selection. End is the boundary after the last
// selected slot, or the window end when the last slot is the final one.
func (s *Selector) Range() (Range, bool) {
	if s.state != StatePendingConfirmation {
		return Range{}, false
	}

	lo, hi := s.bounds()
	start, ok := s.index.SlotAt(lo)
	if !ok {
		return Range{}, false
	}
	end, ok := s.index.SlotEnd(hi)
	if !ok {
		return Range{}, false
	}

	return Range{Unit: s.anchorUnit, Seat: s.anchorSeat, Start: start, End: end}, true
}

// CellKey identifies a grid cell
func CellKey(unit, seat int, slot types.TimeString) string {
	return fmt.Sprintf("%d-%d-%s", unit, seat, slot)
}
