// Package availability answers which seat slots of a watercraft are taken on a date.
package availability

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

type seatKey struct {
	unit int
	seat int
}

// Index is an immutable view of one watercraft's seats on one date.
// Rebuild it after the reservation list changes.
type Index struct {
	date       time.Time
	watercraft domain.Watercraft
	window     domain.OperatingWindow
	slots      []types.TimeString
	bySeat     map[seatKey][]*domain.Reservation
}

// NewIndex keeps only reservations matching date and watercraft
func NewIndex(
	date time.Time,
	watercraft domain.Watercraft,
	window domain.OperatingWindow,
	reservations []*domain.Reservation,
) *Index {
	idx := &Index{
		date:       domain.DateOnly(date),
		watercraft: watercraft,
		window:     window,
		slots:      window.Slots(),
		bySeat:     make(map[seatKey][]*domain.Reservation),
	}

	for _, r := range reservations {
		if r == nil || r.WatercraftTypeID != watercraft.ID || !domain.SameDate(r.Date, date) {
			continue
		}
		key := seatKey{unit: r.UnitIndex, seat: r.SeatIndex}
		idx.bySeat[key] = append(idx.bySeat[key], r)
	}

	return idx
}

func (i *Index) Date() time.Time {
	return i.date
}

func (i *Index) Watercraft() domain.Watercraft {
	return i.watercraft
}

func (i *Index) Window() domain.OperatingWindow {
	return i.window
}

// Slots returns a copy of the slot start times
func (i *Index) Slots() []types.TimeString {
	out := make([]types.TimeString, len(i.slots))
	copy(out, i.slots)
	return out
}

// reservationAt returns the reservation covering slot on (unit, seat), if any
func (i *Index) reservationAt(unit, seat int, slot types.TimeString) *domain.Reservation {
	for _, r := range i.bySeat[seatKey{unit: unit, seat: seat}] {
		if r.Covers(slot) {
			return r
		}
	}
	return nil
}

// IsBooked reports whether some reservation on (unit, seat) has start <= slot < end
func (i *Index) IsBooked(unit, seat int, slot types.TimeString) bool {
	return i.reservationAt(unit, seat, slot) != nil
}

// OwnerName returns the customer name of the reservation covering the cell
func (i *Index) OwnerName(unit, seat int, slot types.TimeString) (string, bool) {
	r := i.reservationAt(unit, seat, slot)
	if r == nil {
		return "", false
	}
	return r.FirstName, true
}

// ReservationAt exposes the covering reservation for callers that need its id
func (i *Index) ReservationAt(unit, seat int, slot types.TimeString) (*domain.Reservation, bool) {
	r := i.reservationAt(unit, seat, slot)
	return r, r != nil
}

// IsLabelCell reports whether slot is the first slot of a reservation
func (i *Index) IsLabelCell(unit, seat int, slot types.TimeString) bool {
	r := i.reservationAt(unit, seat, slot)
	return r != nil && r.StartTime.Equal(slot)
}

// TotalSeatSlots is slots * units * seats
func (i *Index) TotalSeatSlots() int {
	return len(i.slots) * i.watercraft.Units() * i.watercraft.Seats()
}

// BookedSeatSlots counts booked (unit, seat, slot) triples inside the grid
func (i *Index) BookedSeatSlots() int {
	booked := 0
	for unit := 0; unit < i.watercraft.Units(); unit++ {
		for seat := 0; seat < i.watercraft.Seats(); seat++ {
			for _, slot := range i.slots {
				if i.IsBooked(unit, seat, slot) {
					booked++
				}
			}
		}
	}
	return booked
}

// Percentage is round(100 * free / total) clamped to [0, 100]; 0 for an empty grid
func (i *Index) Percentage() int {
	total := i.TotalSeatSlots()
	if total == 0 {
		return 0
	}

	p := int(math.Round(100 * (1 - float64(i.BookedSeatSlots())/float64(total))))
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// SlotIndex returns the position of slot in the grid or -1
func (i *Index) SlotIndex(slot types.TimeString) int {
	for n, s := range i.slots {
		if s.Equal(slot) {
			return n
		}
	}
	return -1
}

// SlotAt returns the start time of the slot at index n
func (i *Index) SlotAt(n int) (types.TimeString, bool) {
	if n < 0 || n >= len(i.slots) {
		return "", false
	}
	return i.slots[n], true
}

// SlotEnd returns the exclusive end of the slot at index n.
// The last slot ends exactly at the window end.
func (i *Index) SlotEnd(n int) (types.TimeString, bool) {
	if n < 0 || n >= len(i.slots) {
		return "", false
	}
	if n+1 < len(i.slots) {
		return i.slots[n+1], true
	}
	return i.window.End, true
}
