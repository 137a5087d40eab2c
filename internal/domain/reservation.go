package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// Reservation is one seat on one watercraft unit for a contiguous
// half-open [StartTime, EndTime) block on Date. Unit and seat are 0-based.
type Reservation struct {
	ID               int64
	Date             time.Time
	WatercraftTypeID int64
	WatercraftType   WatercraftKind
	UnitIndex        int
	SeatIndex        int
	StartTime        types.TimeString
	EndTime          types.TimeString
	FirstName        string
	UserID           *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps applies the half-open interval test: aS < bE && bS < aE
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// Covers reports whether slot falls inside [StartTime, EndTime)
func (r *Reservation) Covers(slot types.TimeString) bool {
	return !slot.IsBefore(r.StartTime) && slot.IsBefore(r.EndTime)
}

// SameSeat reports whether r holds the given unit and seat
func (r *Reservation) SameSeat(unit, seat int) bool {
	return r.UnitIndex == unit && r.SeatIndex == seat
}

// IsOwnedBy reports whether the reservation was created by userID
func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID != nil && *r.UserID == userID
}

// NormalizeName returns the comparison key for customer names
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ReservationFilter narrows reservation listings. Nil fields are not applied.
type ReservationFilter struct {
	Date             *time.Time
	WatercraftTypeID *int64
	UserID           *uuid.UUID
}

// ValidateSlotRange checks that [start, end) on (unit, seat) fits the watercraft and the slot grid of window
func ValidateSlotRange(wc *Watercraft, window OperatingWindow, unit, seat int, start, end types.TimeString) error {
	if !wc.HasSeat(unit, seat) {
		return ErrSeatOutOfRange
	}
	if !start.IsBefore(end) {
		return ErrEmptyRange
	}
	if !window.IsAligned(start) || !window.IsAligned(end) {
		return ErrOffGrid
	}
	if !window.Contains(start, end) {
		return ErrOutsideWindow
	}
	return nil
}
