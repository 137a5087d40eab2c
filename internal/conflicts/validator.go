// Package conflicts decides whether a candidate reservation may be stored
// next to the reservations that already exist.
package conflicts

import (
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// Candidate is a reservation that has not been stored yet.
// ExcludeID is set when the candidate replaces an existing reservation.
type Candidate struct {
	Date             time.Time
	WatercraftTypeID int64
	Unit             int
	Seat             int
	Start            types.TimeString
	End              types.TimeString
	CustomerName     string
	ExcludeID        *int64
}

// Check returns *SeatConflictError or *CustomerConflictError, seat first.
// Intervals are half-open, so back-to-back reservations never conflict.
func Check(c Candidate, existing []*domain.Reservation) error {
	if r := findSeatConflict(c, existing); r != nil {
		return &SeatConflictError{Existing: r}
	}
	if r := findCustomerConflict(c, existing); r != nil {
		return &CustomerConflictError{Existing: r}
	}
	return nil
}

func findSeatConflict(c Candidate, existing []*domain.Reservation) *domain.Reservation {
	for _, r := range existing {
		if skip(c, r) {
			continue
		}
		if r.WatercraftTypeID != c.WatercraftTypeID || !r.SameSeat(c.Unit, c.Seat) {
			continue
		}
		if domain.Overlaps(c.Start, c.End, r.StartTime, r.EndTime) {
			return r
		}
	}
	return nil
}

func findCustomerConflict(c Candidate, existing []*domain.Reservation) *domain.Reservation {
	name := domain.NormalizeName(c.CustomerName)
	if name == "" {
		return nil
	}

	for _, r := range existing {
		if skip(c, r) {
			continue
		}
		if domain.NormalizeName(r.FirstName) != name {
			continue
		}
		if domain.Overlaps(c.Start, c.End, r.StartTime, r.EndTime) {
			return r
		}
	}
	return nil
}

func skip(c Candidate, r *domain.Reservation) bool {
	if r == nil || !domain.SameDate(r.Date, c.Date) {
		return true
	}
	return c.ExcludeID != nil && r.ID == *c.ExcludeID
}
