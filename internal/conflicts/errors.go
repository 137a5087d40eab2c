package conflicts

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

var (
	// ErrSeatConflict the seat is already taken for an overlapping interval
	ErrSeatConflict = errors.New("conflicts: seat already reserved")

	// ErrCustomerConflict the customer already holds an overlapping reservation
	ErrCustomerConflict = errors.New("conflicts: customer already has a reservation at this time")
)

// SeatConflictError carries the reservation holding the seat
type SeatConflictError struct {
	Existing *domain.Reservation
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("%v: unit %d seat %d %s-%s",
		ErrSeatConflict, e.Existing.UnitIndex+1, e.Existing.SeatIndex+1, e.Existing.StartTime, e.Existing.EndTime)
}

func (e *SeatConflictError) Unwrap() error {
	return ErrSeatConflict
}

// CustomerConflictError describes where the customer is already booked
type CustomerConflictError struct {
	Existing *domain.Reservation
}

// Message is shown to the customer
func (e *CustomerConflictError) Message() string {
	r := e.Existing
	return fmt.Sprintf("You already have a reservation on %s for %s #%d, seat %d from %s to %s",
		r.Date.Format(domain.DateFormat), r.WatercraftType, r.UnitIndex+1, r.SeatIndex+1, r.StartTime, r.EndTime)
}

func (e *CustomerConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCustomerConflict, e.Message())
}

func (e *CustomerConflictError) Unwrap() error {
	return ErrCustomerConflict
}
