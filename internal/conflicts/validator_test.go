package conflicts

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/ptr"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

var (
	day      = time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)
	otherDay = time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)
)

const (
	pontoonID   int64 = 1
	speedBoatID int64 = 2
)

func existing(id, wcID int64, kind domain.WatercraftKind, date time.Time, unit, seat int, start, end, name string) *domain.Reservation {
	return &domain.Reservation{
		ID:               id,
		Date:             date,
		WatercraftTypeID: wcID,
		WatercraftType:   kind,
		UnitIndex:        unit,
		SeatIndex:        seat,
		StartTime:        types.MustTimeString(start),
		EndTime:          types.MustTimeString(end),
		FirstName:        name,
	}
}

func candidate(wcID int64, unit, seat int, start, end, name string) Candidate {
	return Candidate{
		Date:             day,
		WatercraftTypeID: wcID,
		Unit:             unit,
		Seat:             seat,
		Start:            types.MustTimeString(start),
		End:              types.MustTimeString(end),
		CustomerName:     name,
	}
}

func TestCheck_NoExisting(t *testing.T) {
	assert.NoError(t, Check(candidate(speedBoatID, 0, 0, "13:00", "13:30", "Alice"), nil))
}

func TestCheck_SeatConflict(t *testing.T) {
	held := existing(1, speedBoatID, domain.KindSpeedBoat, day, 0, 0, "13:00", "13:30", "Alice")

	err := Check(candidate(speedBoatID, 0, 0, "13:15", "13:45", "Bob"), []*domain.Reservation{held})

	require.ErrorIs(t, err, ErrSeatConflict)
	var seatErr *SeatConflictError
	require.True(t, errors.As(err, &seatErr))
	assert.Equal(t, held, seatErr.Existing)
}

func TestCheck_BackToBackIsAllowed(t *testing.T) {
	held := []*domain.Reservation{
		existing(1, speedBoatID, domain.KindSpeedBoat, day, 0, 0, "13:00", "13:30", "Alice"),
	}

	assert.NoError(t, Check(candidate(speedBoatID, 0, 0, "13:30", "14:00", "Bob"), held))
	assert.NoError(t, Check(candidate(speedBoatID, 0, 0, "12:30", "13:00", "Bob"), held))
	assert.NoError(t, Check(candidate(speedBoatID, 1, 0, "13:30", "14:00", "Alice"), held))
}

func TestCheck_SameSeatOtherWatercraftOrDate(t *testing.T) {
	held := []*domain.Reservation{
		existing(1, pontoonID, domain.KindPontoon, day, 0, 0, "13:00", "13:30", "Alice"),
		existing(2, speedBoatID, domain.KindSpeedBoat, otherDay, 0, 0, "13:00", "13:30", "Carol"),
	}

	assert.NoError(t, Check(candidate(speedBoatID, 0, 0, "13:00", "13:30", "Bob"), held))
}

func TestCheck_CustomerConflictCaseInsensitive(t *testing.T) {
	held := existing(1, pontoonID, domain.KindPontoon, day, 0, 3, "14:00", "15:00", "Alice")

	err := Check(candidate(speedBoatID, 0, 1, "14:30", "15:00", "  aLiCe "), []*domain.Reservation{held})

	require.ErrorIs(t, err, ErrCustomerConflict)
	var custErr *CustomerConflictError
	require.True(t, errors.As(err, &custErr))
	assert.Equal(t, "You already have a reservation on 2025-06-22 for Pontoon #1, seat 4 from 14:00 to 15:00", custErr.Message())
}

func TestCheck_SeatReportedBeforeCustomer(t *testing.T) {
	held := []*domain.Reservation{
		existing(1, speedBoatID, domain.KindSpeedBoat, day, 0, 0, "13:00", "13:30", "Alice"),
	}

	err := Check(candidate(speedBoatID, 0, 0, "13:00", "13:30", "Alice"), held)

	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.NotErrorIs(t, err, ErrCustomerConflict)
}

func TestCheck_ExcludesEditedReservation(t *testing.T) {
	held := []*domain.Reservation{
		existing(5, speedBoatID, domain.KindSpeedBoat, day, 0, 0, "13:00", "13:30", "Alice"),
	}

	c := candidate(speedBoatID, 0, 0, "13:00", "14:00", "Alice")
	c.ExcludeID = ptr.Ptr(int64(5))

	assert.NoError(t, Check(c, held))
}

// SpeedBoat on 2025-06-22: Alice holds unit 0 seat 2 at 13:00-13:30.
// Bob cannot take the same seat at 13:15-13:45 and Alice cannot take seat 4 at 13:00.
func TestCheck_AliceBobScenario(t *testing.T) {
	var held []*domain.Reservation

	require.NoError(t, Check(candidate(speedBoatID, 0, 2, "13:00", "13:30", "Alice"), held))
	held = append(held, existing(1, speedBoatID, domain.KindSpeedBoat, day, 0, 2, "13:00", "13:30", "Alice"))

	assert.ErrorIs(t, Check(candidate(speedBoatID, 0, 2, "13:15", "13:45", "Bob"), held), ErrSeatConflict)
	assert.ErrorIs(t, Check(candidate(speedBoatID, 0, 4, "13:00", "13:15", "Alice"), held), ErrCustomerConflict)
	assert.NoError(t, Check(candidate(speedBoatID, 0, 3, "13:00", "13:30", "Bob"), held))
}
