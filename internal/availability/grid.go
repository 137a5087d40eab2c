package availability

import "github.com/m04kA/SMC-ExcursionBooking/pkg/types"

// Cell is one (unit, seat, slot) position of the grid
type Cell struct {
	Slot          types.TimeString
	Booked        bool
	OwnerName     string
	IsLabel       bool
	ReservationID *int64
}

// SeatRow holds the cells of one seat across all slots
type SeatRow struct {
	Seat  int
	Cells []Cell
}

// UnitRow groups the seats of one unit
type UnitRow struct {
	Unit  int
	Seats []SeatRow
}

// Grid renders the index as unit -> seat -> cells
func (i *Index) Grid() []UnitRow {
	units := make([]UnitRow, 0, i.watercraft.Units())

	for unit := 0; unit < i.watercraft.Units(); unit++ {
		row := UnitRow{Unit: unit, Seats: make([]SeatRow, 0, i.watercraft.Seats())}

		for seat := 0; seat < i.watercraft.Seats(); seat++ {
			seatRow := SeatRow{Seat: seat, Cells: make([]Cell, 0, len(i.slots))}

			for _, slot := range i.slots {
				cell := Cell{Slot: slot}
				if r := i.reservationAt(unit, seat, slot); r != nil {
					id := r.ID
					cell.Booked = true
					cell.OwnerName = r.FirstName
					cell.IsLabel = r.StartTime.Equal(slot)
					cell.ReservationID = &id
				}
				seatRow.Cells = append(seatRow.Cells, cell)
			}

			row.Seats = append(row.Seats, seatRow)
		}

		units = append(units, row)
	}

	return units
}
