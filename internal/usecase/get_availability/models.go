package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/availability"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// Request модель запроса сетки доступности
type Request struct {
	Date             time.Time
	WatercraftTypeID int64
}

// Response сетка доступности плавсредства на дату
// Хранится в кэше как JSON, поэтому поля размечены тегами
type Response struct {
	Date           string     `json:"date"`
	Watercraft     Watercraft `json:"watercraft"`
	WindowStart    string     `json:"windowStart"`
	WindowEnd      string     `json:"windowEnd"`
	Slots          []string   `json:"slots"`
	Units          []Unit     `json:"units"`
	TotalSeatSlots int        `json:"totalSeatSlots"`
	BookedSlots    int        `json:"bookedSeatSlots"`
	Percentage     int        `json:"percentage"`
}

// Watercraft краткое описание плавсредства
type Watercraft struct {
	ID       int64  `json:"id"`
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
	Quantity int    `json:"quantity"`
}

// Unit одна лодка, места с 0
type Unit struct {
	Unit  int    `json:"unit"`
	Seats []Seat `json:"seats"`
}

// Seat ячейки одного места по слотам
type Seat struct {
	Seat  int    `json:"seat"`
	Cells []Cell `json:"cells"`
}

// Cell одна ячейка сетки
// Имя клиента отдаётся только в первой ячейке бронирования
type Cell struct {
	Slot          string `json:"slot"`
	Booked        bool   `json:"booked"`
	Label         string `json:"label,omitempty"`
	ReservationID *int64 `json:"reservationId,omitempty"`
}

func fromIndex(idx *availability.Index) *Response {
	wc := idx.Watercraft()
	window := idx.Window()

	slots := idx.Slots()
	slotStrings := make([]string, 0, len(slots))
	for _, s := range slots {
		slotStrings = append(slotStrings, s.String())
	}

	grid := idx.Grid()
	units := make([]Unit, 0, len(grid))
	for _, u := range grid {
		unit := Unit{Unit: u.Unit, Seats: make([]Seat, 0, len(u.Seats))}
		for _, s := range u.Seats {
			seat := Seat{Seat: s.Seat, Cells: make([]Cell, 0, len(s.Cells))}
			for _, c := range s.Cells {
				cell := Cell{Slot: c.Slot.String(), Booked: c.Booked, ReservationID: c.ReservationID}
				if c.IsLabel {
					cell.Label = c.OwnerName
				}
				seat.Cells = append(seat.Cells, cell)
			}
			unit.Seats = append(unit.Seats, seat)
		}
		units = append(units, unit)
	}

	return &Response{
		Date: idx.Date().Format(domain.DateFormat),
		Watercraft: Watercraft{
			ID:       wc.ID,
			Kind:     string(wc.Kind),
			Capacity: wc.Seats(),
			Quantity: wc.Units(),
		},
		WindowStart:    window.Start.String(),
		WindowEnd:      window.End.String(),
		Slots:          slotStrings,
		Units:          units,
		TotalSeatSlots: idx.TotalSeatSlots(),
		BookedSlots:    idx.BookedSeatSlots(),
		Percentage:     idx.Percentage(),
	}
}
