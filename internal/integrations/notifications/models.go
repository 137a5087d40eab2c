package notifications

import (
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

const (
	// QueueReservationCreated очередь событий о новых бронированиях
	QueueReservationCreated = "reservation.created"
	// QueueReservationUpdated очередь событий об изменении бронирований
	QueueReservationUpdated = "reservation.updated"
	// QueueReservationDeleted очередь событий об удалении бронирований
	QueueReservationDeleted = "reservation.deleted"
)

// ReservationEvent событие жизненного цикла бронирования
// Места и лодки в событии нумеруются с 1, как в интерфейсе
type ReservationEvent struct {
	ReservationID  int64  `json:"reservation_id"`
	Date           string `json:"date"`
	WatercraftType string `json:"watercraft_type"`
	UnitNumber     int    `json:"unit_number"`
	SeatNumber     int    `json:"seat_number"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	FirstName      string `json:"first_name"`
	UserID         string `json:"user_id,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

// NewReservationEvent собирает событие из доменной модели
func NewReservationEvent(r *domain.Reservation, at time.Time) ReservationEvent {
	ev := ReservationEvent{
		ReservationID:  r.ID,
		Date:           r.Date.Format(domain.DateFormat),
		WatercraftType: string(r.WatercraftType),
		UnitNumber:     r.UnitIndex + 1,
		SeatNumber:     r.SeatIndex + 1,
		StartTime:      r.StartTime.String(),
		EndTime:        r.EndTime.String(),
		FirstName:      r.FirstName,
		OccurredAt:     at.UTC().Format(time.RFC3339),
	}
	if r.UserID != nil {
		ev.UserID = r.UserID.String()
	}
	return ev
}
