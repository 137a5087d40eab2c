package update_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// Request модель запроса на изменение бронирования
// Все поля перезаписываются, владелец сохраняется
type Request struct {
	ID               int64
	Date             time.Time
	WatercraftTypeID int64
	UnitIndex        int
	SeatIndex        int
	StartTime        types.TimeString
	EndTime          types.TimeString
	FirstName        string
	Identity         *domain.Identity
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID               int64
	Date             time.Time
	WatercraftTypeID int64
	WatercraftType   string
	UnitIndex        int
	SeatIndex        int
	StartTime        types.TimeString
	EndTime          types.TimeString
	FirstName        string
	UserID           *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func fromDomain(r *domain.Reservation) *Response {
	return &Response{
		ID:               r.ID,
		Date:             r.Date,
		WatercraftTypeID: r.WatercraftTypeID,
		WatercraftType:   string(r.WatercraftType),
		UnitIndex:        r.UnitIndex,
		SeatIndex:        r.SeatIndex,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		FirstName:        r.FirstName,
		UserID:           r.UserID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
