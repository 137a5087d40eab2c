package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date             time.Time        // Дата экскурсии (без времени)
	WatercraftTypeID int64            // ID типа плавсредства
	UnitIndex        int              // Номер единицы, с 0
	SeatIndex        int              // Номер места, с 0
	StartTime        types.TimeString // Начало первого слота
	EndTime          types.TimeString // Граница после последнего слота
	FirstName        string           // Имя клиента
	Identity         *domain.Identity // Текущий пользователь, nil для анонимного
}

// Response модель ответа с созданным бронированием
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
