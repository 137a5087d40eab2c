package update_reservation

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	updateReservation "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// UpdateReservationRequest HTTP request model, все поля обязательны
type UpdateReservationRequest struct {
	Date             string `json:"date"`
	WatercraftTypeID int64  `json:"watercraftTypeId"`
	UnitIndex        int    `json:"unitIndex"`
	SeatIndex        int    `json:"seatIndex"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	FirstName        string `json:"firstName"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	WatercraftTypeID int64   `json:"watercraftTypeId"`
	WatercraftType   string  `json:"watercraftType"`
	UnitIndex        int     `json:"unitIndex"`
	SeatIndex        int     `json:"seatIndex"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	FirstName        string  `json:"firstName"`
	UserID           *string `json:"userId,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64, identity *domain.Identity) (*updateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &updateReservation.Request{
		ID:               id,
		Date:             date,
		WatercraftTypeID: r.WatercraftTypeID,
		UnitIndex:        r.UnitIndex,
		SeatIndex:        r.SeatIndex,
		StartTime:        start,
		EndTime:          end,
		FirstName:        r.FirstName,
		Identity:         identity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
		ID:               resp.ID,
		Date:             resp.Date.Format(domain.DateFormat),
		WatercraftTypeID: resp.WatercraftTypeID,
		WatercraftType:   resp.WatercraftType,
		UnitIndex:        resp.UnitIndex,
		SeatIndex:        resp.SeatIndex,
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		FirstName:        resp.FirstName,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.UserID != nil {
		id := resp.UserID.String()
		out.UserID = &id
	}
	return out
}
