package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

// Request модели

// ListRequest запрос на получение списка бронирований
type ListRequest struct {
	Date             *time.Time `json:"date,omitempty"`
	WatercraftTypeID *int64     `json:"watercraftTypeId,omitempty"`
	UserID           *uuid.UUID `json:"userId,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() domain.ReservationFilter {
	return domain.ReservationFilter{
		Date:             r.Date,
		WatercraftTypeID: r.WatercraftTypeID,
		UserID:           r.UserID,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
// Номера единицы и места отдаются с 0, как в сетке доступности
type ReservationResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"` // "2025-06-22"
	WatercraftTypeID int64   `json:"watercraftTypeId"`
	WatercraftType   string  `json:"watercraftType"`
	UnitIndex        int     `json:"unitIndex"`
	SeatIndex        int     `json:"seatIndex"`
	StartTime        string  `json:"startTime"` // "13:00"
	EndTime          string  `json:"endTime"`   // "13:30"
	FirstName        string  `json:"firstName"`
	UserID           *string `json:"userId,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:               r.ID,
		Date:             r.Date.Format(domain.DateFormat),
		WatercraftTypeID: r.WatercraftTypeID,
		WatercraftType:   string(r.WatercraftType),
		UnitIndex:        r.UnitIndex,
		SeatIndex:        r.SeatIndex,
		StartTime:        r.StartTime.String(),
		EndTime:          r.EndTime.String(),
		FirstName:        r.FirstName,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
	if r.UserID != nil {
		id := r.UserID.String()
		resp.UserID = &id
	}
	return resp
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}
