package create_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ExcursionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ExcursionBooking/internal/conflicts"
	createReservation "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time, expected HH:MM"
	msgInvalidInput       = "please check the reservation details"
	msgNameRequired       = "please enter your first name"
	msgSeatTaken          = "this seat is already reserved for part of the selected time"
	msgWatercraftNotFound = "watercraft not found"
	msgDateNotBookable    = "reservations are not available on this date"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// Токен необязателен, анонимное бронирование сохраняется без владельца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.GetIdentity(r.Context()))
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var customerErr *conflicts.CustomerConflictError

		switch {
		case errors.As(err, &customerErr):
			h.logger.Warn("POST /reservations - Customer conflict: name=%s, existing_id=%d", req.FirstName, customerErr.Existing.ID)
			handlers.RespondConflict(w, customerErr.Message())

		case errors.Is(err, conflicts.ErrSeatConflict):
			h.logger.Warn("POST /reservations - Seat conflict: watercraft=%d, unit=%d, seat=%d, time=%s-%s",
				req.WatercraftTypeID, req.UnitIndex, req.SeatIndex, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSeatTaken)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			if strings.TrimSpace(useCaseReq.FirstName) == "" {
				handlers.RespondBadRequest(w, msgNameRequired)
			} else {
				handlers.RespondBadRequest(w, msgInvalidInput)
			}

		case errors.Is(err, createReservation.ErrWatercraftNotFound):
			h.logger.Warn("POST /reservations - Watercraft not found: watercraft=%d", req.WatercraftTypeID)
			handlers.RespondNotFound(w, msgWatercraftNotFound)

		case errors.Is(err, createReservation.ErrDateNotBookable):
			h.logger.Warn("POST /reservations - Date not bookable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

