package update_reservation

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ExcursionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ExcursionBooking/internal/conflicts"
	updateReservation "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime          = "invalid time, expected HH:MM"
	msgInvalidInput         = "please check the reservation details"
	msgNameRequired         = "please enter your first name"
	msgSeatTaken            = "this seat is already reserved for part of the selected time"
	msgNotFound             = "reservation not found"
	msgForbidden            = "you can only change your own reservations"
	msgWatercraftNotFound   = "watercraft not found"
	msgDateNotBookable      = "reservations are not available on this date"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	useCaseReq, err := req.ToUseCaseRequest(reservationID, identity)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
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
		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &customerErr):
			h.logger.Warn("PUT /reservations/{id} - Customer conflict: reservation_id=%d, existing_id=%d",
				reservationID, customerErr.Existing.ID)
			handlers.RespondConflict(w, customerErr.Message())

		case errors.Is(err, conflicts.ErrSeatConflict):
			h.logger.Warn("PUT /reservations/{id} - Seat conflict: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgSeatTaken)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			if strings.TrimSpace(req.FirstName) == "" {
				handlers.RespondBadRequest(w, msgNameRequired)
			} else {
				handlers.RespondBadRequest(w, msgInvalidInput)
			}

		case errors.Is(err, updateReservation.ErrWatercraftNotFound):
			handlers.RespondNotFound(w, msgWatercraftNotFound)

		case errors.Is(err, updateReservation.ErrDateNotBookable):
			handlers.RespondBadRequest(w, msgDateNotBookable)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
