package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/get_availability"
)

const (
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgInvalidWatercraftID = "invalid watercraft id"
	msgWatercraftNotFound  = "watercraft not found"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{date}/watercraft/{watercraftId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /schedules/{date}/watercraft/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	watercraftID, err := strconv.ParseInt(vars["watercraftId"], 10, 64)
	if err != nil || watercraftID <= 0 {
		h.logger.Warn("GET /schedules/{date}/watercraft/{id}/availability - Invalid watercraft ID: %s", vars["watercraftId"])
		handlers.RespondBadRequest(w, msgInvalidWatercraftID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date, WatercraftTypeID: watercraftID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrWatercraftNotFound):
			h.logger.Warn("GET /schedules/{date}/watercraft/{id}/availability - Watercraft not found: watercraft=%d", watercraftID)
			handlers.RespondNotFound(w, msgWatercraftNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedules/{date}/watercraft/{id}/availability - Failed to get availability: date=%s, watercraft=%d, error=%v",
				vars["date"], watercraftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
