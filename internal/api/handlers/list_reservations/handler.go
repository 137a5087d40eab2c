package list_reservations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ExcursionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/internal/service/reservations/models"
)

const (
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgInvalidWatercraftID = "invalid watercraftTypeId"
	msgMineRequiresAuth    = "sign in to see your reservations"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: date (YYYY-MM-DD), watercraftTypeId, mine=true (только свои, нужен токен)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRequest{}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if idStr := query.Get("watercraftTypeId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /reservations - Invalid watercraft ID: %s", idStr)
			handlers.RespondBadRequest(w, msgInvalidWatercraftID)
			return
		}
		req.WatercraftTypeID = &id
	}

	if query.Get("mine") == "true" {
		identity := middleware.GetIdentity(r.Context())
		if identity == nil {
			handlers.RespondUnauthorized(w, msgMineRequiresAuth)
			return
		}
		userID := identity.UserID
		req.UserID = &userID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
