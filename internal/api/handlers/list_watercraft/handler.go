package list_watercraft

import (
	"net/http"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/watercraft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListWatercraft(r.Context())
	if err != nil {
		h.logger.Error("GET /watercraft - Failed to list watercraft: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(list))
}
