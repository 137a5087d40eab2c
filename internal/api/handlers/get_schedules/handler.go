package get_schedules

import (
	"net/http"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers"
)

type Handler struct {
	useCase GetScheduleOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /schedules - Failed to get schedule overview: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
