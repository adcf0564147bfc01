package get_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
)

const (
	msgInvalidCheckinID = "некорректный ID оформления"
	msgCheckinNotFound  = "оформление не найдено или истекло"
)

type Handler struct {
	service CheckinService
	logger  Logger
}

func NewHandler(service CheckinService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkins/{checkinId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID, err := handlers.PathUUID(r, "checkinId")
	if err != nil {
		h.logger.Warn("GET /checkins/{checkinId} - Invalid checkin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckinID)
		return
	}

	result, err := h.service.Get(r.Context(), checkinID)
	if err != nil {
		if errors.Is(err, checkinService.ErrSessionNotFound) {
			h.logger.Warn("GET /checkins/{checkinId} - Checkin not found: checkin_id=%s", checkinID)
			handlers.RespondNotFound(w, msgCheckinNotFound)
			return
		}
		h.logger.Error("GET /checkins/{checkinId} - Failed to get checkin: checkin_id=%s, error=%v", checkinID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /checkins/{checkinId} - Checkin found: checkin_id=%s, state=%s", checkinID, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
