package cancel_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
)

const (
	msgInvalidCheckinID = "некорректный ID оформления"
	msgCheckinNotFound  = "оформление не найдено или истекло"
	msgAlreadySubmitted = "оформление уже отправлено, отмена невозможна"
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

// Handle DELETE /api/v1/checkins/{checkinId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID, err := handlers.PathUUID(r, "checkinId")
	if err != nil {
		h.logger.Warn("DELETE /checkins/{checkinId} - Invalid checkin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckinID)
		return
	}

	if err := h.service.Cancel(r.Context(), checkinID); err != nil {
		switch {
		case errors.Is(err, checkinService.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgCheckinNotFound)

		case errors.Is(err, checkinService.ErrSessionClosed):
			h.logger.Warn("DELETE /checkins/{checkinId} - Checkin already submitted: checkin_id=%s", checkinID)
			handlers.RespondConflict(w, msgAlreadySubmitted)

		default:
			h.logger.Error("DELETE /checkins/{checkinId} - Failed to cancel checkin: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /checkins/{checkinId} - Checkin cancelled: checkin_id=%s", checkinID)
	handlers.RespondNoContent(w)
}
