package select_addon

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
)

const (
	msgInvalidCheckinID   = "некорректный ID оформления"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgCheckinNotFound    = "оформление не найдено или истекло"
	msgCheckinClosed      = "оформление уже завершено или отменено"
	msgSubmissionInFlight = "оформление отправляется, изменения недоступны"
	msgAddonNotFound      = "дополнительная услуга не найдена в каталоге"
	msgDogRequired        = "сначала выберите собаку"
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

// Handle PUT /api/v1/checkins/{checkinId}/addons/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID, err := handlers.PathUUID(r, "checkinId")
	if err != nil {
		h.logger.Warn("PUT /checkins/{checkinId}/addons/{serviceId} - Invalid checkin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckinID)
		return
	}

	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("PUT /checkins/{checkinId}/addons/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.SelectAddon(r.Context(), checkinID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, checkinService.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgCheckinNotFound)

		case errors.Is(err, checkinService.ErrSessionClosed):
			handlers.RespondConflict(w, msgCheckinClosed)

		case errors.Is(err, checkinService.ErrSubmissionInFlight):
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, checkinService.ErrAddonNotFound):
			h.logger.Warn("PUT /checkins/{checkinId}/addons/{serviceId} - Addon not found: checkin_id=%s, service_id=%d", checkinID, serviceID)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, checkinService.ErrDogRequired):
			handlers.RespondUnprocessable(w, msgDogRequired)

		default:
			h.logger.Error("PUT /checkins/{checkinId}/addons/{serviceId} - Failed to select addon: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /checkins/{checkinId}/addons/{serviceId} - Addon selected: checkin_id=%s, service_id=%d", checkinID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
