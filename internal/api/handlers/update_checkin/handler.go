package update_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
)

const (
	msgInvalidCheckinID   = "некорректный ID оформления"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUpdate        = "не указано ни одного поля для изменения"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgCheckinNotFound    = "оформление не найдено или истекло"
	msgCheckinClosed      = "оформление уже завершено или отменено"
	msgSubmissionInFlight = "оформление отправляется, изменения недоступны"
	msgServiceNotFound    = "основная услуга не найдена в каталоге"
	msgDogRequired        = "сначала выберите собаку"
	msgDogNotFound        = "собака не зарегистрирована в компании"
	msgDogsUnavailable    = "реестр собак компании недоступен"
	msgUnauthorized       = "сервис бронирований отклонил токен"
	msgInvalidStay        = "дата выезда раньше даты заезда"
	msgInvalidInput       = "некорректные данные оформления"
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

// Handle PATCH /api/v1/checkins/{checkinId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID, err := handlers.PathUUID(r, "checkinId")
	if err != nil {
		h.logger.Warn("PATCH /checkins/{checkinId} - Invalid checkin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckinID)
		return
	}

	var req UpdateCheckinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /checkins/{checkinId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.IsEmpty() {
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /checkins/{checkinId} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Update(r.Context(), checkinID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, checkinService.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgCheckinNotFound)

		case errors.Is(err, checkinService.ErrSessionClosed):
			handlers.RespondConflict(w, msgCheckinClosed)

		case errors.Is(err, checkinService.ErrSubmissionInFlight):
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, checkinService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, checkinService.ErrDogNotFound):
			h.logger.Warn("PATCH /checkins/{checkinId} - Dog not found: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondNotFound(w, msgDogNotFound)

		case errors.Is(err, checkinService.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, checkinService.ErrDogsUnavailable):
			h.logger.Error("PATCH /checkins/{checkinId} - Dog registry unavailable: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondBadGateway(w, msgDogsUnavailable)

		case errors.Is(err, checkinService.ErrDogRequired):
			handlers.RespondUnprocessable(w, msgDogRequired)

		case errors.Is(err, checkinService.ErrInvalidStay):
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, checkinService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /checkins/{checkinId} - Failed to update checkin: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /checkins/{checkinId} - Checkin updated: checkin_id=%s, state=%s", checkinID, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
