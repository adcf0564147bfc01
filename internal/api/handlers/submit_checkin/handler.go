package submit_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	submitCheckin "github.com/m04kA/PawsCheckinService/internal/usecase/submit_checkin"
)

const (
	msgInvalidCheckinID      = "некорректный ID оформления"
	msgCheckinNotFound       = "оформление не найдено или истекло"
	msgCheckinClosed         = "оформление уже завершено или отменено"
	msgSubmissionInFlight    = "оформление уже отправляется"
	msgNotSubmittable        = "оформление не готово к отправке"
	msgCancelledDuringSubmit = "оформление было отменено во время отправки"
	msgCatalogUnavailable    = "каталог услуг компании недоступен, повторите попытку"
	msgUnauthorized          = "сервис бронирований отклонил токен"
	msgReservationFailed     = "не удалось создать бронирование, повторите попытку"
)

type Handler struct {
	useCase SubmitCheckinUseCase
	logger  Logger
}

func NewHandler(useCase SubmitCheckinUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkins/{checkinId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkinID, err := handlers.PathUUID(r, "checkinId")
	if err != nil {
		h.logger.Warn("POST /checkins/{checkinId}/submit - Invalid checkin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckinID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitCheckin.Request{SessionID: checkinID})
	if err != nil {
		switch {
		case errors.Is(err, submitCheckin.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgCheckinNotFound)

		case errors.Is(err, submitCheckin.ErrSessionClosed):
			handlers.RespondConflict(w, msgCheckinClosed)

		case errors.Is(err, submitCheckin.ErrSubmissionInFlight):
			h.logger.Warn("POST /checkins/{checkinId}/submit - Submission in flight: checkin_id=%s", checkinID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, submitCheckin.ErrNotSubmittable):
			handlers.RespondConflict(w, msgNotSubmittable)

		case errors.Is(err, submitCheckin.ErrCancelledDuringSubmit):
			h.logger.Warn("POST /checkins/{checkinId}/submit - Cancelled during submission: checkin_id=%s", checkinID)
			handlers.RespondConflict(w, msgCancelledDuringSubmit)

		case errors.Is(err, submitCheckin.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, submitCheckin.ErrCatalogUnavailable):
			h.logger.Error("POST /checkins/{checkinId}/submit - Catalog unavailable: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		case errors.Is(err, submitCheckin.ErrReservationFailed):
			h.logger.Error("POST /checkins/{checkinId}/submit - Reservation failed: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondBadGateway(w, msgReservationFailed)

		case errors.Is(err, submitCheckin.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCheckinID)

		default:
			h.logger.Error("POST /checkins/{checkinId}/submit - Failed to submit checkin: checkin_id=%s, error=%v", checkinID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkins/{checkinId}/submit - Reservation created: checkin_id=%s, reservation_id=%d, total=%s",
		checkinID, result.ReservationID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
