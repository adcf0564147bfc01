package start_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный тип услуги или сценарий оформления"
	msgNoMainService      = "для выбранного типа нет основной услуги, оформление невозможно"
	msgCatalogUnavailable = "каталог услуг компании недоступен"
	msgUnauthorized       = "сервис бронирований отклонил токен"
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

// Handle POST /api/v1/companies/{companyId}/checkins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{companyId}/checkins - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req StartCheckinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{companyId}/checkins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Start(r.Context(), req.ToServiceRequest(companyID))
	if err != nil {
		switch {
		case errors.Is(err, checkinService.ErrInvalidInput):
			h.logger.Warn("POST /companies/{companyId}/checkins - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkinService.ErrNoMainService):
			h.logger.Warn("POST /companies/{companyId}/checkins - No main service: company_id=%d, type=%s", companyID, req.ServiceType)
			handlers.RespondUnprocessable(w, msgNoMainService)

		case errors.Is(err, checkinService.ErrUnauthorized):
			h.logger.Warn("POST /companies/{companyId}/checkins - Token rejected: company_id=%d", companyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, checkinService.ErrCatalogUnavailable):
			h.logger.Error("POST /companies/{companyId}/checkins - Catalog unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /companies/{companyId}/checkins - Failed to start checkin: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{companyId}/checkins - Checkin started: checkin_id=%s, company_id=%d", result.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
