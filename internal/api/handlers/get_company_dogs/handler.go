package get_company_dogs

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgUnauthorized     = "сервис бронирований отклонил токен"
	msgDogsUnavailable  = "реестр собак компании недоступен"
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

// Handle GET /api/v1/companies/{companyId}/dogs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{companyId}/dogs - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	dogs, err := h.service.Dogs(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, checkinService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCompanyID)

		case errors.Is(err, checkinService.ErrUnauthorized):
			h.logger.Warn("GET /companies/{companyId}/dogs - Token rejected: company_id=%d", companyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, checkinService.ErrDogsUnavailable):
			h.logger.Error("GET /companies/{companyId}/dogs - Dog registry unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadGateway(w, msgDogsUnavailable)

		default:
			h.logger.Error("GET /companies/{companyId}/dogs - Failed to load dogs: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{companyId}/dogs - Found %d dogs: company_id=%d", len(dogs), companyID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDogs(companyID, dogs))
}
