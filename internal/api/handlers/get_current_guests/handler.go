package get_current_guests

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	dashboardService "github.com/m04kA/PawsCheckinService/internal/service/dashboard"
	"github.com/m04kA/PawsCheckinService/internal/service/dashboard/models"
)

const (
	msgInvalidCompanyID        = "некорректный ID компании"
	msgInvalidFilter           = "некорректный фильтр, ожидается all, stays или daycare"
	msgReservationsUnavailable = "сервис бронирований недоступен"
	msgUnauthorized            = "сервис бронирований отклонил токен"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/guests/current?filter=all|stays|daycare
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{companyId}/guests/current - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	filter := models.GuestsFilter(r.URL.Query().Get("filter"))

	result, err := h.service.CurrentGuests(r.Context(), companyID, filter)
	if err != nil {
		switch {
		case errors.Is(err, dashboardService.ErrInvalidFilter):
			h.logger.Warn("GET /companies/{companyId}/guests/current - Invalid filter: %s", filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, dashboardService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCompanyID)

		case errors.Is(err, dashboardService.ErrUnauthorized):
			h.logger.Warn("GET /companies/{companyId}/guests/current - Token rejected: company_id=%d", companyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, dashboardService.ErrInternal):
			h.logger.Error("GET /companies/{companyId}/guests/current - Reservations unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadGateway(w, msgReservationsUnavailable)

		default:
			h.logger.Error("GET /companies/{companyId}/guests/current - Failed to get guests: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{companyId}/guests/current - Found %d guests: company_id=%d, filter=%s",
		len(result.Guests), companyID, result.Filter)
	handlers.RespondJSON(w, http.StatusOK, result)
}
