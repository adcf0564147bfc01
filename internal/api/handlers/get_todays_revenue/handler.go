package get_todays_revenue

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	dashboardService "github.com/m04kA/PawsCheckinService/internal/service/dashboard"
)

const (
	msgInvalidCompanyID        = "некорректный ID компании"
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

// Handle GET /api/v1/companies/{companyId}/revenue/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{companyId}/revenue/today - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.TodaysRevenue(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, dashboardService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCompanyID)

		case errors.Is(err, dashboardService.ErrUnauthorized):
			h.logger.Warn("GET /companies/{companyId}/revenue/today - Token rejected: company_id=%d", companyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, dashboardService.ErrInternal):
			h.logger.Error("GET /companies/{companyId}/revenue/today - Reservations unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadGateway(w, msgReservationsUnavailable)

		default:
			h.logger.Error("GET /companies/{companyId}/revenue/today - Failed to compute revenue: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{companyId}/revenue/today - Revenue computed: company_id=%d, date=%s, total=%s",
		companyID, result.Date, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
