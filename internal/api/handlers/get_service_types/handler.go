package get_service_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgCatalogUnavailable = "каталог услуг компании недоступен"
	msgUnauthorized       = "сервис бронирований отклонил токен"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{companyId}/service-types - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	types, err := h.service.ServiceTypes(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, catalogService.ErrUnauthorized) {
			h.logger.Warn("GET /companies/{companyId}/service-types - Token rejected: company_id=%d", companyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		h.logger.Error("GET /companies/{companyId}/service-types - Failed to load catalog: company_id=%d, error=%v", companyID, err)
		handlers.RespondBadGateway(w, msgCatalogUnavailable)
		return
	}

	h.logger.Info("GET /companies/{companyId}/service-types - Found %d service types: company_id=%d", len(types), companyID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainServiceTypes(companyID, types))
}
