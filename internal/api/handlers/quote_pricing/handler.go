package quote_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	quotePricing "github.com/m04kA/PawsCheckinService/internal/usecase/quote_pricing"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidInput       = "некорректные параметры расчета"
	msgNoMainService      = "для выбранного типа нет основной услуги"
	msgServiceNotFound    = "основная услуга не найдена"
	msgServiceRequired    = "необходимо выбрать основную услугу"
	msgIncompleteStay     = "для ночной услуги нужны даты заезда и выезда"
	msgCatalogUnavailable = "каталог услуг компании недоступен"
	msgUnauthorized       = "сервис бронирований отклонил токен"
)

type Handler struct {
	useCase QuotePricingUseCase
	logger  Logger
}

func NewHandler(useCase QuotePricingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{companyId}/quotes - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{companyId}/quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID)
	if err != nil {
		h.logger.Warn("POST /companies/{companyId}/quotes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePricing.ErrInvalidInput):
			h.logger.Warn("POST /companies/{companyId}/quotes - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePricing.ErrNoMainService):
			h.logger.Warn("POST /companies/{companyId}/quotes - No main service: company_id=%d, type=%s", companyID, req.ServiceType)
			handlers.RespondUnprocessable(w, msgNoMainService)

		case errors.Is(err, quotePricing.ErrServiceNotFound):
			h.logger.Warn("POST /companies/{companyId}/quotes - Service not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, quotePricing.ErrServiceRequired):
			handlers.RespondUnprocessable(w, msgServiceRequired)

		case errors.Is(err, quotePricing.ErrIncompleteStay):
			handlers.RespondUnprocessable(w, msgIncompleteStay)

		case errors.Is(err, quotePricing.ErrUnauthorized):
			h.logger.Warn("POST /companies/{companyId}/quotes - Token rejected: company_id=%d", companyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, quotePricing.ErrCatalogUnavailable):
			h.logger.Error("POST /companies/{companyId}/quotes - Catalog unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /companies/{companyId}/quotes - Failed to quote: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{companyId}/quotes - Quote computed: company_id=%d, total=%s", companyID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
