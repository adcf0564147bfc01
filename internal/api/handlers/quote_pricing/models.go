package quote_pricing

import (
	"fmt"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	quotePricing "github.com/m04kA/PawsCheckinService/internal/usecase/quote_pricing"
)

// QuoteRequest HTTP запрос на расчет стоимости
type QuoteRequest struct {
	ServiceType string  `json:"serviceType"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	From        *string `json:"from,omitempty"` // YYYY-MM-DD или RFC3339
	To          *string `json:"to,omitempty"`
	AddonIDs    []int64 `json:"addonIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(companyID int64) (*quotePricing.Request, error) {
	from, err := handlers.ParseDate(r.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := handlers.ParseDate(r.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	return &quotePricing.Request{
		CompanyID:   companyID,
		ServiceType: r.ServiceType,
		ServiceID:   r.ServiceID,
		From:        from,
		To:          to,
		AddonIDs:    r.AddonIDs,
	}, nil
}
