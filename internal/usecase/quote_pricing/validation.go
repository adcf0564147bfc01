package quote_pricing

import (
	"fmt"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// validateRequest проверяет входные данные
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if !domain.ServiceType(req.ServiceType).IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}
	if req.From == nil && req.To != nil {
		return fmt.Errorf("%w: check-out without check-in", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return fmt.Errorf("%w: check-out is before check-in", ErrInvalidInput)
	}
	return nil
}
