package quote_pricing

import (
	"context"

	quotePricing "github.com/m04kA/PawsCheckinService/internal/usecase/quote_pricing"
)

type QuotePricingUseCase interface {
	Execute(ctx context.Context, req *quotePricing.Request) (*quotePricing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
