package quote_pricing

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// CatalogProvider интерфейс сервиса каталога
type CatalogProvider interface {
	View(ctx context.Context, companyID int64, serviceType domain.ServiceType) (domain.CatalogView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
