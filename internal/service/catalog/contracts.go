package catalog

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// Source источник каталога услуг: внешний API или реплика в postgres
type Source interface {
	ServicesByCompany(ctx context.Context, companyID int64) ([]domain.Service, error)
}

// Cache кэш каталога компании
type Cache interface {
	Get(ctx context.Context, companyID int64) ([]domain.Service, error)
	Set(ctx context.Context, companyID int64, services []domain.Service) error
	Invalidate(ctx context.Context, companyID int64) error
}

// Metrics метрики загрузки каталога
type Metrics interface {
	CatalogLoad(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
