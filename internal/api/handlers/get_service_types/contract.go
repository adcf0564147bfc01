package get_service_types

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

type CatalogService interface {
	ServiceTypes(ctx context.Context, companyID int64) ([]domain.ServiceType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
