package get_company_dogs

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

type CheckinService interface {
	Dogs(ctx context.Context, companyID int64) ([]domain.Dog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
