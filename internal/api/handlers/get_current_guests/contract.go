package get_current_guests

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/service/dashboard/models"
)

type DashboardService interface {
	CurrentGuests(ctx context.Context, companyID int64, filter models.GuestsFilter) (*models.CurrentGuestsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
