package get_todays_revenue

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/service/dashboard/models"
)

type DashboardService interface {
	TodaysRevenue(ctx context.Context, companyID int64) (*models.TodaysRevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
