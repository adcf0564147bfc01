package start_checkin

import (
	"context"

	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

type CheckinService interface {
	Start(ctx context.Context, req *models.StartRequest) (*models.CheckinResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
