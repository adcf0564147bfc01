package update_checkin

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

type CheckinService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateRequest) (*models.CheckinResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
