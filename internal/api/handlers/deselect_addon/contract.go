package deselect_addon

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
)

type CheckinService interface {
	DeselectAddon(ctx context.Context, id uuid.UUID, serviceID int64) (*models.CheckinResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
