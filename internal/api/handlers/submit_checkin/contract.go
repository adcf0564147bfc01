package submit_checkin

import (
	"context"

	submitCheckin "github.com/m04kA/PawsCheckinService/internal/usecase/submit_checkin"
)

type SubmitCheckinUseCase interface {
	Execute(ctx context.Context, req *submitCheckin.Request) (*submitCheckin.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
