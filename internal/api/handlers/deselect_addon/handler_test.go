package deselect_addon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) DeselectAddon(ctx context.Context, id uuid.UUID, serviceID int64) (*models.CheckinResponse, error) {
	args := m.Called(ctx, id, serviceID)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.CheckinResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func del(svc CheckinService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/checkins/{checkinId}/addons/{serviceId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		resp   *models.CheckinResponse
		err    error
		status int
	}{
		{"deselected", &models.CheckinResponse{State: "submittable"}, nil, http.StatusOK},
		{"not found", nil, checkinService.ErrSessionNotFound, http.StatusNotFound},
		{"dog first", nil, checkinService.ErrDogRequired, http.StatusUnprocessableEntity},
		{"in flight", nil, checkinService.ErrSubmissionInFlight, http.StatusConflict},
		{"closed", nil, checkinService.ErrSessionClosed, http.StatusConflict},
		{"internal", nil, checkinService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := new(mockService)
			if tt.resp != nil {
				svc.On("DeselectAddon", mock.Anything, id, int64(20)).Return(tt.resp, nil)
			} else {
				svc.On("DeselectAddon", mock.Anything, id, int64(20)).Return(nil, tt.err)
			}

			rec := del(svc, "/api/v1/checkins/"+id.String()+"/addons/20")

			assert.Equal(t, tt.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_InvalidIDs(t *testing.T) {
	svc := new(mockService)

	assert.Equal(t, http.StatusBadRequest, del(svc, "/api/v1/checkins/"+uuid.NewString()+"/addons/bath").Code)
	assert.Equal(t, http.StatusBadRequest, del(svc, "/api/v1/checkins/not-a-uuid/addons/20").Code)
	svc.AssertNotCalled(t, "DeselectAddon", mock.Anything, mock.Anything, mock.Anything)
}
