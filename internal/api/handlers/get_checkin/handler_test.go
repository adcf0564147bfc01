package get_checkin

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

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (*models.CheckinResponse, error) {
	args := m.Called(ctx, id)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.CheckinResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func get(svc CheckinService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/checkins/{checkinId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		resp   *models.CheckinResponse
		err    error
		status int
	}{
		{"found", &models.CheckinResponse{State: "dog_selected"}, nil, http.StatusOK},
		{"not found", nil, checkinService.ErrSessionNotFound, http.StatusNotFound},
		{"internal", nil, checkinService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := new(mockService)
			if tt.resp != nil {
				svc.On("Get", mock.Anything, id).Return(tt.resp, nil)
			} else {
				svc.On("Get", mock.Anything, id).Return(nil, tt.err)
			}

			rec := get(svc, "/api/v1/checkins/"+id.String())

			assert.Equal(t, tt.status, rec.Code)
			if tt.resp != nil {
				assert.Contains(t, rec.Body.String(), `"state":"dog_selected"`)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_InvalidCheckinID(t *testing.T) {
	svc := new(mockService)

	rec := get(svc, "/api/v1/checkins/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
