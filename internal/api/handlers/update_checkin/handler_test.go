package update_checkin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
	"github.com/m04kA/PawsCheckinService/internal/service/checkin/models"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateRequest) (*models.CheckinResponse, error) {
	args := m.Called(ctx, id, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.CheckinResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func patch(svc CheckinService, id string, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/checkins/{checkinId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/checkins/"+id, strings.NewReader(body)))
	return rec
}

func TestHandler_ParsesStay(t *testing.T) {
	id := uuid.New()
	svc := new(mockService)
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateRequest) bool {
		return req.DogID != nil && *req.DogID == 5 &&
			req.ServiceID == nil &&
			req.Stay != nil &&
			req.Stay.From.Format("2006-01-02") == "2024-01-01" &&
			req.Stay.To.Format("2006-01-02") == "2024-01-04"
	})).Return(&models.CheckinResponse{ID: id.String(), State: "submittable"}, nil)

	rec := patch(svc, id.String(), `{"dogId": 5, "stay": {"from": "2024-01-01", "to": "2024-01-04T09:00:00Z"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"submittable"`)
	svc.AssertExpectations(t)
}

func TestHandler_BadRequests(t *testing.T) {
	svc := new(mockService)

	assert.Equal(t, http.StatusBadRequest, patch(svc, "123", `{"dogId": 5}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, uuid.NewString(), `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, uuid.NewString(), `{"stay": {"from": "01.01.2024"}}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, uuid.NewString(), `{"catId": 1}`).Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", checkinService.ErrSessionNotFound, http.StatusNotFound},
		{"closed", checkinService.ErrSessionClosed, http.StatusConflict},
		{"in flight", checkinService.ErrSubmissionInFlight, http.StatusConflict},
		{"unknown service", checkinService.ErrServiceNotFound, http.StatusNotFound},
		{"unknown dog", checkinService.ErrDogNotFound, http.StatusNotFound},
		{"token rejected", checkinService.ErrUnauthorized, http.StatusUnauthorized},
		{"dog registry", checkinService.ErrDogsUnavailable, http.StatusBadGateway},
		{"dog first", checkinService.ErrDogRequired, http.StatusUnprocessableEntity},
		{"stay order", checkinService.ErrInvalidStay, http.StatusBadRequest},
		{"internal", checkinService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := patch(svc, uuid.NewString(), `{"serviceId": 10}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
