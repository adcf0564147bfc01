package get_current_guests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	dashboardService "github.com/m04kA/PawsCheckinService/internal/service/dashboard"
	"github.com/m04kA/PawsCheckinService/internal/service/dashboard/models"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CurrentGuests(ctx context.Context, companyID int64, filter models.GuestsFilter) (*models.CurrentGuestsResponse, error) {
	args := m.Called(ctx, companyID, filter)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.CurrentGuestsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func get(svc DashboardService, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/companies/{companyId}/guests/current", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandler_PassesFilter(t *testing.T) {
	svc := new(mockService)
	svc.On("CurrentGuests", mock.Anything, int64(4), models.GuestsFilterStays).Return(&models.CurrentGuestsResponse{
		Filter: "stays",
		Counts: models.GuestCounts{All: 3, Stays: 2, Daycare: 1},
		Guests: []models.GuestResponse{},
	}, nil)

	rec := get(svc, "/api/v1/companies/4/guests/current?filter=stays")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"filter":"stays"`)
	svc.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"filter", dashboardService.ErrInvalidFilter, http.StatusBadRequest},
		{"token rejected", dashboardService.ErrUnauthorized, http.StatusUnauthorized},
		{"remote", dashboardService.ErrInternal, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("CurrentGuests", mock.Anything, int64(4), models.GuestsFilter("cats")).Return(nil, tt.err)

			assert.Equal(t, tt.status, get(svc, "/api/v1/companies/4/guests/current?filter=cats").Code)
		})
	}
}

// rejectingPetAPI отвечает 401 на любой запрос, как сервис бронирований с просроченным токеном
func rejectingPetAPI(t *testing.T) *petapi.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)
	return petapi.NewClient(server.URL, "", 2*time.Second, logger.Nop())
}

func TestHandler_RejectedTokenReachesClient(t *testing.T) {
	svc := dashboardService.NewService(rejectingPetAPI(t), time.UTC, logger.Nop())

	assert.Equal(t, http.StatusUnauthorized, get(svc, "/api/v1/companies/4/guests/current").Code)
}
