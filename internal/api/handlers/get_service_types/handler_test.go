package get_service_types

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ServiceTypes(ctx context.Context, companyID int64) ([]domain.ServiceType, error) {
	args := m.Called(ctx, companyID)
	if types := args.Get(0); types != nil {
		return types.([]domain.ServiceType), args.Error(1)
	}
	return nil, args.Error(1)
}

func get(svc CatalogService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/companies/{companyId}/service-types", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companies/5/service-types", nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := new(mockService)
	svc.On("ServiceTypes", mock.Anything, int64(5)).
		Return([]domain.ServiceType{domain.ServiceTypeHotel, domain.ServiceTypeDaycare}, nil)

	rec := get(svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companyId": 5, "serviceTypes": ["HOTEL", "DAYCARE"]}`, rec.Body.String())
}

func TestHandler_Empty(t *testing.T) {
	svc := new(mockService)
	svc.On("ServiceTypes", mock.Anything, int64(5)).Return([]domain.ServiceType{}, nil)

	rec := get(svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companyId": 5, "serviceTypes": []}`, rec.Body.String())
}

func TestHandler_CatalogUnavailable(t *testing.T) {
	svc := new(mockService)
	svc.On("ServiceTypes", mock.Anything, int64(5)).Return(nil, errors.New("timeout"))

	assert.Equal(t, http.StatusBadGateway, get(svc).Code)
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
	svc := catalogService.NewService(rejectingPetAPI(t), nil, (*metrics.Metrics)(nil), logger.Nop())

	assert.Equal(t, http.StatusUnauthorized, get(svc).Code)
}
