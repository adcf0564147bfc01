package quote_pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
	quotePricing "github.com/m04kA/PawsCheckinService/internal/usecase/quote_pricing"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *quotePricing.Request) (*quotePricing.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*quotePricing.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func post(uc QuotePricingUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/companies/{companyId}/quotes", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/companies/3/quotes", strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	nights := 3
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *quotePricing.Request) bool {
		return req.CompanyID == 3 &&
			req.ServiceType == "HOTEL" &&
			req.From != nil && req.To != nil &&
			assert.ObjectsAreEqual([]int64{20, 21}, req.AddonIDs)
	})).Return(&quotePricing.Response{ServiceID: 10, Total: "160.00", Nights: &nights}, nil)

	rec := post(uc, `{"serviceType": "HOTEL", "from": "2024-01-01", "to": "2024-01-04", "addonIds": [20, 21]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"160.00"`)
	assert.Contains(t, rec.Body.String(), `"nights":3`)
	uc.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", quotePricing.ErrInvalidInput, http.StatusBadRequest},
		{"no main", quotePricing.ErrNoMainService, http.StatusUnprocessableEntity},
		{"unknown service", quotePricing.ErrServiceNotFound, http.StatusNotFound},
		{"ambiguous", quotePricing.ErrServiceRequired, http.StatusUnprocessableEntity},
		{"incomplete stay", quotePricing.ErrIncompleteStay, http.StatusUnprocessableEntity},
		{"token rejected", quotePricing.ErrUnauthorized, http.StatusUnauthorized},
		{"catalog", quotePricing.ErrCatalogUnavailable, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.status, post(uc, `{"serviceType": "DAYCARE"}`).Code)
		})
	}
}

func TestHandler_InvalidDate(t *testing.T) {
	uc := new(mockUseCase)

	rec := post(uc, `{"serviceType": "HOTEL", "from": "yesterday"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_RejectedTokenReachesClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := petapi.NewClient(server.URL, "", 2*time.Second, logger.Nop())
	catalog := catalogService.NewService(client, nil, (*metrics.Metrics)(nil), logger.Nop())
	uc := quotePricing.NewUseCase(catalog, pricing.NewComposer("es"), logger.Nop())

	rec := post(uc, `{"serviceType": "HOTEL"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
