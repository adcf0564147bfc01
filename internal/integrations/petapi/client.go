package petapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/pkg/authctx"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего graph API (каталог услуг и бронирования)
type Client struct {
	url          string
	serviceToken string
	httpClient   *http.Client
	log          Logger
}

// NewClient создает новый экземпляр клиента.
// serviceToken используется, когда в контексте запроса нет токена сотрудника.
func NewClient(url string, serviceToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:          url,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ServicesByCompany получает активные услуги компании
func (c *Client) ServicesByCompany(ctx context.Context, companyID int64) ([]domain.Service, error) {
	active := true
	vars := servicesByCompanyVariables{
		Input: servicesByCompanyInput{CompanyID: companyID, Active: &active},
	}

	var data servicesByCompanyData
	if err := c.do(ctx, "ServicesByCompany", servicesByCompanyQuery, vars, &data); err != nil {
		return nil, err
	}

	services := make([]domain.Service, 0, len(data.ServicesByCompany))
	for i := range data.ServicesByCompany {
		services = append(services, data.ServicesByCompany[i].toDomain())
	}

	c.log.Info("petapi: fetched %d services for company=%d", len(services), companyID)
	return services, nil
}

// CompanyDogs получает собак, зарегистрированных в компании
func (c *Client) CompanyDogs(ctx context.Context, companyID int64) ([]domain.Dog, error) {
	var data companyDogsData
	if err := c.do(ctx, "CompanyDogs", companyDogsQuery, companyDogsVariables{CompanyID: companyID}, &data); err != nil {
		return nil, err
	}

	dogs := make([]domain.Dog, 0, len(data.CompanyDogs))
	for i := range data.CompanyDogs {
		dogs = append(dogs, data.CompanyDogs[i].toDomain())
	}

	c.log.Info("petapi: fetched %d dogs for company=%d", len(dogs), companyID)
	return dogs, nil
}

// CreateReservation создает бронирование одним запросом
func (c *Client) CreateReservation(ctx context.Context, req *domain.ReservationRequest) (*domain.Reservation, error) {
	vars := newCreateReservationVariables(req)

	var data createReservationData
	if err := c.do(ctx, "CreateReservation", createReservationMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.CreateReservation == nil {
		return nil, fmt.Errorf("%w: createReservation returned null", ErrInvalidResponse)
	}

	reservation := data.CreateReservation.toDomain()
	c.log.Info("petapi: created reservation id=%d for dog=%d, company=%d",
		reservation.ID, req.DogID, req.CompanyID)
	return &reservation, nil
}

// ReservationsByCompany получает бронирования компании с фильтрацией
func (c *Client) ReservationsByCompany(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error) {
	vars := reservationsByCompanyVariables{CompanyID: filter.CompanyID}
	if filter.From != nil || filter.To != nil || filter.Status != nil {
		input := &reservationFilterInput{
			From: formatISO(filter.From),
			To:   formatISO(filter.To),
		}
		if filter.Status != nil {
			status := string(*filter.Status)
			input.Status = &status
		}
		vars.Filters = input
	}

	var data reservationsByCompanyData
	if err := c.do(ctx, "ReservationsByCompany", reservationsByCompanyQuery, vars, &data); err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(data.ReservationsByCompany))
	for i := range data.ReservationsByCompany {
		reservations = append(reservations, data.ReservationsByCompany[i].toDomain())
	}
	return reservations, nil
}

// do выполняет GraphQL операцию и декодирует data в out
func (c *Client) do(ctx context.Context, operation, query string, variables interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{
		Query:         query,
		OperationName: operation,
		Variables:     variables,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s request: %v", ErrInternal, operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token, ok := authctx.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute %s: %v", ErrInternal, operation, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s status %d", ErrUnauthorized, operation, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(gqlResp.Errors) > 0 {
		c.log.Warn("petapi: %s returned errors: %s", operation, joinErrors(gqlResp.Errors))
		if hasAuthError(gqlResp.Errors) {
			return fmt.Errorf("%w: %s: %s", ErrUnauthorized, operation, joinErrors(gqlResp.Errors))
		}
		return fmt.Errorf("%w: %s: %s", ErrRemote, operation, joinErrors(gqlResp.Errors))
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return fmt.Errorf("%w: %s returned no data", ErrInvalidResponse, operation)
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s data: %v", ErrInvalidResponse, operation, err)
	}

	return nil
}
