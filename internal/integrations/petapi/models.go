package petapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// isoLayout формат дат, который ожидает API (как Date.toISOString)
const isoLayout = "2006-01-02T15:04:05.000Z"

// graphQLRequest тело запроса к API
type graphQLRequest struct {
	Query         string      `json:"query"`
	OperationName string      `json:"operationName,omitempty"`
	Variables     interface{} `json:"variables,omitempty"`
}

// graphQLResponse тело ответа API
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message    string        `json:"message"`
	Path       []interface{} `json:"path,omitempty"` // имена полей и индексы списков
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// коды ошибок доступа в extensions.code
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeForbidden       = "FORBIDDEN"
)

func hasAuthError(errs []graphQLError) bool {
	for _, e := range errs {
		if e.Extensions.Code == codeUnauthenticated || e.Extensions.Code == codeForbidden {
			return true
		}
	}
	return false
}

func joinErrors(errs []graphQLError) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}

// ID идентификатор, который API отдает то строкой, то числом
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", string(data), err)
	}
	*id = ID(v)
	return nil
}

// Timestamp дата из API: ISO-8601 или миллисекунды unix строкой
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t *Timestamp) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// ServiceDTO услуга в ответе servicesByCompany
type ServiceDTO struct {
	ID            ID              `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	PricingUnit   string          `json:"pricingUnit"`
	Duration      int             `json:"duration"`
	StartTime     string          `json:"startTime"`
	EndTime       string          `json:"endTime"`
	DaysAvailable []string        `json:"daysAvailable"`
	Active        bool            `json:"active"`
	CompanyID     ID              `json:"companyId"`
}

func (s *ServiceDTO) toDomain() domain.Service {
	return domain.Service{
		ID:              int64(s.ID),
		CompanyID:       int64(s.CompanyID),
		Name:            s.Name,
		Type:            domain.ServiceType(s.Type),
		Category:        domain.ServiceCategory(s.Category),
		Price:           s.Price,
		PricingUnit:     domain.PricingUnit(s.PricingUnit),
		DurationMinutes: s.Duration,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DaysAvailable:   s.DaysAvailable,
		Active:          s.Active,
	}
}

type servicesByCompanyInput struct {
	CompanyID int64 `json:"companyId"`
	Active    *bool `json:"active,omitempty"`
}

type servicesByCompanyVariables struct {
	Input servicesByCompanyInput `json:"input"`
}

type servicesByCompanyData struct {
	ServicesByCompany []ServiceDTO `json:"servicesByCompany"`
}

// ReservationItemInput позиция в мутации createReservation.
// Деньги передаются числом, без кавычек.
type ReservationItemInput struct {
	ServiceID  *int64      `json:"serviceId,omitempty"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	UnitPrice  json.Number `json:"unitPrice"`
	TotalPrice json.Number `json:"totalPrice"`
	Kind       string      `json:"kind"`
}

type createReservationVariables struct {
	DogID     int64                  `json:"dogId"`
	CompanyID int64                  `json:"companyId"`
	Items     []ReservationItemInput `json:"items"`
	CheckIn   *string                `json:"checkIn,omitempty"`
	CheckOut  *string                `json:"checkOut,omitempty"`
}

func newCreateReservationVariables(req *domain.ReservationRequest) createReservationVariables {
	items := make([]ReservationItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		serviceID := item.ServiceID
		items = append(items, ReservationItemInput{
			ServiceID:  &serviceID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  json.Number(item.UnitPrice.String()),
			TotalPrice: json.Number(item.TotalPrice.String()),
			Kind:       string(item.Kind),
		})
	}

	return createReservationVariables{
		DogID:     req.DogID,
		CompanyID: req.CompanyID,
		Items:     items,
		CheckIn:   formatISO(req.CheckIn),
		CheckOut:  formatISO(req.CheckOut),
	}
}

func formatISO(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(isoLayout)
	return &s
}

type createReservationData struct {
	CreateReservation *ReservationDTO `json:"createReservation"`
}

type reservationFilterInput struct {
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
	Status *string `json:"status,omitempty"`
}

type reservationsByCompanyVariables struct {
	CompanyID int64                   `json:"companyId"`
	Filters   *reservationFilterInput `json:"filters,omitempty"`
}

type reservationsByCompanyData struct {
	ReservationsByCompany []ReservationDTO `json:"reservationsByCompany"`
}

// ReservationDTO бронирование в ответах API
type ReservationDTO struct {
	ID            ID                   `json:"id"`
	DogID         ID                   `json:"dogId"`
	CompanyID     ID                   `json:"companyId"`
	Status        string               `json:"status"`
	PaymentStatus string               `json:"paymentStatus"`
	CheckIn       *Timestamp           `json:"checkIn"`
	CheckOut      *Timestamp           `json:"checkOut"`
	Dog           *ReservationDogDTO   `json:"dog"`
	Items         []ReservationItemDTO `json:"items"`
	CreatedAt     Timestamp            `json:"createdAt"`
	UpdatedAt     Timestamp            `json:"updatedAt"`
}

type ReservationDogDTO struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	Breed    string  `json:"breed"`
	ImageURL *string `json:"imageUrl"`
	Owner    *struct {
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
	} `json:"owner"`
}

// DogDTO собака в ответе companyDogs
type DogDTO struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	Breed    string  `json:"breed"`
	ImageURL *string `json:"imageUrl"`
	OwnerID  ID      `json:"ownerId"`
	Owner    *struct {
		Name     string `json:"name"`
		Lastname string `json:"lastname"`
	} `json:"owner"`
}

func (d *DogDTO) toDomain() domain.Dog {
	dog := domain.Dog{
		ID:       int64(d.ID),
		Name:     d.Name,
		Breed:    d.Breed,
		ImageURL: d.ImageURL,
		OwnerID:  int64(d.OwnerID),
	}
	if d.Owner != nil {
		dog.OwnerName = d.Owner.Name
		dog.OwnerLastname = d.Owner.Lastname
	}
	return dog
}

type companyDogsVariables struct {
	CompanyID int64 `json:"companyId"`
}

type companyDogsData struct {
	CompanyDogs []DogDTO `json:"companyDogs"`
}

type ReservationItemDTO struct {
	ID         ID              `json:"id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Service    *struct {
		ID       ID     `json:"id"`
		Name     string `json:"name"`
		Type     string `json:"type"`
		Category string `json:"category"`
	} `json:"service"`
}

func (r *ReservationDTO) toDomain() domain.Reservation {
	res := domain.Reservation{
		ID:            int64(r.ID),
		DogID:         int64(r.DogID),
		CompanyID:     int64(r.CompanyID),
		Status:        domain.ReservationStatus(r.Status),
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		CheckIn:       r.CheckIn.ptr(),
		CheckOut:      r.CheckOut.ptr(),
		Items:         make([]domain.ReservationLine, 0, len(r.Items)),
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.UpdatedAt.Time,
	}

	if r.Dog != nil {
		dog := &domain.ReservationDog{
			ID:       int64(r.Dog.ID),
			Name:     r.Dog.Name,
			Breed:    r.Dog.Breed,
			ImageURL: r.Dog.ImageURL,
		}
		if r.Dog.Owner != nil {
			dog.OwnerName = r.Dog.Owner.Name
			dog.OwnerLastname = r.Dog.Owner.Lastname
		}
		res.Dog = dog
	}

	for _, item := range r.Items {
		line := domain.ReservationLine{
			ID:         int64(item.ID),
			Name:       item.Name,
			Kind:       domain.ItemKind(item.Kind),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
		if item.Service != nil {
			serviceID := int64(item.Service.ID)
			serviceType := domain.ServiceType(item.Service.Type)
			line.ServiceID = &serviceID
			line.ServiceType = &serviceType
		}
		res.Items = append(res.Items, line)
	}

	return res
}
