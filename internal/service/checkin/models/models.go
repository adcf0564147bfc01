package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
)

// Request модели

// StartRequest запрос на начало оформления заезда
type StartRequest struct {
	CompanyID   int64  `json:"companyId"`
	ServiceType string `json:"serviceType"`
	Flow        string `json:"flow,omitempty"` // inline_dog по умолчанию
}

// UpdateRequest изменение деталей черновика. Пустые поля не меняются.
type UpdateRequest struct {
	DogID     *int64     `json:"dogId,omitempty"`
	ServiceID *int64     `json:"serviceId,omitempty"`
	Stay      *StayInput `json:"stay,omitempty"`
}

// StayInput даты проживания, уже разобранные из запроса
type StayInput struct {
	From *time.Time
	To   *time.Time
}

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Price           string   `json:"price"`
	PricingUnit     string   `json:"pricingUnit"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	StartTime       string   `json:"startTime,omitempty"`
	EndTime         string   `json:"endTime,omitempty"`
	DaysAvailable   []string `json:"daysAvailable,omitempty"`
}

// ItemResponse позиция расчета
type ItemResponse struct {
	ServiceID  int64  `json:"serviceId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`  // "45.00"
	TotalPrice string `json:"totalPrice"` // "135.00"
	Kind       string `json:"kind"`
}

// PricingResponse результат расчета
type PricingResponse struct {
	Items  []ItemResponse `json:"items"`
	Total  string         `json:"total"`
	Nights *int           `json:"nights,omitempty"`
}

// StayResponse даты проживания
type StayResponse struct {
	From *string `json:"from"` // "2024-01-01"
	To   *string `json:"to"`
}

// CheckinResponse сессия заезда с предварительным расчетом
type CheckinResponse struct {
	ID                  string            `json:"id"`
	CompanyID           int64             `json:"companyId"`
	Flow                string            `json:"flow"`
	State               string            `json:"state"`
	ServiceType         string            `json:"serviceType"`
	DogID               *int64            `json:"dogId"`
	SelectedServiceID   *int64            `json:"selectedServiceId"`
	ResolvedServiceID   *int64            `json:"resolvedServiceId"` // с учетом автовыбора
	Stay                StayResponse      `json:"stay"`
	SelectedAddonIDs    []int64           `json:"selectedAddonIds"`
	MainServices        []ServiceResponse `json:"mainServices"`
	Addons              []ServiceResponse `json:"addons"`
	Preview             *PricingResponse  `json:"preview"`
	MissingRequirements []string          `json:"missingRequirements"`
	SkippedAddonIDs     []int64           `json:"skippedAddonIds"`
	Submitting          bool              `json:"submitting"`
	LastError           *string           `json:"lastError,omitempty"`
	ReservationID       *int64            `json:"reservationId,omitempty"`
	CreatedAt           string            `json:"createdAt"`
	UpdatedAt           string            `json:"updatedAt"`
}

// Конвертеры

// Money форматирует сумму с двумя знаками после запятой
func Money(v decimal.Decimal) string {
	return v.StringFixed(domain.MoneyPlaces)
}

// FromDomainService конвертирует услугу в ответ
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Type:            string(s.Type),
		Category:        string(s.Category),
		Price:           Money(s.Price),
		PricingUnit:     string(s.PricingUnit),
		DurationMinutes: s.DurationMinutes,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DaysAvailable:   s.DaysAvailable,
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for i := range services {
		result = append(result, FromDomainService(&services[i]))
	}
	return result
}

// FromPricingResult конвертирует результат расчета
func FromPricingResult(r *domain.PricingResult) *PricingResponse {
	if r == nil {
		return nil
	}

	items := make([]ItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ItemResponse{
			ServiceID:  item.ServiceID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  Money(item.UnitPrice),
			TotalPrice: Money(item.TotalPrice),
			Kind:       string(item.Kind),
		})
	}

	return &PricingResponse{
		Items:  items,
		Total:  Money(r.Total),
		Nights: r.Nights,
	}
}

// FromDomainSession конвертирует сессию и ее расчет в ответ
func FromDomainSession(s *domain.CheckinSession, eval *pricing.Evaluation) *CheckinResponse {
	resp := &CheckinResponse{
		ID:                  s.ID.String(),
		CompanyID:           s.CompanyID,
		Flow:                string(s.Flow),
		State:               string(s.State),
		ServiceType:         string(s.Draft.ServiceType),
		DogID:               s.Draft.DogID,
		SelectedServiceID:   s.Draft.SelectedServiceID,
		Stay:                StayResponse{From: formatDate(s.Draft.Stay.From), To: formatDate(s.Draft.Stay.To)},
		SelectedAddonIDs:    append(make([]int64, 0, len(s.Draft.SelectedAddonIDs)), s.Draft.SelectedAddonIDs...),
		MainServices:        FromDomainServices(s.Catalog.Main),
		Addons:              FromDomainServices(s.Catalog.Addons),
		MissingRequirements: make([]string, 0),
		SkippedAddonIDs:     make([]int64, 0),
		Submitting:          s.Submitting,
		LastError:           s.LastError,
		ReservationID:       s.ReservationID,
		CreatedAt:           s.CreatedAt.UTC().Format(domain.DateTimeFormat),
		UpdatedAt:           s.UpdatedAt.UTC().Format(domain.DateTimeFormat),
	}

	if eval != nil {
		if eval.Main != nil {
			id := eval.Main.ID
			resp.ResolvedServiceID = &id
		}
		resp.Preview = FromPricingResult(eval.Result)
		for _, r := range eval.Missing {
			resp.MissingRequirements = append(resp.MissingRequirements, string(r))
		}
		resp.SkippedAddonIDs = append(resp.SkippedAddonIDs, eval.SkippedAddonIDs...)
	}

	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
