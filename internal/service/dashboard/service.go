package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	"github.com/m04kA/PawsCheckinService/internal/service/dashboard/models"
)

// unknownServiceType ключ выручки для бронирований без основной позиции
const unknownServiceType = "UNKNOWN"

// Service чтение данных для дашборда администратора
type Service struct {
	reservations ReservationsLister
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис дашборда. location задает границы "сегодня".
func NewService(reservations ReservationsLister, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		reservations: reservations,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CurrentGuests возвращает собак со статусом CHECKED_IN с учетом фильтра
func (s *Service) CurrentGuests(ctx context.Context, companyID int64, filter models.GuestsFilter) (*models.CurrentGuestsResponse, error) {
	s.logger.Info("CurrentGuests: company=%d, filter=%s", companyID, filter)

	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}
	if filter == "" {
		filter = models.GuestsFilterAll
	}
	if !filter.IsValid() {
		s.logger.Warn("CurrentGuests: invalid filter=%s", filter)
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	status := domain.ReservationStatusCheckedIn
	reservations, err := s.reservations.ReservationsByCompany(ctx, domain.ReservationsFilter{
		CompanyID: companyID,
		Status:    &status,
	})
	if err != nil {
		return nil, s.mapReservationsError("CurrentGuests", companyID, err)
	}

	resp := &models.CurrentGuestsResponse{
		Filter: string(filter),
		Guests: make([]models.GuestResponse, 0),
	}

	for i := range reservations {
		r := &reservations[i]
		// API может вернуть лишнее, если фильтр по статусу не поддерживается
		if r.Status != domain.ReservationStatusCheckedIn {
			continue
		}

		serviceType := r.MainServiceType()
		resp.Counts.All++
		if models.GuestsFilterStays.Matches(serviceType) {
			resp.Counts.Stays++
		}
		if models.GuestsFilterDaycare.Matches(serviceType) {
			resp.Counts.Daycare++
		}

		if filter.Matches(serviceType) {
			resp.Guests = append(resp.Guests, models.FromDomainReservation(r))
		}
	}

	s.logger.Info("CurrentGuests: company=%d has %d guests, %d match filter", companyID, resp.Counts.All, len(resp.Guests))
	return resp, nil
}

// TodaysRevenue считает выручку по бронированиям с заездом сегодня.
// Отмененные бронирования в выручку не входят, возвраты считаются отдельно.
func (s *Service) TodaysRevenue(ctx context.Context, companyID int64) (*models.TodaysRevenueResponse, error) {
	s.logger.Info("TodaysRevenue: company=%d", companyID)

	if companyID <= 0 {
		return nil, fmt.Errorf("%w: companyId must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now().In(s.location)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	reservations, err := s.reservations.ReservationsByCompany(ctx, domain.ReservationsFilter{
		CompanyID: companyID,
		From:      &dayStart,
		To:        &dayEnd,
	})
	if err != nil {
		return nil, s.mapReservationsError("TodaysRevenue", companyID, err)
	}

	total, paid, unpaid, refunded := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	byType := make(map[string]decimal.Decimal)
	typeOrder := make([]string, 0)
	counted := 0

	for i := range reservations {
		r := &reservations[i]
		if r.CheckIn == nil || r.CheckIn.Before(dayStart) || !r.CheckIn.Before(dayEnd) {
			continue
		}

		amount := r.Total()

		if r.PaymentStatus == domain.PaymentStatusRefunded {
			refunded = refunded.Add(amount)
			continue
		}
		if r.Status == domain.ReservationStatusCancelled {
			continue
		}

		counted++
		total = total.Add(amount)
		if r.PaymentStatus == domain.PaymentStatusPaid {
			paid = paid.Add(amount)
		} else {
			unpaid = unpaid.Add(amount)
		}

		key := unknownServiceType
		if t := r.MainServiceType(); t != nil {
			key = string(*t)
		}
		if _, ok := byType[key]; !ok {
			typeOrder = append(typeOrder, key)
		}
		byType[key] = byType[key].Add(amount)
	}

	resp := &models.TodaysRevenueResponse{
		Date:          dayStart.Format(domain.DateFormat),
		Total:         total.StringFixed(domain.MoneyPlaces),
		Paid:          paid.StringFixed(domain.MoneyPlaces),
		Unpaid:        unpaid.StringFixed(domain.MoneyPlaces),
		Refunded:      refunded.StringFixed(domain.MoneyPlaces),
		Reservations:  counted,
		ByServiceType: make([]models.RevenueByServiceType, 0, len(typeOrder)),
	}
	for _, key := range typeOrder {
		resp.ByServiceType = append(resp.ByServiceType, models.RevenueByServiceType{
			ServiceType: key,
			Amount:      byType[key].StringFixed(domain.MoneyPlaces),
		})
	}

	s.logger.Info("TodaysRevenue: company=%d, date=%s, total=%s", companyID, resp.Date, resp.Total)
	return resp, nil
}

func (s *Service) mapReservationsError(op string, companyID int64, err error) error {
	if errors.Is(err, petapi.ErrUnauthorized) {
		s.logger.Warn("%s: reservations API rejected token for company=%d", op, companyID)
		return fmt.Errorf("%w: %s - %v", ErrUnauthorized, op, err)
	}
	s.logger.Error("%s: failed to fetch reservations for company=%d: %v", op, companyID, err)
	return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
}
