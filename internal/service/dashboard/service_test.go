package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	"github.com/m04kA/PawsCheckinService/internal/service/dashboard/models"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
)

type mockReservations struct {
	mock.Mock
}

func (m *mockReservations) ReservationsByCompany(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func reservation(id int64, status domain.ReservationStatus, payment domain.PaymentStatus, serviceType domain.ServiceType, amount string, checkIn time.Time) domain.Reservation {
	st := serviceType
	return domain.Reservation{
		ID:            id,
		DogID:         id * 10,
		CompanyID:     7,
		Status:        status,
		PaymentStatus: payment,
		CheckIn:       &checkIn,
		Dog:           &domain.ReservationDog{Name: "Rocky", OwnerName: "Ana", OwnerLastname: "Ruiz"},
		Items: []domain.ReservationLine{
			{Kind: domain.ItemKindMain, TotalPrice: decimal.RequireFromString(amount), ServiceType: &st},
		},
	}
}

func TestService_CurrentGuests(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{
		reservation(1, domain.ReservationStatusCheckedIn, domain.PaymentStatusPaid, domain.ServiceTypeHotel, "135", now),
		reservation(2, domain.ReservationStatusCheckedIn, domain.PaymentStatusUnpaid, domain.ServiceTypeDaycare, "30", now),
		reservation(3, domain.ReservationStatusCheckedIn, domain.PaymentStatusUnpaid, domain.ServiceTypeHotel, "90", now),
		reservation(4, domain.ReservationStatusCheckedOut, domain.PaymentStatusPaid, domain.ServiceTypeHotel, "45", now),
	}

	tests := []struct {
		filter  models.GuestsFilter
		wantIDs []int64
	}{
		{filter: "", wantIDs: []int64{1, 2, 3}},
		{filter: models.GuestsFilterAll, wantIDs: []int64{1, 2, 3}},
		{filter: models.GuestsFilterStays, wantIDs: []int64{1, 3}},
		{filter: models.GuestsFilterDaycare, wantIDs: []int64{2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			lister := new(mockReservations)
			lister.On("ReservationsByCompany", mock.Anything, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
				return f.CompanyID == 7 && f.Status != nil && *f.Status == domain.ReservationStatusCheckedIn
			})).Return(reservations, nil)
			svc := NewService(lister, time.UTC, logger.Nop())

			resp, err := svc.CurrentGuests(context.Background(), 7, tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0)
			for _, g := range resp.Guests {
				ids = append(ids, g.ReservationID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, models.GuestCounts{All: 3, Stays: 2, Daycare: 1}, resp.Counts)
		})
	}
}

func TestService_CurrentGuests_GuestFields(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	lister := new(mockReservations)
	lister.On("ReservationsByCompany", mock.Anything, mock.Anything).Return([]domain.Reservation{
		reservation(1, domain.ReservationStatusCheckedIn, domain.PaymentStatusPaid, domain.ServiceTypeHotel, "135", now),
	}, nil)
	svc := NewService(lister, time.UTC, logger.Nop())

	resp, err := svc.CurrentGuests(context.Background(), 7, models.GuestsFilterAll)
	require.NoError(t, err)
	require.Len(t, resp.Guests, 1)

	guest := resp.Guests[0]
	assert.Equal(t, "Rocky", guest.DogName)
	assert.Equal(t, "Ana Ruiz", guest.OwnerName)
	assert.Equal(t, "HOTEL", *guest.ServiceType)
	assert.Equal(t, "135.00", guest.Total)
	assert.Equal(t, "2024-01-02T10:00:00Z", *guest.CheckIn)
}

func TestService_CurrentGuests_Errors(t *testing.T) {
	lister := new(mockReservations)
	lister.On("ReservationsByCompany", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	svc := NewService(lister, time.UTC, logger.Nop())
	ctx := context.Background()

	_, err := svc.CurrentGuests(ctx, 7, "boarders")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.CurrentGuests(ctx, 0, models.GuestsFilterAll)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CurrentGuests(ctx, 7, models.GuestsFilterAll)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_TokenRejected(t *testing.T) {
	lister := new(mockReservations)
	lister.On("ReservationsByCompany", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: ReservationsByCompany status 401", petapi.ErrUnauthorized))
	svc := NewService(lister, time.UTC, logger.Nop())
	ctx := context.Background()

	_, err := svc.CurrentGuests(ctx, 7, models.GuestsFilterAll)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrInternal)

	_, err = svc.TodaysRevenue(ctx, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_TodaysRevenue(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, loc)
	today := time.Date(2024, 1, 2, 8, 0, 0, 0, loc)
	yesterday := time.Date(2024, 1, 1, 23, 0, 0, 0, loc)

	lister := new(mockReservations)
	lister.On("ReservationsByCompany", mock.Anything, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
		return f.From != nil && f.To != nil &&
			f.From.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, loc)) &&
			f.To.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, loc))
	})).Return([]domain.Reservation{
		reservation(1, domain.ReservationStatusCheckedIn, domain.PaymentStatusPaid, domain.ServiceTypeHotel, "135", today),
		reservation(2, domain.ReservationStatusConfirmed, domain.PaymentStatusUnpaid, domain.ServiceTypeDaycare, "30.10", today),
		reservation(3, domain.ReservationStatusCheckedIn, domain.PaymentStatusUnpaid, domain.ServiceTypeHotel, "0.20", today),
		reservation(4, domain.ReservationStatusCancelled, domain.PaymentStatusRefunded, domain.ServiceTypeHotel, "45", today),
		reservation(5, domain.ReservationStatusCancelled, domain.PaymentStatusUnpaid, domain.ServiceTypeHotel, "999", today),
		reservation(6, domain.ReservationStatusCheckedIn, domain.PaymentStatusPaid, domain.ServiceTypeHotel, "500", yesterday),
	}, nil)

	svc := NewService(lister, loc, logger.Nop())
	svc.timeProvider = &fixedTime{now: now}

	resp, err := svc.TodaysRevenue(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-02", resp.Date)
	assert.Equal(t, "165.30", resp.Total)
	assert.Equal(t, "135.00", resp.Paid)
	assert.Equal(t, "30.30", resp.Unpaid)
	assert.Equal(t, "45.00", resp.Refunded)
	assert.Equal(t, 3, resp.Reservations)
	assert.Equal(t, []models.RevenueByServiceType{
		{ServiceType: "HOTEL", Amount: "135.20"},
		{ServiceType: "DAYCARE", Amount: "30.10"},
	}, resp.ByServiceType)
}

func TestService_TodaysRevenue_Empty(t *testing.T) {
	lister := new(mockReservations)
	lister.On("ReservationsByCompany", mock.Anything, mock.Anything).Return([]domain.Reservation{}, nil)
	svc := NewService(lister, nil, logger.Nop())

	resp, err := svc.TodaysRevenue(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.Total)
	assert.Empty(t, resp.ByServiceType)
}
