package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

func date(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	return &t
}

func TestComputeUnits_Nightly(t *testing.T) {
	hotel := newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly)

	tests := []struct {
		name   string
		stay   *domain.StayRange
		ok     bool
		nights int
	}{
		{
			name:   "three nights",
			stay:   &domain.StayRange{From: date(2024, 1, 1, 0), To: date(2024, 1, 4, 0)},
			ok:     true,
			nights: 3,
		},
		{
			name:   "less than 24h across midnight is one night",
			stay:   &domain.StayRange{From: date(2024, 1, 1, 10), To: date(2024, 1, 2, 9)},
			ok:     true,
			nights: 1,
		},
		{
			name:   "month boundary",
			stay:   &domain.StayRange{From: date(2024, 2, 27, 0), To: date(2024, 3, 2, 0)},
			ok:     true,
			nights: 4,
		},
		{name: "no stay", stay: nil, ok: false},
		{name: "only from", stay: &domain.StayRange{From: date(2024, 1, 1, 0)}, ok: false},
		{
			name: "same day",
			stay: &domain.StayRange{From: date(2024, 1, 1, 8), To: date(2024, 1, 1, 20)},
			ok:   false,
		},
		{
			name: "reversed",
			stay: &domain.StayRange{From: date(2024, 1, 5, 0), To: date(2024, 1, 1, 0)},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units, ok := ComputeUnits(&hotel, tt.stay)

			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			require.NotNil(t, units.Nights)
			assert.Equal(t, tt.nights, *units.Nights)
			assert.Equal(t, tt.nights, units.Multiplier)
			assert.GreaterOrEqual(t, units.Multiplier, 1)
		})
	}
}

func TestComputeUnits_NightlyAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata is not available")
	}
	hotel := newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly)

	// 10 марта 2024 года в Нью-Йорке переход на летнее время, сутки длятся 23 часа
	from := time.Date(2024, 3, 9, 0, 0, 0, 0, loc)
	to := time.Date(2024, 3, 12, 0, 0, 0, 0, loc)

	units, ok := ComputeUnits(&hotel, &domain.StayRange{From: &from, To: &to})

	require.True(t, ok)
	assert.Equal(t, 3, *units.Nights)
}

func TestComputeUnits_NightlyMixedOffsets(t *testing.T) {
	hotel := newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly)
	bogota := time.FixedZone("COT", -5*3600)

	t.Run("check-out earlier in absolute time", func(t *testing.T) {
		// 04:00Z 2 января против 01:00Z 2 января
		from := time.Date(2024, 1, 1, 23, 0, 0, 0, bogota)
		to := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)
		require.False(t, to.After(from))

		_, ok := ComputeUnits(&hotel, &domain.StayRange{From: &from, To: &to})

		assert.False(t, ok)
	})

	t.Run("days are counted in check-in zone", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 20, 0, 0, 0, bogota)
		to := time.Date(2024, 1, 4, 2, 0, 0, 0, time.UTC) // 3 января 21:00 в COT

		units, ok := ComputeUnits(&hotel, &domain.StayRange{From: &from, To: &to})

		require.True(t, ok)
		assert.Equal(t, 2, *units.Nights)
	})
}

func TestComputeUnits_NightlyCountsCalendarDaysNotHours(t *testing.T) {
	hotel := newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly)

	// 25 часов: 09:00 первого дня до 10:00 второго. Считаются даты, а не часы.
	units, ok := ComputeUnits(&hotel, &domain.StayRange{From: date(2024, 1, 1, 9), To: date(2024, 1, 2, 10)})

	require.True(t, ok)
	assert.Equal(t, 1, *units.Nights)
	assert.Equal(t, 1, units.Multiplier)
}

func TestComputeUnits_NonNightlyIgnoresStay(t *testing.T) {
	stay := &domain.StayRange{From: date(2024, 1, 1, 0), To: date(2024, 1, 11, 0)}

	for _, unit := range []domain.PricingUnit{
		domain.PricingHourly,
		domain.PricingDaily,
		domain.PricingSession,
		domain.PricingPackage,
	} {
		t.Run(string(unit), func(t *testing.T) {
			service := newService(2, domain.ServiceTypeDaycare, domain.CategoryMain, "30", unit)

			withStay, ok := ComputeUnits(&service, stay)
			require.True(t, ok)
			assert.Equal(t, 1, withStay.Multiplier)
			assert.Nil(t, withStay.Nights)

			withoutStay, ok := ComputeUnits(&service, nil)
			require.True(t, ok)
			assert.Equal(t, 1, withoutStay.Multiplier)
		})
	}
}

func TestNewStayRange_SameDateCollapses(t *testing.T) {
	from := date(2024, 1, 1, 0)
	to := date(2024, 1, 1, 0)

	stay := domain.NewStayRange(from, to)

	assert.Equal(t, from, stay.From)
	assert.Nil(t, stay.To)
	assert.False(t, stay.IsComplete())

	hotel := newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly)
	_, ok := ComputeUnits(&hotel, &stay)
	assert.False(t, ok)
}
