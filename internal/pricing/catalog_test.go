package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

func newService(id int64, t domain.ServiceType, c domain.ServiceCategory, price string, unit domain.PricingUnit) domain.Service {
	return domain.Service{
		ID:          id,
		CompanyID:   1,
		Name:        "service",
		Type:        t,
		Category:    c,
		Price:       decimal.RequireFromString(price),
		PricingUnit: unit,
		Active:      true,
	}
}

func ids(services []domain.Service) []int64 {
	result := make([]int64, 0, len(services))
	for _, s := range services {
		result = append(result, s.ID)
	}
	return result
}

func TestPartition(t *testing.T) {
	services := []domain.Service{
		newService(5, domain.ServiceTypeHotel, domain.CategoryAddon, "25", domain.PricingSession),
		newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly),
		newService(2, domain.ServiceTypeDaycare, domain.CategoryMain, "30", domain.PricingSession),
		newService(3, domain.ServiceTypeHotel, domain.CategoryMain, "60", domain.PricingNightly),
		newService(4, domain.ServiceTypeHotel, domain.CategoryAddon, "10", domain.PricingSession),
	}

	t.Run("splits by category and keeps upstream order", func(t *testing.T) {
		view := Partition(services, domain.ServiceTypeHotel)

		assert.Equal(t, domain.ServiceTypeHotel, view.Type)
		assert.Equal(t, []int64{1, 3}, ids(view.Main))
		assert.Equal(t, []int64{5, 4}, ids(view.Addons))
	})

	t.Run("type without services", func(t *testing.T) {
		view := Partition(services, domain.ServiceTypeGrooming)

		assert.Empty(t, view.Main)
		assert.Empty(t, view.Addons)
	})

	t.Run("empty input", func(t *testing.T) {
		view := Partition(nil, domain.ServiceTypeHotel)

		assert.NotNil(t, view.Main)
		assert.NotNil(t, view.Addons)
		assert.Empty(t, view.Main)
	})
}

func TestAvailableServiceTypes(t *testing.T) {
	services := []domain.Service{
		newService(1, domain.ServiceTypeGrooming, domain.CategoryAddon, "5", domain.PricingSession),
		newService(2, domain.ServiceTypeDaycare, domain.CategoryMain, "30", domain.PricingSession),
		newService(3, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly),
		newService(4, domain.ServiceTypeDaycare, domain.CategoryMain, "35", domain.PricingSession),
	}

	assert.Equal(t,
		[]domain.ServiceType{domain.ServiceTypeDaycare, domain.ServiceTypeHotel},
		AvailableServiceTypes(services),
	)
	assert.Empty(t, AvailableServiceTypes(nil))
}

func TestCatalogView_ResolveMain(t *testing.T) {
	single := Partition([]domain.Service{
		newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly),
	}, domain.ServiceTypeHotel)

	main, ok := single.ResolveMain(nil)
	assert.True(t, ok)
	assert.Equal(t, int64(1), main.ID)

	several := Partition([]domain.Service{
		newService(1, domain.ServiceTypeHotel, domain.CategoryMain, "45", domain.PricingNightly),
		newService(2, domain.ServiceTypeHotel, domain.CategoryMain, "55", domain.PricingNightly),
	}, domain.ServiceTypeHotel)

	_, ok = several.ResolveMain(nil)
	assert.False(t, ok)

	selected := int64(2)
	main, ok = several.ResolveMain(&selected)
	assert.True(t, ok)
	assert.Equal(t, int64(2), main.ID)

	unknown := int64(9)
	_, ok = several.ResolveMain(&unknown)
	assert.False(t, ok)
}
