package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// NightLabel возвращает подпись для количества ночей, например "3 noches"
type NightLabel func(nights int) string

// Composer собирает позиции бронирования и итоговую сумму
type Composer struct {
	nightLabel NightLabel
}

// NewComposer создает composer с подписью ночей для указанной локали.
// Неизвестная локаль заменяется на локаль по умолчанию.
func NewComposer(locale string) *Composer {
	label, ok := nightLabels[locale]
	if !ok {
		label = nightLabels[domain.DefaultNightLocale]
	}
	return &Composer{nightLabel: label}
}

var nightLabels = map[string]NightLabel{
	"es": func(n int) string {
		if n == 1 {
			return "1 noche"
		}
		return fmt.Sprintf("%d noches", n)
	},
	"en": func(n int) string {
		if n == 1 {
			return "1 night"
		}
		return fmt.Sprintf("%d nights", n)
	},
}

// SupportedLocale проверяет, что для локали есть подпись ночей
func SupportedLocale(locale string) bool {
	_, ok := nightLabels[locale]
	return ok
}

// Compose строит результат расчета.
//
// Первой всегда идет основная позиция, затем дополнительные услуги в порядке выбора.
// Выбранные ID, которых нет среди addons, пропускаются без ошибки.
// Дополнительные услуги оплачиваются один раз и не умножаются на количество ночей.
func (c *Composer) Compose(
	main *domain.Service,
	addons []domain.Service,
	selectedAddonIDs []int64,
	units domain.Units,
) domain.PricingResult {
	items := make([]domain.ReservationItem, 0, len(selectedAddonIDs)+1)

	quantity := decimal.NewFromInt(int64(units.Multiplier))
	name := main.Name
	if units.Nights != nil {
		name = fmt.Sprintf("%s (%s)", main.Name, c.nightLabel(*units.Nights))
	}

	items = append(items, domain.ReservationItem{
		ServiceID:  main.ID,
		Name:       name,
		Quantity:   units.Multiplier,
		UnitPrice:  main.Price,
		TotalPrice: main.Price.Mul(quantity),
		Kind:       domain.ItemKindMain,
	})

	for _, id := range selectedAddonIDs {
		addon, ok := findService(addons, id)
		if !ok {
			continue
		}
		items = append(items, domain.ReservationItem{
			ServiceID:  addon.ID,
			Name:       addon.Name,
			Quantity:   1,
			UnitPrice:  addon.Price,
			TotalPrice: addon.Price,
			Kind:       domain.ItemKindAddon,
		})
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}

	return domain.PricingResult{
		Items:  items,
		Total:  total,
		Nights: copyInt(units.Nights),
	}
}

// StaleAddonIDs возвращает выбранные ID, которых больше нет в каталоге
func StaleAddonIDs(addons []domain.Service, selectedAddonIDs []int64) []int64 {
	stale := make([]int64, 0)
	for _, id := range selectedAddonIDs {
		if _, ok := findService(addons, id); !ok {
			stale = append(stale, id)
		}
	}
	return stale
}

func findService(services []domain.Service, id int64) (*domain.Service, bool) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], true
		}
	}
	return nil, false
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
