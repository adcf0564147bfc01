package domain

import (
	"github.com/shopspring/decimal"
)

// ServiceType тип услуги (направление бизнеса)
type ServiceType string

const (
	ServiceTypeHotel    ServiceType = "HOTEL"
	ServiceTypeDaycare  ServiceType = "DAYCARE"
	ServiceTypeTraining ServiceType = "TRAINING"
	ServiceTypeGrooming ServiceType = "GROOMING"
)

// IsValid проверяет, что тип услуги известен
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeHotel, ServiceTypeDaycare, ServiceTypeTraining, ServiceTypeGrooming:
		return true
	}
	return false
}

// ServiceCategory категория услуги: основная или дополнительная
type ServiceCategory string

const (
	CategoryMain  ServiceCategory = "MAIN"
	CategoryAddon ServiceCategory = "ADDON"
)

// PricingUnit единица тарификации услуги
type PricingUnit string

const (
	PricingHourly  PricingUnit = "HOURLY"
	PricingDaily   PricingUnit = "DAILY"
	PricingNightly PricingUnit = "NIGHTLY"
	PricingSession PricingUnit = "SESSION"
	PricingPackage PricingUnit = "PACKAGE"
)

// Service услуга компании.
// Только для чтения: услуги создаются и редактируются во внешнем сервисе управления услугами.
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	Type            ServiceType
	Category        ServiceCategory
	Price           decimal.Decimal // Цена за одну единицу тарификации
	PricingUnit     PricingUnit
	DurationMinutes int    // Только для отображения (SESSION/HOURLY/PACKAGE)
	StartTime       string // "HH:MM"
	EndTime         string // "HH:MM"
	DaysAvailable   []string
	Active          bool
}

// IsMain returns true if the service is a billable base offering
func (s *Service) IsMain() bool {
	return s.Category == CategoryMain
}

// IsAddon returns true if the service is an optional extra
func (s *Service) IsAddon() bool {
	return s.Category == CategoryAddon
}

// IsNightly returns true if the service is charged per night
func (s *Service) IsNightly() bool {
	return s.PricingUnit == PricingNightly
}
