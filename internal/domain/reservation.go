package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind вид позиции бронирования
type ItemKind string

const (
	ItemKindMain  ItemKind = "MAIN"
	ItemKindAddon ItemKind = "ADDON"
	// DISCOUNT и FEE зарезервированы, расчет их не создает
	ItemKindDiscount ItemKind = "DISCOUNT"
	ItemKindFee      ItemKind = "FEE"
)

// ReservationItem позиция бронирования
type ReservationItem struct {
	ServiceID  int64
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Kind       ItemKind
}

// Units множитель тарификации основной услуги
type Units struct {
	Multiplier int
	Nights     *int // nil для всех единиц кроме NIGHTLY
}

// PricingResult результат расчета: позиции в порядке отправки и итоговая сумма
type PricingResult struct {
	Items  []ReservationItem
	Total  decimal.Decimal
	Nights *int
}

// MainItem возвращает основную позицию
func (r *PricingResult) MainItem() *ReservationItem {
	for i := range r.Items {
		if r.Items[i].Kind == ItemKindMain {
			return &r.Items[i]
		}
	}
	return nil
}

// ReservationStatus статус бронирования во внешнем API
type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "PENDING"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationStatusCheckedOut ReservationStatus = "CHECKED_OUT"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ReservationRequest данные для создания бронирования во внешнем API
type ReservationRequest struct {
	DogID     int64
	CompanyID int64
	Items     []ReservationItem
	CheckIn   *time.Time
	CheckOut  *time.Time
}

// ReservationDog данные собаки, денормализованные в бронировании
type ReservationDog struct {
	ID            int64
	Name          string
	Breed         string
	ImageURL      *string
	OwnerName     string
	OwnerLastname string
}

// ReservationLine позиция созданного бронирования (как ее отдает внешний API)
type ReservationLine struct {
	ID          int64
	Name        string
	Kind        ItemKind
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	ServiceID   *int64
	ServiceType *ServiceType
}

// Reservation бронирование во внешнем API
type Reservation struct {
	ID            int64
	DogID         int64
	CompanyID     int64
	Status        ReservationStatus
	PaymentStatus PaymentStatus
	CheckIn       *time.Time
	CheckOut      *time.Time
	Dog           *ReservationDog
	Items         []ReservationLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MainServiceType возвращает тип основной услуги бронирования
func (r *Reservation) MainServiceType() *ServiceType {
	for _, item := range r.Items {
		if item.Kind == ItemKindMain {
			return item.ServiceType
		}
	}
	return nil
}

// Total сумма всех позиций бронирования
func (r *Reservation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// ReservationsFilter фильтр списка бронирований компании
type ReservationsFilter struct {
	CompanyID int64
	From      *time.Time
	To        *time.Time
	Status    *ReservationStatus
}
