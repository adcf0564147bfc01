package models

import (
	"strings"
	"time"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// GuestsFilter фильтр списка текущих гостей
type GuestsFilter string

const (
	GuestsFilterAll     GuestsFilter = "all"
	GuestsFilterStays   GuestsFilter = "stays"
	GuestsFilterDaycare GuestsFilter = "daycare"
)

// IsValid проверяет, что фильтр известен
func (f GuestsFilter) IsValid() bool {
	return f == GuestsFilterAll || f == GuestsFilterStays || f == GuestsFilterDaycare
}

// Matches проверяет, подходит ли тип основной услуги под фильтр
func (f GuestsFilter) Matches(serviceType *domain.ServiceType) bool {
	switch f {
	case GuestsFilterStays:
		return serviceType != nil && *serviceType == domain.ServiceTypeHotel
	case GuestsFilterDaycare:
		return serviceType != nil && *serviceType == domain.ServiceTypeDaycare
	default:
		return true
	}
}

// GuestResponse собака, которая сейчас находится у компании
type GuestResponse struct {
	ReservationID int64   `json:"reservationId"`
	DogID         int64   `json:"dogId"`
	DogName       string  `json:"dogName"`
	Breed         string  `json:"breed,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	OwnerName     string  `json:"ownerName"`
	ServiceType   *string `json:"serviceType"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	CheckIn       *string `json:"checkIn"`
	CheckOut      *string `json:"checkOut"`
	Total         string  `json:"total"`
}

// GuestCounts количество гостей по каждому фильтру
type GuestCounts struct {
	All     int `json:"all"`
	Stays   int `json:"stays"`
	Daycare int `json:"daycare"`
}

// CurrentGuestsResponse текущие гости
type CurrentGuestsResponse struct {
	Filter string          `json:"filter"`
	Counts GuestCounts     `json:"counts"`
	Guests []GuestResponse `json:"guests"`
}

// RevenueByServiceType выручка по типу основной услуги
type RevenueByServiceType struct {
	ServiceType string `json:"serviceType"`
	Amount      string `json:"amount"`
}

// TodaysRevenueResponse выручка за сегодня
type TodaysRevenueResponse struct {
	Date          string                 `json:"date"` // "2024-01-01"
	Total         string                 `json:"total"`
	Paid          string                 `json:"paid"`
	Unpaid        string                 `json:"unpaid"`
	Refunded      string                 `json:"refunded"`
	Reservations  int                    `json:"reservations"`
	ByServiceType []RevenueByServiceType `json:"byServiceType"`
}

// FromDomainReservation конвертирует бронирование в строку списка гостей
func FromDomainReservation(r *domain.Reservation) GuestResponse {
	guest := GuestResponse{
		ReservationID: r.ID,
		DogID:         r.DogID,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		CheckIn:       formatTime(r.CheckIn),
		CheckOut:      formatTime(r.CheckOut),
		Total:         r.Total().StringFixed(domain.MoneyPlaces),
	}

	if r.Dog != nil {
		guest.DogName = r.Dog.Name
		guest.Breed = r.Dog.Breed
		guest.ImageURL = r.Dog.ImageURL
		guest.OwnerName = ownerName(r.Dog)
	}

	if t := r.MainServiceType(); t != nil {
		s := string(*t)
		guest.ServiceType = &s
	}

	return guest
}

// ownerName имя и фамилия владельца без пустых частей
func ownerName(dog *domain.ReservationDog) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{dog.OwnerName, dog.OwnerLastname} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(domain.DateTimeFormat)
	return &s
}
