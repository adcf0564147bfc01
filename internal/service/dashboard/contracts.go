package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// ReservationsLister интерфейс получения бронирований компании
type ReservationsLister interface {
	ReservationsByCompany(ctx context.Context, filter domain.ReservationsFilter) ([]domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
