package submit_checkin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий заезда
type SessionRepository interface {
	Update(ctx context.Context, id uuid.UUID, fn func(session *domain.CheckinSession) error) (*domain.CheckinSession, error)
}

// CatalogRefresher загружает актуальный каталог в обход кэша
type CatalogRefresher interface {
	Refresh(ctx context.Context, companyID int64) ([]domain.Service, error)
}

// ReservationCreator внешний сервис создания бронирований
type ReservationCreator interface {
	CreateReservation(ctx context.Context, req *domain.ReservationRequest) (*domain.Reservation, error)
}

// Metrics метрики отправки
type Metrics interface {
	CheckinEvent(event string)
	ReservationSubmitted(total float64)
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
