package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий заезда
type SessionRepository interface {
	Create(ctx context.Context, session *domain.CheckinSession) error
	Get(ctx context.Context, id uuid.UUID) (*domain.CheckinSession, error)
	Update(ctx context.Context, id uuid.UUID, fn func(session *domain.CheckinSession) error) (*domain.CheckinSession, error)
}

// CatalogProvider интерфейс сервиса каталога
type CatalogProvider interface {
	View(ctx context.Context, companyID int64, serviceType domain.ServiceType) (domain.CatalogView, error)
}

// DogDirectory реестр собак компании
type DogDirectory interface {
	CompanyDogs(ctx context.Context, companyID int64) ([]domain.Dog, error)
}

// Metrics метрики сессий заезда
type Metrics interface {
	CheckinEvent(event string)
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
