package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	"github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
	"github.com/m04kA/PawsCheckinService/pkg/authctx"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

// Service загрузка каталога услуг компании.
// Параллельные загрузки одной компании объединяются в один запрос к источнику.
type Service struct {
	source  Source
	cache   Cache
	metrics Metrics
	logger  Logger
	group   singleflight.Group
}

// NewService создает сервис каталога. cache может быть nil, тогда кэш не используется.
func NewService(source Source, cache Cache, metrics Metrics, logger Logger) *Service {
	return &Service{
		source:  source,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// Services возвращает активные услуги компании: сначала из кэша, затем из источника
func (s *Service) Services(ctx context.Context, companyID int64) ([]domain.Service, error) {
	if s.cache != nil {
		services, err := s.cache.Get(ctx, companyID)
		if err == nil {
			s.metrics.CatalogLoad(metrics.CatalogCacheHit)
			return services, nil
		}
		s.logger.Info("Services: cache miss for company=%d: %v", companyID, err)
	}

	s.metrics.CatalogLoad(metrics.CatalogCacheMiss)
	return s.load(ctx, companyID)
}

// Refresh загружает каталог из источника в обход кэша и обновляет кэш.
// Если источник недоступен, закэшированная копия сбрасывается.
func (s *Service) Refresh(ctx context.Context, companyID int64) ([]domain.Service, error) {
	services, err := s.load(ctx, companyID)
	if err != nil && s.cache != nil {
		if invErr := s.cache.Invalidate(ctx, companyID); invErr != nil {
			s.logger.Warn("Refresh: failed to invalidate cache for company=%d: %v", companyID, invErr)
		}
	}
	return services, err
}

// View возвращает каталог компании для выбранного типа услуги
func (s *Service) View(ctx context.Context, companyID int64, serviceType domain.ServiceType) (domain.CatalogView, error) {
	if !serviceType.IsValid() {
		return domain.CatalogView{}, fmt.Errorf("%w: %s", ErrInvalidServiceType, serviceType)
	}

	services, err := s.Services(ctx, companyID)
	if err != nil {
		return domain.CatalogView{}, err
	}
	return pricing.Partition(services, serviceType), nil
}

// ServiceTypes возвращает типы услуг, которые компания может оформить
func (s *Service) ServiceTypes(ctx context.Context, companyID int64) ([]domain.ServiceType, error) {
	services, err := s.Services(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return pricing.AvailableServiceTypes(services), nil
}

func (s *Service) load(ctx context.Context, companyID int64) ([]domain.Service, error) {
	result, err, _ := s.group.Do(loadKey(ctx, companyID), func() (interface{}, error) {
		services, err := s.source.ServicesByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		return activeOnly(services), nil
	})
	if err != nil {
		s.metrics.CatalogLoad(metrics.CatalogError)
		if errors.Is(err, petapi.ErrUnauthorized) {
			s.logger.Warn("load: catalog source rejected token for company=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: company=%d: %v", ErrUnauthorized, companyID, err)
		}
		s.logger.Error("load: failed to load catalog for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: company=%d: %v", ErrCatalogUnavailable, companyID, err)
	}

	services := result.([]domain.Service)

	if s.cache != nil {
		if err := s.cache.Set(ctx, companyID, services); err != nil {
			s.logger.Warn("load: failed to cache catalog for company=%d: %v", companyID, err)
		}
	}

	s.logger.Info("load: loaded %d services for company=%d", len(services), companyID)
	return services, nil
}

// activeOnly отбрасывает неактивные услуги. Источник может их вернуть, если фильтр не поддерживается.
func activeOnly(services []domain.Service) []domain.Service {
	active := make([]domain.Service, 0, len(services))
	for _, service := range services {
		if service.Active {
			active = append(active, service)
		}
	}
	return active
}

// loadKey объединяет загрузки одной компании только для одного и того же токена,
// чтобы ответ API для одного сотрудника не достался другому
func loadKey(ctx context.Context, companyID int64) string {
	key := strconv.FormatInt(companyID, 10)
	if token, ok := authctx.Token(ctx); ok {
		key += ":" + token
	}
	return key
}
