package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

const keyPrefix = "catalog:company:"

// Cache каталог услуг компании в redis
type Cache struct {
	client RedisClient
	ttl    time.Duration
}

// NewCache создает кэш каталога с временем жизни записи ttl
func NewCache(client RedisClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type cachedService struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"companyId"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	PricingUnit     string          `json:"pricingUnit"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
	StartTime       string          `json:"startTime,omitempty"`
	EndTime         string          `json:"endTime,omitempty"`
	DaysAvailable   []string        `json:"daysAvailable,omitempty"`
	Active          bool            `json:"active"`
}

// Key ключ каталога компании
func Key(companyID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, companyID)
}

// Get возвращает каталог компании или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, companyID int64) ([]domain.Service, error) {
	raw, err := c.client.Get(ctx, Key(companyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get company=%d: %v", ErrCache, companyID, err)
	}

	var cached []cachedService
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: company=%d: %v", ErrDecode, companyID, err)
	}

	services := make([]domain.Service, 0, len(cached))
	for _, s := range cached {
		services = append(services, domain.Service{
			ID:              s.ID,
			CompanyID:       s.CompanyID,
			Name:            s.Name,
			Type:            domain.ServiceType(s.Type),
			Category:        domain.ServiceCategory(s.Category),
			Price:           s.Price,
			PricingUnit:     domain.PricingUnit(s.PricingUnit),
			DurationMinutes: s.DurationMinutes,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DaysAvailable:   s.DaysAvailable,
			Active:          s.Active,
		})
	}
	return services, nil
}

// Set сохраняет каталог компании
func (c *Cache) Set(ctx context.Context, companyID int64, services []domain.Service) error {
	cached := make([]cachedService, 0, len(services))
	for _, s := range services {
		cached = append(cached, cachedService{
			ID:              s.ID,
			CompanyID:       s.CompanyID,
			Name:            s.Name,
			Type:            string(s.Type),
			Category:        string(s.Category),
			Price:           s.Price,
			PricingUnit:     string(s.PricingUnit),
			DurationMinutes: s.DurationMinutes,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DaysAvailable:   s.DaysAvailable,
			Active:          s.Active,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: Set company=%d - encode: %v", ErrCache, companyID, err)
	}

	if err := c.client.Set(ctx, Key(companyID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set company=%d: %v", ErrCache, companyID, err)
	}
	return nil
}

// Invalidate удаляет каталог компании из кэша
func (c *Cache) Invalidate(ctx context.Context, companyID int64) error {
	if err := c.client.Del(ctx, Key(companyID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate company=%d: %v", ErrCache, companyID, err)
	}
	return nil
}
