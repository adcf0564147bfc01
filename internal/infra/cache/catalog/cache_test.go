package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// fakeRedis хранит значения в map, TTL только запоминает
type fakeRedis struct {
	values map[string][]byte
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.values, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestCache_SetGet(t *testing.T) {
	client := newFakeRedis()
	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	services := []domain.Service{
		{
			ID:          1,
			CompanyID:   7,
			Name:        "Hospedaje",
			Type:        domain.ServiceTypeHotel,
			Category:    domain.CategoryMain,
			Price:       decimal.RequireFromString("45.50"),
			PricingUnit: domain.PricingNightly,
			Active:      true,
		},
	}

	require.NoError(t, cache.Set(ctx, 7, services))
	assert.Equal(t, time.Minute, client.ttls["catalog:company:7"])

	got, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hospedaje", got[0].Name)
	assert.Equal(t, domain.PricingNightly, got[0].PricingUnit)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("45.5")))
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache(newFakeRedis(), time.Minute)

	_, err := cache.Get(context.Background(), 7)

	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_RedisError(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")
	cache := NewCache(client, time.Minute)

	_, err := cache.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrCache)

	err = cache.Set(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_CorruptedValue(t *testing.T) {
	client := newFakeRedis()
	client.values[Key(7)] = []byte("{")
	cache := NewCache(client, time.Minute)

	_, err := cache.Get(context.Background(), 7)

	assert.ErrorIs(t, err, ErrDecode)
}

func TestCache_Invalidate(t *testing.T) {
	client := newFakeRedis()
	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 7, []domain.Service{}))
	require.NoError(t, cache.Invalidate(ctx, 7))

	_, err := cache.Get(ctx, 7)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
