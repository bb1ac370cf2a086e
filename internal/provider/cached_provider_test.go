package provider

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateCache_GetRate(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	sell := "AUD"
	buy := "USD"
	rate := decimal.RequireFromString("0.6543")
	ttl := time.Hour

	t.Run("cache miss then hit", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(rate, nil).Once()

		cached := NewRateCache(mockProv, rdb, ttl)

		// First call - cache miss
		got, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)
		assert.True(t, got.Equal(rate))
		mockProv.AssertExpectations(t)

		// Second call - cache hit (MockProvider must NOT be called again because of .Once())
		got2, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)
		assert.True(t, got2.Equal(rate))
	})

	t.Run("pairs are cached independently", func(t *testing.T) {
		mr.FlushAll()
		otherRate := decimal.RequireFromString("55.5")
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(rate, nil).Once()
		mockProv.On("GetRate", mock.Anything, "USD", "INR").Return(otherRate, nil).Once()

		cached := NewRateCache(mockProv, rdb, ttl)

		_, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)

		// Fetching a different pair must not evict the first pair's entry.
		got, err := cached.GetRate(context.Background(), "USD", "INR")
		assert.NoError(t, err)
		assert.True(t, got.Equal(otherRate))

		first, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)
		assert.True(t, first.Equal(rate))
		mockProv.AssertExpectations(t)
	})

	t.Run("provider error propagates and is not cached", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(decimal.Decimal{}, assert.AnError).Once()

		cached := NewRateCache(mockProv, rdb, ttl)

		_, err := cached.GetRate(context.Background(), sell, buy)
		assert.Error(t, err)

		// Second call - provider should be called again
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(rate, nil).Once()
		got, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)
		assert.True(t, got.Equal(rate))
		mockProv.AssertExpectations(t)
	})

	t.Run("cache expires after TTL", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(rate, nil).Once()

		cached := NewRateCache(mockProv, rdb, ttl)

		_, _ = cached.GetRate(context.Background(), sell, buy)

		mr.FastForward(ttl + time.Second)

		// Entry expired, should call provider again
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(rate, nil).Once()
		_, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)
		mockProv.AssertExpectations(t)
	})

	t.Run("nil cache falls through to provider", func(t *testing.T) {
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, sell, buy).Return(rate, nil).Once()

		cached := NewRateCache(mockProv, nil, ttl)

		got, err := cached.GetRate(context.Background(), sell, buy)
		assert.NoError(t, err)
		assert.True(t, got.Equal(rate))
		mockProv.AssertExpectations(t)
	})
}
