package enhance

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/aidoc/internal/symptoms"
)

type countingEnhancer struct {
	out   *symptoms.Enhancement
	err   error
	calls int
}

func (c *countingEnhancer) Enhance(context.Context, symptoms.EnhanceRequest) (*symptoms.Enhancement, error) {
	c.calls++
	return c.out, c.err
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func sampleEnhancement() *symptoms.Enhancement {
	return &symptoms.Enhancement{
		Disclaimer: "Call 102 or 108 in an emergency.",
		Conditions: []symptoms.Condition{{Name: "Flu", Probability: 70, Severity: symptoms.Moderate}},
	}
}

func TestCachedStoresAndServesHits(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &countingEnhancer{out: sampleEnhancement()}
	cached := NewCached(next, rdb, 10*time.Minute, nil)
	req := symptoms.EnhanceRequest{Symptoms: "Fever", Tokens: []string{"fever"}}

	first, err := cached.Enhance(context.Background(), req)
	require.NoError(t, err)
	second, err := cached.Enhance(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)

	key := CacheKey([]string{"fever"})
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &countingEnhancer{err: symptoms.ErrMalformedEnhancement}
	cached := NewCached(next, rdb, time.Minute, nil)
	req := symptoms.EnhanceRequest{Tokens: []string{"rash"}}

	_, err := cached.Enhance(context.Background(), req)
	assert.ErrorIs(t, err, symptoms.ErrMalformedEnhancement)
	_, err = cached.Enhance(context.Background(), req)
	assert.ErrorIs(t, err, symptoms.ErrMalformedEnhancement)

	assert.Equal(t, 2, next.calls)
	assert.Empty(t, mr.Keys())
}

func TestCachedExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &countingEnhancer{out: sampleEnhancement()}
	cached := NewCached(next, rdb, time.Minute, nil)
	req := symptoms.EnhanceRequest{Tokens: []string{"cough"}}

	_, err := cached.Enhance(context.Background(), req)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = cached.Enhance(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
}

func TestCachedIgnoresRedisOutage(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Close()

	next := &countingEnhancer{out: sampleEnhancement()}
	cached := NewCached(next, rdb, time.Minute, nil)

	out, err := cached.Enhance(context.Background(), symptoms.EnhanceRequest{Tokens: []string{"fever"}})
	require.NoError(t, err)
	assert.Equal(t, "Flu", out.Conditions[0].Name)
	assert.Equal(t, 1, next.calls)
}

func TestCachedDiscardsCorruptEntries(t *testing.T) {
	mr, rdb := newTestRedis(t)
	key := CacheKey([]string{"fever"})
	require.NoError(t, mr.Set(key, "{not json"))

	next := &countingEnhancer{out: sampleEnhancement()}
	cached := NewCached(next, rdb, time.Minute, nil)

	_, err := cached.Enhance(context.Background(), symptoms.EnhanceRequest{Tokens: []string{"fever"}})
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
}

func TestCacheKeyDependsOnTokenOrder(t *testing.T) {
	a := CacheKey([]string{"cough", "fever"})
	b := CacheKey([]string{"fever", "cough"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CacheKey([]string{"cough", "fever"}))
	assert.Contains(t, a, "aidoc:enhance:")
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer rdb.Close()

	_, err = NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)

	mr.Close()
	_, err = NewRedisClient(context.Background(), "redis://"+mr.Addr())
	assert.Error(t, err)
}
