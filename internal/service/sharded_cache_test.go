//go:build !integration

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		ttl        time.Duration
		numShards  int
		wantShards int
	}{
		{
			name:       "default shards when zero",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  0,
			wantShards: 16,
		},
		{
			name:       "default shards when negative",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  -1,
			wantShards: 16,
		},
		{
			name:       "rounds up to power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  3,
			wantShards: 4,
		},
		{
			name:       "exact power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  8,
			wantShards: 8,
		},
		{
			name:       "rounds 5 to 8",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  5,
			wantShards: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewShardedCache(tt.capacity, tt.ttl, tt.numShards)
			defer sc.Stop()

			assert.Equal(t, tt.wantShards, sc.numShards)
			assert.Equal(t, uint32(tt.wantShards-1), sc.shardMask)
			assert.Len(t, sc.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_MinimumPerShardCapacity(t *testing.T) {
	// Total capacity below the shard count still leaves room for one
	// entry per shard.
	sc := NewShardedCache(4, time.Minute, 16)
	defer sc.Stop()

	for _, shard := range sc.shards {
		assert.Equal(t, 1, shard.Metrics().Capacity)
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	for i := 0; i < 20; i++ {
		sc.Set(fmt.Sprintf("fp-%d", i), cachedResult(float64(i)))
	}

	for i := 0; i < 20; i++ {
		value, found := sc.Get(fmt.Sprintf("fp-%d", i))
		assert.True(t, found)
		assert.Equal(t, float64(i), value.TotalProjectedValue)
	}

	_, found := sc.Get("missing")
	assert.False(t, found)
}

func TestShardedCache_SameKeySameShard(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 8)
	defer sc.Stop()

	shard := sc.getShard("fp-stable")
	for i := 0; i < 10; i++ {
		assert.Same(t, shard, sc.getShard("fp-stable"))
	}
}

func TestShardedCache_Invalidate(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	sc.Set("fp-1", cachedResult(100))
	sc.Set("fp-2", cachedResult(200))

	sc.Invalidate("fp-1")

	_, found := sc.Get("fp-1")
	assert.False(t, found)
	_, found = sc.Get("fp-2")
	assert.True(t, found)
}

func TestShardedCache_Clear(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	for i := 0; i < 10; i++ {
		sc.Set(fmt.Sprintf("fp-%d", i), cachedResult(float64(i)))
	}

	sc.Clear()

	assert.Equal(t, 0, sc.Metrics().Size)
	for i := 0; i < 10; i++ {
		_, found := sc.Get(fmt.Sprintf("fp-%d", i))
		assert.False(t, found)
	}
}

func TestShardedCache_MetricsAggregation(t *testing.T) {
	sc := NewShardedCache(64, time.Minute, 4)
	defer sc.Stop()

	sc.Set("fp-1", cachedResult(100))
	sc.Set("fp-2", cachedResult(200))
	sc.Get("fp-1")
	sc.Get("fp-2")
	sc.Get("missing")

	m := sc.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 2, m.Size)
	assert.Equal(t, 64, m.Capacity)
}

func TestShardedCache_ConcurrentAccess(t *testing.T) {
	sc := NewShardedCache(128, time.Minute, 8)
	defer sc.Stop()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(worker int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("fp-%d", j%40)
				sc.Set(key, cachedResult(float64(worker)))
				sc.Get(key)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.LessOrEqual(t, sc.Metrics().Size, 128)
}
