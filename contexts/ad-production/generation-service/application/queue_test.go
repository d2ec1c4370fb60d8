package application_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adforge/contexts/ad-production/generation-service/application"
	domainerrors "adforge/contexts/ad-production/generation-service/domain/errors"
)

func TestPoolPreservesSubmissionOrder(t *testing.T) {
	pool := application.NewPool("order", 1, 16, nil)
	pool.Start(context.Background())

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		err := pool.Submit(context.Background(), func(context.Context) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
		require.NoError(t, err)
	}
	pool.Close()

	require.Len(t, order, 10)
	for i, got := range order {
		assert.Equal(t, i, got, "tasks must start in submission order")
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const width = 2
	pool := application.NewPool("bounded", width, 16, nil)
	pool.Start(context.Background())

	var current, peak int64
	for i := 0; i < 8; i++ {
		err := pool.Submit(context.Background(), func(context.Context) {
			now := atomic.AddInt64(&current, 1)
			for {
				seen := atomic.LoadInt64(&peak)
				if now <= seen || atomic.CompareAndSwapInt64(&peak, seen, now) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&current, -1)
		})
		require.NoError(t, err)
	}
	pool.Close()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(width))
	assert.Positive(t, atomic.LoadInt64(&peak))
}

func TestPoolSubmitAfterClose(t *testing.T) {
	pool := application.NewPool("closed", 1, 4, nil)
	pool.Start(context.Background())
	pool.Close()

	err := pool.Submit(context.Background(), func(context.Context) {})
	assert.ErrorIs(t, err, domainerrors.ErrQueueClosed)
}

func TestPoolSubmitHonoursCallerContext(t *testing.T) {
	// One slot, no workers started: the second submission has nowhere to go
	// and must fail with the caller's context error instead of blocking.
	pool := application.NewPool("full", 1, 1, nil)

	require.NoError(t, pool.Submit(context.Background(), func(context.Context) {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.Submit(ctx, func(context.Context) {})
	assert.ErrorIs(t, err, context.Canceled)
}
