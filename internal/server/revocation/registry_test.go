package revocation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RevokeAndCheck(t *testing.T) {
	r := New()
	exp := time.Now().Add(time.Hour)

	assert.False(t, r.IsRevoked("t1"))
	r.Revoke("t1", exp)
	assert.True(t, r.IsRevoked("t1"))
	assert.False(t, r.IsRevoked("t2"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RevokeIdempotent(t *testing.T) {
	r := New()
	exp := time.Now().Add(time.Hour)

	r.Revoke("t1", exp)
	r.Revoke("t1", exp)
	r.Revoke("t1", exp.Add(-30*time.Minute))
	assert.Equal(t, 1, r.Len())

	// the earlier expiry must not shorten the entry
	assert.Equal(t, 0, r.Sweep(exp.Add(-time.Minute)))
	assert.True(t, r.IsRevoked("t1"))
}

func TestRegistry_Sweep(t *testing.T) {
	r := New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r.Revoke("past", now.Add(-time.Second))
	r.Revoke("exact", now)
	r.Revoke("future", now.Add(time.Second))

	assert.Equal(t, 2, r.Sweep(now))
	assert.False(t, r.IsRevoked("past"))
	assert.False(t, r.IsRevoked("exact"))
	assert.True(t, r.IsRevoked("future"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Run(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := New().WithClock(func() time.Time { return now })
	r.Revoke("old", now.Add(-time.Minute))
	r.Revoke("live", now.Add(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 16)
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond, func(n int) { swept <- n })
		close(done)
	}()

	select {
	case n := <-swept:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not run")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.False(t, r.IsRevoked("old"))
	assert.True(t, r.IsRevoked("live"))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New()
	exp := time.Now().Add(time.Hour)

	const workers, perWorker = 8, 200
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tok := fmt.Sprintf("tok-%d-%d", w, i)
				r.Revoke(tok, exp)
				// visible to the revoking goroutine right away
				if !r.IsRevoked(tok) {
					t.Errorf("%s not visible after Revoke", tok)
				}
				r.IsRevoked(fmt.Sprintf("tok-%d-%d", (w+1)%workers, i))
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, r.Len())
}
