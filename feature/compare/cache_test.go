package compare

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCache(t *testing.T) {
	t.Run("ReusesFreshEntry", func(t *testing.T) {
		c := newTableCache(time.Minute)
		var builds int32
		build := func() (*parsed, error) {
			atomic.AddInt32(&builds, 1)
			return &parsed{}, nil
		}

		first, err := c.getOrBuild("k", build)
		require.NoError(t, err)
		second, err := c.getOrBuild("k", build)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), builds)
	})

	t.Run("RebuildsExpiredEntry", func(t *testing.T) {
		c := newTableCache(time.Minute)
		now := time.Now()
		c.now = func() time.Time { return now }

		var builds int32
		build := func() (*parsed, error) {
			atomic.AddInt32(&builds, 1)
			return &parsed{}, nil
		}

		_, _ = c.getOrBuild("k", build)
		now = now.Add(2 * time.Minute)
		_, _ = c.getOrBuild("k", build)
		assert.Equal(t, int32(2), builds)

		now = now.Add(2 * time.Minute)
		c.prune()
		assert.Empty(t, c.entries)
	})

	t.Run("DisabledWithZeroTTL", func(t *testing.T) {
		c := newTableCache(0)
		var builds int32
		build := func() (*parsed, error) {
			atomic.AddInt32(&builds, 1)
			return &parsed{}, nil
		}

		_, _ = c.getOrBuild("k", build)
		_, _ = c.getOrBuild("k", build)
		assert.Equal(t, int32(2), builds)
		assert.Empty(t, c.entries)
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		c := newTableCache(time.Minute)
		_, err := c.getOrBuild("k", func() (*parsed, error) { return nil, errors.New("boom") })
		assert.Error(t, err)

		p, err := c.getOrBuild("k", func() (*parsed, error) { return &parsed{}, nil })
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("ConcurrentBuildsShareOneCall", func(t *testing.T) {
		c := newTableCache(time.Minute)
		var builds int32
		release := make(chan struct{})
		build := func() (*parsed, error) {
			atomic.AddInt32(&builds, 1)
			<-release
			return &parsed{}, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = c.getOrBuild("k", build)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), builds)
		assert.Len(t, c.entries, 1)
	})
}
