package lazy_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/autoload/pkg/lazy"
)

func TestValue_NotComputedUntilGet(t *testing.T) {
	calls := 0
	v := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	assert.Equal(t, 0, calls, "construction must not run the computation")
	assert.False(t, v.Loaded())

	got, err := v.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
	assert.True(t, v.Loaded())
}

func TestValue_CachesSuccess(t *testing.T) {
	calls := 0
	v := lazy.New(func() (string, error) {
		calls++
		return "loaded", nil
	})

	for i := 0; i < 5; i++ {
		got, err := v.Get()
		require.NoError(t, err)
		assert.Equal(t, "loaded", got)
	}
	assert.Equal(t, 1, calls, "successful result must be computed exactly once")
}

func TestValue_RetriesAfterFailure(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	v := lazy.New(func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 7, nil
	})

	_, err := v.Get()
	require.ErrorIs(t, err, boom)
	assert.False(t, v.Loaded(), "failures must not be cached")

	got, err := v.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 2, calls)
}

func TestValue_ConcurrentGet(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	v := lazy.New(func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return 1, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = v.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}
