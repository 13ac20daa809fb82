package resolve_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/autoload/pkg/resolve"
)

// countingResolver records how many times each path was resolved.
type countingResolver struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func newCountingResolver() *countingResolver {
	return &countingResolver{calls: map[string]int{}}
}

func (c *countingResolver) Resolve(path string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[path]++
	if c.err != nil {
		return nil, c.err
	}
	return "value:" + path, nil
}

func (c *countingResolver) count(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[path]
}

func TestCache_MemoizesPerPath(t *testing.T) {
	inner := newCountingResolver()
	cache := resolve.NewCache(inner)

	for i := 0; i < 3; i++ {
		got, err := cache.Resolve("/a/one.yaml")
		require.NoError(t, err)
		assert.Equal(t, "value:/a/one.yaml", got)
	}
	_, err := cache.Resolve("/b/two.yaml")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.count("/a/one.yaml"))
	assert.Equal(t, 1, inner.count("/b/two.yaml"))
	assert.Equal(t, 2, cache.Len())
}

func TestCache_ForgetForcesReload(t *testing.T) {
	inner := newCountingResolver()
	cache := resolve.NewCache(inner)

	_, err := cache.Resolve("/a/one.yaml")
	require.NoError(t, err)
	cache.Forget("/a/one.yaml")
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Resolve("/a/one.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.count("/a/one.yaml"))
}

func TestCache_DoesNotStoreFailures(t *testing.T) {
	inner := newCountingResolver()
	inner.err = errors.New("decode failed")
	cache := resolve.NewCache(inner)

	_, err := cache.Resolve("/a/bad.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrResolution)
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Resolve("/a/bad.yaml")
	require.Error(t, err)
	assert.Equal(t, 2, inner.count("/a/bad.yaml"))
}

func TestCache_ConcurrentCallersShareResult(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cache := resolve.NewCache(resolve.ResolverFunc(func(path string) (any, error) {
		calls.Add(1)
		<-release
		return path, nil
	}))

	var wg sync.WaitGroup
	var started sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		started.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			_, _ = cache.Resolve("/shared.yaml")
		}()
	}
	started.Wait()
	close(release)
	wg.Wait()

	// Late arrivals hit the stored value; early ones share one in-flight call.
	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.Equal(t, 1, cache.Len())
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, resolve.Default(), resolve.Default())
}
