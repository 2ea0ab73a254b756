package jvm

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassCacheConcurrentFirstAccess(t *testing.T) {
	env := newFakeEnv()
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	env.findHook = func() {
		once.Do(func() { close(started) })
		<-release
	}
	cache := NewClassCache("com/example/Foo")

	var wg sync.WaitGroup
	handles := make([]Handle, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		handles[0], errs[0] = cache.Get(New(env))
	}()
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		handles[1], errs[1] = cache.Get(New(env))
	}()
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 1, env.findCalls)
	assert.Equal(t, handles[0], handles[1])
	assert.NotZero(t, handles[0])
}

func TestClassCacheRetriesAfterFailure(t *testing.T) {
	env := newFakeEnv()
	env.findErr = []error{errors.New("NoClassDefFoundError")}
	cache := NewClassCache("com/example/Foo")
	j := New(env)

	_, err := cache.Get(j)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find class com/example/Foo")
	assert.Equal(t, 1, env.findCalls)

	h, err := cache.Get(j)
	require.NoError(t, err)
	assert.Equal(t, 2, env.findCalls)

	again, err := cache.Get(j)
	require.NoError(t, err)
	assert.Equal(t, h, again)
	assert.Equal(t, 2, env.findCalls)
}

func TestClassCacheReleasesLocalClassRef(t *testing.T) {
	env := newFakeEnv()
	cache := NewClassCache("a/B")
	h, err := cache.Get(New(env))
	require.NoError(t, err)

	require.Len(t, env.globals, 1)
	assert.Equal(t, env.globals[0], h)
	require.Len(t, env.deleted, 1)
	assert.NotEqual(t, h, env.deleted[0])
	assert.Equal(t, "a/B", cache.Name())
}

func TestClassCacheManyGoroutines(t *testing.T) {
	env := newFakeEnv()
	cache := NewClassCache("a/B")

	const n = 32
	var wg sync.WaitGroup
	results := make([]Handle, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := cache.Get(New(env))
			assert.NoError(t, err)
			results[i] = h
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, env.findCalls)
	for _, h := range results {
		assert.Equal(t, results[0], h)
	}
}
