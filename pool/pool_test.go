package pool

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevwan/rcluster/redis"
)

func TestCacheDialsOncePerAddr(t *testing.T) {
	dials := 0
	c := NewCache(func(addr string) (*redis.Client, error) {
		dials++
		return &redis.Client{}, nil
	})

	conn1, err := c.Get("a:1")
	require.NoError(t, err)
	conn2, err := c.Get("a:1")
	require.NoError(t, err)
	assert.Same(t, conn1, conn2)
	assert.Equal(t, 1, dials)
}

func TestCacheDialsSeparatelyPerAddr(t *testing.T) {
	dials := map[string]int{}
	c := NewCache(func(addr string) (*redis.Client, error) {
		dials[addr]++
		return &redis.Client{}, nil
	})

	_, err := c.Get("a:1")
	require.NoError(t, err)
	_, err = c.Get("b:1")
	require.NoError(t, err)
	assert.Equal(t, 1, dials["a:1"])
	assert.Equal(t, 1, dials["b:1"])
}

func TestCacheInvalidateForcesRedial(t *testing.T) {
	dials := 0
	c := NewCache(func(addr string) (*redis.Client, error) {
		dials++
		return &redis.Client{}, nil
	})
	_, _ = c.Get("a:1")
	c.Invalidate("a:1")
	assert.False(t, c.Has("a:1"))
	_, _ = c.Get("a:1")
	assert.Equal(t, 2, dials)
}

func TestCacheGetPropagatesDialError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCache(func(addr string) (*redis.Client, error) { return nil, boom })
	_, err := c.Get("a:1")
	assert.Equal(t, boom, err)
}

func TestCacheApplyCommandTimeoutUpdatesOpenConnections(t *testing.T) {
	c := NewCache(func(addr string) (*redis.Client, error) {
		return redis.NewClient(addr, nil, redis.Config{}), nil
	})
	conn, err := c.Get("a:1")
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), conn.CommandTimeout())

	c.ApplyCommandTimeout(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, conn.CommandTimeout())
}

func TestCacheClosedRejectsGet(t *testing.T) {
	c := NewCache(func(addr string) (*redis.Client, error) { return &redis.Client{}, nil })
	_, _ = c.Get("a:1")
	c.CloseAll()
	_, err := c.Get("a:1")
	assert.Error(t, err)
}
