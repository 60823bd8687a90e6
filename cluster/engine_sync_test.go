package cluster

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevwan/rcluster/pool"
	"github.com/kevwan/rcluster/rclog"
	"github.com/kevwan/rcluster/redis"
	"github.com/kevwan/rcluster/rclusterconfig"
)

// scriptedDialer hands out a net.Pipe-backed Client per address and invokes
// a per-address handler on the server side of that pipe, in its own
// goroutine — letting tests script a fake node's replies.
func scriptedDialer(t *testing.T, handlers map[string]func(net.Conn)) pool.Dialer {
	t.Helper()
	var mu sync.Mutex
	dialed := map[string]bool{}
	return func(addr string) (*redis.Client, error) {
		mu.Lock()
		dialed[addr] = true
		mu.Unlock()
		clientConn, serverConn := net.Pipe()
		t.Cleanup(func() { serverConn.Close() })
		h, ok := handlers[addr]
		require.True(t, ok, "no scripted handler for %s", addr)
		go h(serverConn)
		return redis.NewClient(addr, clientConn, redis.Config{}), nil
	}
}

func newEngineTestContext(t *testing.T, startAddr string, maxRetry int, handlers map[string]func(net.Conn)) *Context {
	ctx := &Context{opts: rclusterconfig.NewOptions(startAddr), log: rclog.Default}
	ctx.opts.MaxRetryCount = maxRetry
	ctx.cache = pool.NewCache(scriptedDialer(t, handlers))
	ctx.route.Store(oneNodeRoute(startAddr))
	return ctx
}

func readAll(conn net.Conn) {
	buf := make([]byte, 512)
	conn.Read(buf)
}

func TestSendWithRetryHappyPath(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("$3\r\nbar\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)

	reply, err := ctx.sendWithRetry("GET", 100, []string{"GET", "foo"})
	require.NoError(t, err)
	assert.Equal(t, "bar", reply)
}

func TestSendWithRetryFollowsMovedRedirect(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("-MOVED 100 b:1\r\n"))
		},
		"b:1": func(conn net.Conn) {
			readAll(conn) // GET foo
			readAll(conn) // piggybacked CLUSTER NODES
			conn.Write([]byte("$3\r\nbar\r\n"))
			conn.Write([]byte("$0\r\n\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)

	reply, err := ctx.sendWithRetry("GET", 100, []string{"GET", "foo"})
	require.NoError(t, err)
	assert.Equal(t, "bar", reply)

	node := ctx.routeTable().NodeFor(100)
	require.NotNil(t, node)
	assert.Equal(t, "b:1", node.Addr)
}

func TestSendWithRetryFollowsAskRedirect(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("-ASK 100 b:1\r\n"))
		},
		"b:1": func(conn net.Conn) {
			readAll(conn) // ASKING
			conn.Write([]byte("+OK\r\n"))
			readAll(conn) // GET foo
			conn.Write([]byte("$3\r\nbar\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)

	reply, err := ctx.sendWithRetry("GET", 100, []string{"GET", "foo"})
	require.NoError(t, err)
	assert.Equal(t, "bar", reply)
}

func TestSendWithRetryTryAgainRetriesOnSameNode(t *testing.T) {
	attempts := 0
	var mu sync.Mutex
	handlers := map[string]func(net.Conn){
		// Both attempts arrive on the same cached connection: TRYAGAIN does
		// not invalidate it.
		"a:1": func(conn net.Conn) {
			for {
				readAll(conn)
				mu.Lock()
				attempts++
				first := attempts == 1
				mu.Unlock()
				if first {
					conn.Write([]byte("-TRYAGAIN resharding\r\n"))
					continue
				}
				conn.Write([]byte("$3\r\nbar\r\n"))
				return
			}
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)

	reply, err := ctx.sendWithRetry("GET", 100, []string{"GET", "foo"})
	require.NoError(t, err)
	assert.Equal(t, "bar", reply)
}

func TestSendWithRetryExhaustsBudget(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			for {
				buf := make([]byte, 512)
				if _, err := conn.Read(buf); err != nil {
					return
				}
				if _, err := conn.Write([]byte("-TRYAGAIN still resharding\r\n")); err != nil {
					return
				}
			}
		},
	}
	ctx := newEngineTestContext(t, "a:1", 2, handlers)

	_, err := ctx.sendWithRetry("GET", 100, []string{"GET", "foo"})
	require.Error(t, err)
	assert.True(t, IsTooManyRetries(err))
}

func TestDoRejectsUnknownCommand(t *testing.T) {
	ctx := newEngineTestContext(t, "a:1", 5, map[string]func(net.Conn){})
	_, err := ctx.Do("NOTACOMMAND", "foo")
	require.Error(t, err)
}

func TestDoSingleKeyRoundTrip(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("$3\r\nbar\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)

	reply, err := ctx.Do("GET", "foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", reply)
}
