package cluster

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForCallback(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async callback")
	}
}

func TestAsyncSubmitHappyPath(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("$3\r\nbar\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)
	a := NewAsyncContext(ctx, nil, nil)

	done := make(chan struct{})
	var reply interface{}
	var callErr error
	a.Submit([]string{"GET", "foo"}, func(r interface{}, err error) {
		reply, callErr = r, err
		close(done)
	})
	waitForCallback(t, done)

	require.NoError(t, callErr)
	assert.Equal(t, "bar", reply)
}

func TestAsyncSubmitRejectsCrossSlotMultiKey(t *testing.T) {
	ctx := newEngineTestContext(t, "a:1", 5, map[string]func(net.Conn){})
	a := NewAsyncContext(ctx, nil, nil)

	done := make(chan struct{})
	var callErr error
	a.Submit([]string{"MGET", "{a}foo", "{b}bar"}, func(r interface{}, err error) {
		callErr = err
		close(done)
	})
	waitForCallback(t, done)
	assert.Error(t, callErr)
}

func TestAsyncSubmitFollowsMovedRedirect(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("-MOVED 100 b:1\r\n"))
		},
		"b:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("$3\r\nbar\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)
	a := NewAsyncContext(ctx, nil, nil)

	done := make(chan struct{})
	var reply interface{}
	var callErr error
	a.Submit([]string{"GET", "foo"}, func(r interface{}, err error) {
		reply, callErr = r, err
		close(done)
	})
	waitForCallback(t, done)

	require.NoError(t, callErr)
	assert.Equal(t, "bar", reply)
}

func TestAsyncSubmitToNodeSkipsRetry(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {
			readAll(conn)
			conn.Write([]byte("-MOVED 100 b:1\r\n"))
		},
	}
	ctx := newEngineTestContext(t, "a:1", 5, handlers)
	a := NewAsyncContext(ctx, nil, nil)

	done := make(chan struct{})
	var callErr error
	a.SubmitToNode("a:1", []string{"GET", "foo"}, func(r interface{}, err error) {
		callErr = err
		close(done)
	})
	waitForCallback(t, done)
	// SubmitToNode surfaces the MOVED reply verbatim; it never redirects.
	require.Error(t, callErr)
	assert.Equal(t, "MOVED", callErr.(interface{ Token() string }).Token())
}
