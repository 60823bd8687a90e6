package redis

import (
	"bufio"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeClient builds a Client wired to one end of an in-memory net.Pipe,
// handing the caller the other end to script server-side replies.
func pipeClient(t *testing.T) (*Client, net.Conn) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	c := &Client{addr: "test:0", conn: clientConn, reader: bufio.NewReaderSize(clientConn, defaultBufSize)}
	t.Cleanup(func() { c.Close(); serverConn.Close() })
	return c, serverConn
}

func TestEncodeRequest(t *testing.T) {
	got := encodeRequest([]string{"GET", "foo"})
	assert.Equal(t, "*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n", string(got))
}

func TestDoSimpleString(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		buf := make([]byte, 64)
		server.Read(buf)
		server.Write([]byte("+OK\r\n"))
	}()
	reply, err := c.Do("SET", "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "OK", reply)
}

func TestDoErrorReply(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		buf := make([]byte, 64)
		server.Read(buf)
		server.Write([]byte("-MOVED 12182 10.0.0.2:6379\r\n"))
	}()
	_, err := c.Do("GET", "foo")
	require.Error(t, err)
	replyErr, ok := err.(*ReplyError)
	require.True(t, ok)
	assert.Equal(t, "MOVED", replyErr.Token())
	assert.Equal(t, "MOVED 12182 10.0.0.2:6379", replyErr.Message)
}

func TestDoArrayReply(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		buf := make([]byte, 64)
		server.Read(buf)
		server.Write([]byte("*3\r\n$1\r\na\r\n$-1\r\n$1\r\nc\r\n"))
	}()
	reply, err := c.Do("MGET", "a", "b", "c")
	require.NoError(t, err)
	elems, ok := reply.([]interface{})
	require.True(t, ok)
	require.Len(t, elems, 3)
	assert.Equal(t, "a", elems[0])
	assert.Nil(t, elems[1])
	assert.Equal(t, "c", elems[2])
}

func TestDoIntegerReply(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		buf := make([]byte, 64)
		server.Read(buf)
		server.Write([]byte(":42\r\n"))
	}()
	reply, err := c.Do("DEL", "a")
	require.NoError(t, err)
	assert.Equal(t, int64(42), reply)
}

func TestPipelineAppendGetReply(t *testing.T) {
	c, server := pipeClient(t)
	go func() {
		buf := make([]byte, 256)
		server.Read(buf) // SET a 1
		server.Read(buf) // INCR a
		server.Write([]byte("+OK\r\n:1\r\n"))
	}()
	require.NoError(t, c.Append("SET", "a", "1"))
	require.NoError(t, c.Append("INCR", "a"))
	r1, err := c.GetReply()
	require.NoError(t, err)
	assert.Equal(t, "OK", r1)
	r2, err := c.GetReply()
	require.NoError(t, err)
	assert.Equal(t, int64(1), r2)
}
