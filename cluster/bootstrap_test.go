package cluster

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevwan/rcluster/redis"
	"github.com/kevwan/rcluster/rclusterconfig"
)

const sampleClusterNodesReply = "" +
	"07c37dfeb235213a872192d90877d0cd55635b91 127.0.0.1:7000@17000 myself,master - 0 0 0 connected 0-5460\n" +
	"67ed2db8d677e59ec4a4cefb06858cf2a1a89fa1 127.0.0.1:7001@17001 master - 0 0 1 connected 5461-10922\n" +
	"292f8b365bb7edb5e285caf0b7e6ddc7265d2f4f 127.0.0.1:7002@17002 master - 0 0 2 connected 10923-16383\n"

func TestNewContextBootstrapsAndEmitsReady(t *testing.T) {
	handlers := map[string]func(net.Conn){
		"127.0.0.1:7000": func(conn net.Conn) {
			readAll(conn) // CLUSTER NODES
			reply := "$" + strconv.Itoa(len(sampleClusterNodesReply)) + "\r\n" + sampleClusterNodesReply + "\r\n"
			conn.Write([]byte(reply))
		},
	}

	var events []Event
	opts := rclusterconfig.NewOptions("127.0.0.1:7000")
	ctx, err := newContextWithDialer(opts, func(e Event) { events = append(events, e) }, scriptedDialer(t, handlers))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), ctx.RouteVersion())
	assert.Contains(t, events, EventSlotmapUpdated)
	assert.Contains(t, events, EventReady)

	node := ctx.routeTable().NodeFor(0)
	require.NotNil(t, node)
	assert.Equal(t, "127.0.0.1:7000", node.Addr)
}

func TestNewContextFailsWhenNoSeedAnswers(t *testing.T) {
	opts := rclusterconfig.NewOptions("127.0.0.1:7000")
	_, err := newContextWithDialer(opts, nil, func(addr string) (*redis.Client, error) {
		return nil, assert.AnError
	})
	assert.Error(t, err)
}
