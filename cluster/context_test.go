package cluster

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevwan/rcluster/cmdparse"
	"github.com/kevwan/rcluster/redis"
	"github.com/kevwan/rcluster/rclusterconfig"
	"github.com/kevwan/rcluster/topology"
)

func newTestContext(addr string) *Context {
	ctx := &Context{opts: rclusterconfig.NewOptions(addr)}
	ctx.route.Store(oneNodeRoute(addr))
	return ctx
}

func TestAddrForSlotUsesRouteTable(t *testing.T) {
	ctx := newTestContext("a:1")
	addr, err := ctx.addrForSlot(100)
	require.NoError(t, err)
	assert.Equal(t, "a:1", addr)
}

func TestPatchSlotRebindsKnownNode(t *testing.T) {
	nodes := topology.NodeMap{
		"a:1": {Addr: "a:1", Role: topology.RoleMaster, Slots: []topology.SlotRange{{Start: 0, End: 16383}}},
		"b:1": {Addr: "b:1", Role: topology.RoleMaster},
	}
	rt, err := topology.Install(nil, nodes)
	require.NoError(t, err)
	ctx := &Context{}
	ctx.route.Store(rt)

	ctx.patchSlot(500, "b:1")
	assert.Same(t, nodes["b:1"], ctx.routeTable().NodeFor(500))
}

func TestPatchSlotInstallsPlaceholderForUnknownAddr(t *testing.T) {
	ctx := newTestContext("a:1")
	ctx.patchSlot(500, "new:1")
	node := ctx.routeTable().NodeFor(500)
	require.NotNil(t, node)
	assert.Equal(t, "new:1", node.Addr)
}

func TestSlotForCommandSingleKey(t *testing.T) {
	ctx := newTestContext("a:1")
	raw := redis.RawRequest("GET", "foo")
	cmd := cmdparse.Parse(1, raw)
	slot, err := ctx.slotForCommand(cmd)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, slot, 0)
}

func TestSlotForCommandNoKey(t *testing.T) {
	ctx := newTestContext("a:1")
	raw := redis.RawRequest("PING")
	cmd := cmdparse.Parse(1, raw)
	slot, err := ctx.slotForCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, -1, slot)
}

func TestErrStringRoundTrip(t *testing.T) {
	ctx := newTestContext("a:1")
	assert.Empty(t, ctx.ErrString())
	ctx.setErr(errConfigf("boom"))
	assert.Contains(t, ctx.ErrString(), "boom")
	ctx.setErr(nil)
	assert.Empty(t, ctx.ErrString())
}

func TestSetCommandTimeoutAppliesToOpenConnections(t *testing.T) {
	ctx := newEngineTestContext(t, "a:1", 5, map[string]func(net.Conn){
		"a:1": func(conn net.Conn) {},
	})
	_, err := ctx.cache.Get("a:1") // dial it so it's cached
	require.NoError(t, err)

	ctx.SetCommandTimeout(250 * time.Millisecond)

	assert.Equal(t, 250*time.Millisecond, ctx.opts.CommandTimeout)
	conn, err := ctx.cache.Get("a:1")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, conn.CommandTimeout())
}
