package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevwan/rcluster/topology"
)

func oneNodeRoute(addr string) *topology.RouteTable {
	nodes := topology.NodeMap{addr: {Addr: addr, Role: topology.RoleMaster, Slots: []topology.SlotRange{{Start: 0, End: 16383}}}}
	rt, err := topology.Install(nil, nodes)
	if err != nil {
		panic(err)
	}
	return rt
}

func TestNodeIteratorWalksAllNodes(t *testing.T) {
	nodes := topology.NodeMap{
		"a:1": {Addr: "a:1", Role: topology.RoleMaster, Slots: []topology.SlotRange{{Start: 0, End: 8000}}},
		"b:1": {Addr: "b:1", Role: topology.RoleMaster, Slots: []topology.SlotRange{{Start: 8001, End: 16383}}},
	}
	rt, err := topology.Install(nil, nodes)
	require.NoError(t, err)

	ctx := &Context{}
	ctx.route.Store(rt)

	it := ctx.NewNodeIterator()
	seen := map[string]bool{}
	for {
		n := it.Next()
		if n == nil {
			break
		}
		seen[n.Addr] = true
	}
	assert.Equal(t, map[string]bool{"a:1": true, "b:1": true}, seen)
}

func TestNodeIteratorRestartsOnceOnTopologyChange(t *testing.T) {
	ctx := &Context{}
	ctx.route.Store(oneNodeRoute("a:1"))

	it := ctx.NewNodeIterator()
	assert.NotNil(t, it.Next())
	assert.Nil(t, it.Next()) // exhausted first pass

	// advance installs a new single-node table with the next route version,
	// as a topology refresh would.
	advance := func(addr string) {
		rt := oneNodeRoute(addr)
		rt.Version = ctx.RouteVersion() + 1
		ctx.route.Store(rt)
	}

	// Topology advances mid-walk-equivalent: a fresh Next call should
	// restart once against the new map.
	advance("b:1")
	n := it.Next()
	require.NotNil(t, n)
	assert.Equal(t, "b:1", n.Addr)

	// The restart budget is spent; a second change exhausts the iterator.
	advance("c:1")
	assert.Nil(t, it.Next())
}

func TestNodeIteratorEmptyRoute(t *testing.T) {
	ctx := &Context{}
	it := ctx.NewNodeIterator()
	assert.Nil(t, it.Next())
}
