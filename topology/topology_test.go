package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClusterSlotsBasic(t *testing.T) {
	reply := []interface{}{
		[]interface{}{int64(0), int64(5460), []interface{}{"10.0.0.1", int64(6379)}},
		[]interface{}{int64(5461), int64(10922), []interface{}{"10.0.0.2", int64(6379)}},
	}
	nodes, err := ParseClusterSlots(reply, "")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	a := nodes["10.0.0.1:6379"]
	require.NotNil(t, a)
	assert.Equal(t, RoleMaster, a.Role)
	assert.True(t, a.OwnsSlot(0))
	assert.True(t, a.OwnsSlot(5460))
	assert.False(t, a.OwnsSlot(5461))
}

func TestParseClusterSlotsDedupesMaster(t *testing.T) {
	reply := []interface{}{
		[]interface{}{int64(0), int64(100), []interface{}{"10.0.0.1", int64(6379)}},
		[]interface{}{int64(101), int64(200), []interface{}{"10.0.0.1", int64(6379)}},
	}
	nodes, err := ParseClusterSlots(reply, "")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Len(t, nodes["10.0.0.1:6379"].Slots, 2)
}

func TestParseClusterSlotsBlankIPUsesSelfAddr(t *testing.T) {
	reply := []interface{}{
		[]interface{}{int64(0), int64(100), []interface{}{"", int64(6379)}},
	}
	nodes, err := ParseClusterSlots(reply, "myconn:6379")
	require.NoError(t, err)
	assert.Contains(t, nodes, "myconn:6379")
}

func TestParseClusterSlotsRejectsBadRange(t *testing.T) {
	reply := []interface{}{
		[]interface{}{int64(100), int64(0), []interface{}{"10.0.0.1", int64(6379)}},
	}
	_, err := ParseClusterSlots(reply, "")
	assert.Error(t, err)
}

func TestParseClusterSlotsWithReplicas(t *testing.T) {
	reply := []interface{}{
		[]interface{}{
			int64(0), int64(100),
			[]interface{}{"10.0.0.1", int64(6379)},
			[]interface{}{"10.0.0.2", int64(6379)},
		},
	}
	nodes, err := ParseClusterSlots(reply, "")
	require.NoError(t, err)
	master := nodes["10.0.0.1:6379"]
	require.Len(t, master.Replicas, 1)
	assert.Equal(t, "10.0.0.2:6379", master.Replicas[0].Addr)
}

const sampleClusterNodes = `07c37dfeb235213a872192d90877d0cd55635b91 127.0.0.1:30004@31004 slave e7d1eecce10fd6bb5eb35b9f99a514335d9ba9ca 0 1426238317239 4 connected
67ed2db8d677e59ec4a4cefb06858cf2a1a89fa1 127.0.0.1:30002@31002 master - 0 1426238316232 2 connected 5461-10922
292f8b365bb7edb5e285caf0b7e6ddc7265d2f4f 127.0.0.1:30003@31003 master - 0 1426238318243 3 connected 10923-16383
6ec23923021cf3ffec47632106199cb7f496ce01 127.0.0.1:30005@31005 slave 67ed2db8d677e59ec4a4cefb06858cf2a1a89fa1 0 1426238316232 5 connected
e7d1eecce10fd6bb5eb35b9f99a514335d9ba9ca 127.0.0.1:30001@31001 myself,master - 0 0 1 connected 0-5460
`

func TestParseClusterNodesBasic(t *testing.T) {
	nodes, err := ParseClusterNodes(sampleClusterNodes, "", ParseClusterNodesOptions{ParseReplicas: true})
	require.NoError(t, err)
	master1 := nodes["127.0.0.1:30001"]
	require.NotNil(t, master1)
	assert.True(t, master1.OwnsSlot(0))
	assert.True(t, master1.OwnsSlot(5460))
	require.Len(t, master1.Replicas, 1)
	assert.Equal(t, "127.0.0.1:30004", master1.Replicas[0].Addr)
}

func TestParseClusterNodesStripsClusterBusPort(t *testing.T) {
	nodes, err := ParseClusterNodes(sampleClusterNodes, "", ParseClusterNodesOptions{})
	require.NoError(t, err)
	assert.Contains(t, nodes, "127.0.0.1:30002")
	assert.NotContains(t, nodes, "127.0.0.1:30002@31002")
}

func TestParseClusterNodesNoSlotsIsError(t *testing.T) {
	_, err := ParseClusterNodes("bogus line with too few fields\n", "", ParseClusterNodesOptions{})
	assert.Error(t, err)
}

func TestBuildSlotTableRejectsOverlap(t *testing.T) {
	a := &Node{Addr: "a", Role: RoleMaster, Slots: []SlotRange{{Start: 0, End: 100}}}
	b := &Node{Addr: "b", Role: RoleMaster, Slots: []SlotRange{{Start: 50, End: 150}}}
	_, err := BuildSlotTable(NodeMap{"a": a, "b": b})
	assert.Error(t, err)
}

func TestInstallIncrementsVersion(t *testing.T) {
	a := &Node{Addr: "a", Role: RoleMaster, Slots: []SlotRange{{Start: 0, End: NumSlots - 1}}}
	rt1, err := Install(nil, NodeMap{"a": a})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rt1.Version)

	rt2, err := Install(rt1, NodeMap{"a": a})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rt2.Version)
}

func TestRouteTableNodeForAndPatchSlot(t *testing.T) {
	a := &Node{Addr: "a", Role: RoleMaster, Slots: []SlotRange{{Start: 0, End: 100}}}
	b := &Node{Addr: "b", Role: RoleMaster, Slots: []SlotRange{{Start: 101, End: NumSlots - 1}}}
	rt, err := Install(nil, NodeMap{"a": a, "b": b})
	require.NoError(t, err)
	assert.Equal(t, a, rt.NodeFor(50))
	assert.Equal(t, b, rt.NodeFor(200))

	rt.PatchSlot(50, b)
	assert.Equal(t, b, rt.NodeFor(50))
}
