package cluster

import "github.com/kevwan/rcluster/topology"

// NodeIterator walks the nodes known at the time it was created. If the
// context's route table advances mid-walk, the iterator restarts once
// against the new node map rather than silently skipping or duplicating
// entries — see §4.10. After that one restart it walks the new map; a
// further route table change exhausts it.
type NodeIterator struct {
	ctx          *Context
	routeVersion uint64
	nodes        []*topology.Node
	pos          int
	restartsLeft int
}

// NewNodeIterator snapshots the context's current node map.
func (c *Context) NewNodeIterator() *NodeIterator {
	it := &NodeIterator{ctx: c, restartsLeft: 1}
	it.reset()
	return it
}

func (it *NodeIterator) reset() {
	rt := it.ctx.routeTable()
	it.nodes = it.nodes[:0]
	if rt == nil {
		it.routeVersion = 0
		it.pos = 0
		return
	}
	it.routeVersion = rt.Version
	for _, node := range rt.Nodes {
		it.nodes = append(it.nodes, node)
	}
	it.pos = 0
}

// Next returns the next node, or nil once the iterator is exhausted (either
// it walked every node, or it already used its one restart after a
// topology change).
func (it *NodeIterator) Next() *topology.Node {
	if it.ctx.RouteVersion() != it.routeVersion {
		if it.restartsLeft <= 0 {
			return nil
		}
		it.restartsLeft--
		it.reset()
	}
	if it.pos >= len(it.nodes) {
		return nil
	}
	node := it.nodes[it.pos]
	it.pos++
	return node
}
