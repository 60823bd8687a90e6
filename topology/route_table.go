package topology

import "fmt"

// BuildSlotTable builds the 16384-entry direct-indexed slot→master array for
// a freshly parsed node map. It rejects the map if any two masters' ranges
// overlap — callers should discard the parsed map and keep the previous
// table on error.
func BuildSlotTable(nodes NodeMap) (*SlotTable, error) {
	var table SlotTable
	for _, node := range nodes {
		if node.Role != RoleMaster {
			continue
		}
		for _, r := range node.Slots {
			if r.Start > r.End || r.End >= NumSlots || r.Start < 0 {
				return nil, fmt.Errorf("topology: invalid slot range %d-%d on %s", r.Start, r.End, node.Addr)
			}
			for s := r.Start; s <= r.End; s++ {
				if existing := table[s]; existing != nil && existing != node {
					return nil, fmt.Errorf("topology: slot %d claimed by both %s and %s", s, existing.Addr, node.Addr)
				}
				table[s] = node
			}
		}
	}
	return &table, nil
}

// MigrateLive carries forward anything from an old node map that should
// survive into a freshly installed one, matched by address. Per the
// redesign this module follows, connections are not part of Node — the
// connection cache (package pool) is already address-keyed and needs no
// migration step of its own, and every other Node field is re-derived from
// scratch on each CLUSTER NODES/SLOTS parse. Install calls this
// unconditionally on every refresh so that the day a per-node field does
// need carrying forward (a live counter, an observed-latency estimate), it
// has one call site to land in rather than a new migration path threaded
// through Install.
func MigrateLive(oldNodes, newNodes NodeMap) {}

// RouteTable is the atomically-swapped pair the execution engine reads: the
// node map and its derived slot table, stamped with a monotonic version.
type RouteTable struct {
	Nodes   NodeMap
	Slots   *SlotTable
	Version uint64
}

// Install validates a freshly parsed node map, builds its slot table, and
// returns the RouteTable to swap in. It never mutates prev; the caller is
// responsible for atomically publishing the result (see cluster.Context).
func Install(prev *RouteTable, nodes NodeMap) (*RouteTable, error) {
	slots, err := BuildSlotTable(nodes)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		MigrateLive(prev.Nodes, nodes)
	}
	version := uint64(1)
	if prev != nil {
		version = prev.Version + 1
	}
	return &RouteTable{Nodes: nodes, Slots: slots, Version: version}, nil
}

// NodeFor returns the master currently assigned to slot, or nil if
// unassigned.
func (rt *RouteTable) NodeFor(slot int) *Node {
	if rt == nil || rt.Slots == nil || slot < 0 || slot >= NumSlots {
		return nil
	}
	return rt.Slots[slot]
}

// PatchSlot speculatively rebinds a single slot to node — the MOVED fast
// path applies this directly to the live table rather than waiting for a
// full topology refresh, per §5 "Shared resource policy".
func (rt *RouteTable) PatchSlot(slot int, node *Node) {
	if rt == nil || rt.Slots == nil || slot < 0 || slot >= NumSlots {
		return
	}
	rt.Slots[slot] = node
}
