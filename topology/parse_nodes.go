package topology

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClusterNodesOptions toggles optional bookkeeping the base parse
// always skips.
type ParseClusterNodesOptions struct {
	ParseReplicas  bool
	ParseOpenSlots bool
}

// ParseClusterNodes decodes a CLUSTER NODES bulk-string reply (newline
// delimited records, space-separated fields) into a node map. selfAddr is
// substituted for a record whose address field is empty host ("", meaning
// "my own address as seen by the connection it replied on"); a normal peer
// record always carries its own ip:port. An "@cport" bus-port suffix is
// stripped, and records whose address ends in ":0" are skipped.
//
// Field layout: 0 id, 1 ip:port[@cport], 2 flags (may start with "myself,"),
// 3 replicaof-id or "-", fields 8+ slot ranges (each "N", "N-M", or, when
// ParseOpenSlots is set, "[N-><-M]" / "[N-<-M]" for migrating/importing).
func ParseClusterNodes(text string, selfAddr string, opts ParseClusterNodesOptions) (NodeMap, error) {
	nodes := NodeMap{}
	byID := map[string]*Node{}
	replicaOf := map[string]string{} // node addr -> master id

	found := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 8 {
			continue
		}

		id := fields[0]
		addr := stripBusPort(fields[1])
		if addr == ":0" || strings.HasPrefix(addr, ":0") {
			continue
		}
		if strings.HasPrefix(addr, ":") {
			if selfAddr == "" {
				continue
			}
			addr = selfAddr
		}

		flags := fields[2]
		role := RoleMaster
		if strings.Contains(flags, "slave") || strings.Contains(flags, "replica") {
			role = RoleReplica
		}

		host, port := splitAddr(addr)
		node := &Node{Addr: addr, Host: host, Port: port, Role: role, ID: id}
		nodes[addr] = node
		byID[id] = node

		if role == RoleReplica {
			if masterID := fields[3]; masterID != "-" {
				replicaOf[addr] = masterID
			}
			continue
		}

		for _, tok := range fields[8:] {
			switch {
			case strings.HasPrefix(tok, "["):
				if !opts.ParseOpenSlots {
					continue
				}
				open, err := parseOpenSlotToken(tok)
				if err != nil {
					return nil, err
				}
				if open.Direction == DirectionMigrating {
					node.MigratingSlots = append(node.MigratingSlots, open)
				} else {
					node.ImportingSlots = append(node.ImportingSlots, open)
				}
			default:
				r, err := parseSlotRangeToken(tok)
				if err != nil {
					return nil, err
				}
				node.Slots = append(node.Slots, r)
				found++
			}
		}
	}

	if opts.ParseReplicas {
		for addr, masterID := range replicaOf {
			replica := nodes[addr]
			master, ok := byID[masterID]
			if !ok {
				continue
			}
			master.Replicas = append(master.Replicas, replica)
		}
	}

	if found == 0 {
		return nil, fmt.Errorf("topology: no slot ranges found in CLUSTER NODES reply")
	}
	return nodes, nil
}

func stripBusPort(addrField string) string {
	if i := strings.IndexByte(addrField, '@'); i >= 0 {
		return addrField[:i]
	}
	return addrField
}

func parseSlotRangeToken(tok string) (SlotRange, error) {
	if i := strings.IndexByte(tok, '-'); i >= 0 {
		start, err1 := strconv.Atoi(tok[:i])
		end, err2 := strconv.Atoi(tok[i+1:])
		if err1 != nil || err2 != nil || start > end || end >= NumSlots {
			return SlotRange{}, fmt.Errorf("topology: malformed slot range token %q", tok)
		}
		return SlotRange{Start: start, End: end}, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n >= NumSlots {
		return SlotRange{}, fmt.Errorf("topology: malformed slot token %q", tok)
	}
	return SlotRange{Start: n, End: n}, nil
}

// parseOpenSlotToken parses "[N-><-M]" (migrating to node M) or
// "[N-<-M]" (importing from node M).
func parseOpenSlotToken(tok string) (OpenSlot, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "["), "]")
	switch {
	case strings.Contains(inner, "->-"):
		parts := strings.SplitN(inner, "->-", 2)
		slot, err := strconv.Atoi(parts[0])
		if err != nil || len(parts) != 2 {
			return OpenSlot{}, fmt.Errorf("topology: malformed migrating-slot token %q", tok)
		}
		return OpenSlot{Slot: slot, Direction: DirectionMigrating, RemoteNodeName: parts[1]}, nil
	case strings.Contains(inner, "-<-"):
		parts := strings.SplitN(inner, "-<-", 2)
		slot, err := strconv.Atoi(parts[0])
		if err != nil || len(parts) != 2 {
			return OpenSlot{}, fmt.Errorf("topology: malformed importing-slot token %q", tok)
		}
		return OpenSlot{Slot: slot, Direction: DirectionImporting, RemoteNodeName: parts[1]}, nil
	default:
		return OpenSlot{}, fmt.Errorf("topology: malformed open-slot token %q", tok)
	}
}
