package topology

import (
	"fmt"
	"strconv"
)

// ParseClusterSlots decodes a CLUSTER SLOTS reply (as produced by
// redis.Client.Do, i.e. []interface{} of []interface{}) into a node map.
// selfAddr is substituted for any entry whose reported ip is the empty
// string — Redis reports a blank ip for the node a connection is already
// talking to.
//
// Each sub-array is [start, end, [masterIP, masterPort, ...masterExtra],
// [replicaIP, replicaPort, ...replicaExtra]*]. A master may appear in
// multiple ranges; repeated occurrences are deduplicated by address.
func ParseClusterSlots(reply interface{}, selfAddr string) (NodeMap, error) {
	top, ok := reply.([]interface{})
	if !ok {
		return nil, fmt.Errorf("topology: CLUSTER SLOTS reply is not an array")
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("topology: empty CLUSTER SLOTS reply")
	}

	nodes := NodeMap{}
	for _, raw := range top {
		row, ok := raw.([]interface{})
		if !ok || len(row) < 3 {
			return nil, fmt.Errorf("topology: malformed CLUSTER SLOTS row")
		}

		start, err := asInt(row[0])
		if err != nil {
			return nil, fmt.Errorf("topology: slot range start: %w", err)
		}
		end, err := asInt(row[1])
		if err != nil {
			return nil, fmt.Errorf("topology: slot range end: %w", err)
		}
		if start > end || end >= NumSlots || start < 0 {
			return nil, fmt.Errorf("topology: invalid slot range %d-%d", start, end)
		}

		master, err := parseSlotsAddr(row[2], selfAddr)
		if err != nil {
			return nil, fmt.Errorf("topology: master address: %w", err)
		}

		node, ok := nodes[master]
		if !ok {
			host, port := splitAddr(master)
			node = &Node{Addr: master, Host: host, Port: port, Role: RoleMaster}
			nodes[master] = node
		}
		node.Slots = append(node.Slots, SlotRange{Start: start, End: end})

		for _, raw := range row[3:] {
			replicaRow, ok := raw.([]interface{})
			if !ok {
				continue
			}
			replicaAddr, err := parseSlotsAddr(replicaRow, selfAddr)
			if err != nil {
				continue
			}
			replica, ok := nodes[replicaAddr]
			if !ok {
				host, port := splitAddr(replicaAddr)
				replica = &Node{Addr: replicaAddr, Host: host, Port: port, Role: RoleReplica}
				nodes[replicaAddr] = replica
			}
			if !containsReplica(node.Replicas, replica) {
				node.Replicas = append(node.Replicas, replica)
			}
		}
	}
	return nodes, nil
}

func containsReplica(replicas []*Node, n *Node) bool {
	for _, r := range replicas {
		if r == n {
			return true
		}
	}
	return false
}

func parseSlotsAddr(raw interface{}, selfAddr string) (string, error) {
	fields, ok := raw.([]interface{})
	if !ok || len(fields) < 2 {
		return "", fmt.Errorf("malformed address triplet")
	}
	ip, ok := fields[0].(string)
	if !ok {
		return "", fmt.Errorf("ip is not a string")
	}
	port, err := asInt(fields[1])
	if err != nil {
		return "", fmt.Errorf("port: %w", err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("port %d out of range", port)
	}
	if ip == "" {
		if selfAddr == "" {
			return "", fmt.Errorf("blank ip with no self address to substitute")
		}
		return selfAddr, nil
	}
	return ip + ":" + strconv.Itoa(port), nil
}

func asInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, err
		}
		return i, nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

func splitAddr(addr string) (host string, port int) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			p, _ := strconv.Atoi(addr[i+1:])
			return addr[:i], p
		}
	}
	return addr, 0
}
