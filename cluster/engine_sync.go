package cluster

import (
	"github.com/kevwan/rcluster/cmdparse"
	"github.com/kevwan/rcluster/fragment"
	"github.com/kevwan/rcluster/redis"
	"github.com/kevwan/rcluster/slotutil"
	"github.com/kevwan/rcluster/topology"
)

func slotFunc(key []byte) int {
	return slotutil.Slot(string(key))
}

// Do parses, routes, and executes one command. Cross-slot multi-key
// commands are transparently fragmented into per-shard sub-commands and
// their replies reassembled; everything else is a plain single-slot send.
func (c *Context) Do(args ...string) (interface{}, error) {
	if len(args) == 0 {
		err := errConfigf("cluster: empty command")
		c.setErr(err)
		return nil, err
	}
	raw := redis.RawRequest(args...)
	cmd := cmdparse.Parse(c.nextID.Add(1), raw)
	if cmd.Status != cmdparse.StatusOK {
		err := errProtocolf("%s", cmd.Err)
		c.setErr(err)
		return nil, err
	}

	if !cmd.IsMultiKey() {
		slot, err := c.slotForCommand(cmd)
		if err != nil {
			c.setErr(err)
			return nil, err
		}
		reply, err := c.sendWithRetry(cmd.Name, slot, args)
		c.setErr(err)
		return reply, err
	}

	result, err := fragment.Fragment(cmd, slotFunc)
	if err == fragment.ErrNotMultiKey {
		reply, sendErr := c.sendWithRetry(cmd.Name, cmd.Slot, args)
		c.setErr(sendErr)
		return reply, sendErr
	}
	if err != nil {
		c.setErr(err)
		return nil, err
	}

	replies := make([]interface{}, len(result.SubCommands))
	for i, sub := range result.SubCommands {
		reply, sendErr := c.sendWithRetry(cmd.Name, sub.Slot, sub.Args)
		if sendErr != nil {
			replies[i] = sendErr
			continue
		}
		replies[i] = reply
	}
	reassembled, err := fragment.Reassemble(cmd.Name, result, replies)
	c.setErr(err)
	return reassembled, err
}

type engineState int

const (
	stateRouting engineState = iota
	stateSending
	stateAwaitingReply
	stateHandlingRedirect
	stateDone
	stateFailed
)

// sendWithRetry drives one already-framed command through the state machine
// from §4.8: Routing selects the node owning slot; Sending acquires its
// connection and writes the request (piggybacking a topology refresh when
// one is due); AwaitingReply classifies the result; HandlingRedirect applies
// MOVED/ASK/TRYAGAIN/CLUSTERDOWN and loops back. The whole loop is bounded by
// MaxRetryCount.
func (c *Context) sendWithRetry(cmdName string, slot int, args []string) (interface{}, error) {
	retries := 0
	addr := ""
	askNext := false
	seenAddrs := map[string]bool{}
	var reply interface{}
	var opErr error

	state := stateRouting
	for {
		switch state {
		case stateRouting:
			a, err := c.addrForSlot(slot)
			if err != nil {
				opErr = err
				state = stateFailed
				continue
			}
			addr = a
			state = stateSending

		case stateSending:
			conn, err := c.cache.Get(addr)
			if err != nil {
				opErr = errIO(err)
				retries++
				if retries > c.opts.MaxRetryCount {
					state = stateFailed
					continue
				}
				state = stateRouting
				continue
			}

			seenAddrs[addr] = true
			if c.needsRefresh.Load() {
				reply, opErr = c.sendOnConnWithRefresh(conn, args, askNext)
			} else {
				reply, opErr = sendOnConn(conn, args, askNext)
			}
			askNext = false

			if opErr != nil && !isReplyError(opErr) {
				c.log.Warnf("cluster: %s on %s failed, invalidating connection: %v", cmdName, addr, opErr)
				c.cache.Invalidate(addr)
				c.needsRefresh.Store(true)
				retries++
				if retries > c.opts.MaxRetryCount {
					opErr = errIO(opErr)
					state = stateFailed
					continue
				}
				state = stateRouting
				continue
			}
			state = stateAwaitingReply

		case stateAwaitingReply:
			if _, ok := opErr.(*redis.ReplyError); !ok {
				state = stateDone
				continue
			}
			state = stateHandlingRedirect

		case stateHandlingRedirect:
			replyErr := opErr.(*redis.ReplyError)
			kind, rslot, raddr := classifyReplyError(replyErr)
			switch kind {
			case redirectMoved:
				c.log.Debugf("cluster: %s redirected MOVED slot=%d to %s", cmdName, rslot, raddr)
				c.patchSlot(rslot, raddr)
				c.needsRefresh.Store(true)
				if seenAddrs[raddr] {
					opErr = errTooManyRetries(cmdName)
					state = stateFailed
					continue
				}
				addr = raddr
				retries++
				if retries > c.opts.MaxRetryCount {
					opErr = errTooManyRetries(cmdName)
					state = stateFailed
					continue
				}
				state = stateSending
			case redirectAsk:
				c.log.Debugf("cluster: %s redirected ASK slot=%d to %s", cmdName, rslot, raddr)
				addr = raddr
				askNext = true
				retries++
				if retries > c.opts.MaxRetryCount {
					opErr = errTooManyRetries(cmdName)
					state = stateFailed
					continue
				}
				state = stateSending
			case redirectTryAgain, redirectClusterDown:
				c.log.Debugf("cluster: %s got %v, retrying on %s", cmdName, replyErr.Token(), addr)
				retries++
				if retries > c.opts.MaxRetryCount {
					opErr = errTooManyRetries(cmdName)
					state = stateFailed
					continue
				}
				state = stateRouting
			default:
				state = stateDone
			}

		case stateDone:
			return reply, opErr

		case stateFailed:
			return nil, opErr
		}
	}
}

func isReplyError(err error) bool {
	_, ok := err.(*redis.ReplyError)
	return ok
}

// sendOnConn runs one request/reply exchange against conn, optionally
// prefaced by ASKING, as a single atomic unit: conn's lock is held for the
// whole exchange so that a concurrent command sharing this connection (the
// async engine keeps several in flight against the same node) can never
// interleave its own write or read in between, and ASKING always
// immediately precedes the command it primes.
func sendOnConn(conn *redis.Client, args []string, asking bool) (interface{}, error) {
	conn.Lock()
	defer conn.Unlock()
	if asking {
		if err := conn.Append("ASKING"); err != nil {
			return nil, err
		}
		if _, err := conn.GetReply(); err != nil {
			return nil, err
		}
	}
	if err := conn.Append(args...); err != nil {
		return nil, err
	}
	return conn.GetReply()
}

// sendOnConnWithRefresh is sendOnConn's piggybacked-topology variant,
// locked the same way for the same reason.
func (c *Context) sendOnConnWithRefresh(conn *redis.Client, args []string, asking bool) (interface{}, error) {
	conn.Lock()
	defer conn.Unlock()
	if asking {
		if err := conn.Append("ASKING"); err != nil {
			return nil, err
		}
		if _, err := conn.GetReply(); err != nil {
			return nil, err
		}
	}
	return c.sendWithPiggybackedRefreshLocked(conn, args)
}

// patchSlot speculatively rebinds slot to addr without waiting for a full
// topology refresh, per §5 "Shared resource policy". If addr isn't yet a
// known node, a bare placeholder is installed — the next refresh replaces it
// with the fully-populated node.
func (c *Context) patchSlot(slot int, addr string) {
	rt := c.routeTable()
	if rt == nil {
		return
	}
	node, ok := rt.Nodes[addr]
	if !ok {
		node = &topology.Node{Addr: addr, Role: topology.RoleMaster}
	}
	rt.PatchSlot(slot, node)
}

// sendWithPiggybackedRefreshLocked writes the user's command and a
// topology command back to back on the same connection, reads the user's
// reply first, then the topology reply, and installs it — amortizing the
// refresh into the round trip already in flight instead of a second one
// (§4.8). Callers must already hold conn's lock.
func (c *Context) sendWithPiggybackedRefreshLocked(conn *redis.Client, args []string) (interface{}, error) {
	if err := conn.Append(args...); err != nil {
		return nil, err
	}
	topoArgs := []string{"CLUSTER", "NODES"}
	if c.opts.RouteUseSlots {
		topoArgs = []string{"CLUSTER", "SLOTS"}
	}
	if err := conn.Append(topoArgs...); err != nil {
		return conn.GetReply()
	}
	reply, err := conn.GetReply()
	topoReply, topoErr := conn.GetReply()
	if topoErr == nil {
		c.installTopologyReply(conn, topoReply)
	}
	return reply, err
}

func (c *Context) installTopologyReply(conn *redis.Client, reply interface{}) {
	var nodes topology.NodeMap
	var err error
	if c.opts.RouteUseSlots {
		nodes, err = topology.ParseClusterSlots(reply, conn.Addr())
	} else {
		text, ok := reply.(string)
		if !ok {
			return
		}
		nodes, err = topology.ParseClusterNodes(text, conn.Addr(), topology.ParseClusterNodesOptions{
			ParseReplicas:  c.opts.ParseReplicas,
			ParseOpenSlots: c.opts.ParseOpenSlots,
		})
	}
	if err != nil {
		return
	}
	prev := c.routeTable()
	next, err := topology.Install(prev, nodes)
	if err != nil {
		return
	}
	c.route.Store(next)
	c.needsRefresh.Store(false)
	if c.onEvent != nil {
		c.onEvent(EventSlotmapUpdated)
	}
}
