package cluster

import (
	"github.com/kevwan/rcluster/cmdparse"
	"github.com/kevwan/rcluster/fragment"
	"github.com/kevwan/rcluster/redis"
)

// Append parses and fragments one command and queues it for execution,
// without sending anything yet — pair every Append with a GetReply, in
// order.
func (c *Context) Append(args ...string) error {
	if len(args) == 0 {
		return errConfigf("cluster: empty command")
	}
	raw := redis.RawRequest(args...)
	cmd := cmdparse.Parse(c.nextID.Add(1), raw)
	if cmd.Status != cmdparse.StatusOK {
		return errProtocolf("%s", cmd.Err)
	}

	pending := &pendingCommand{cmd: cmd, args: args}
	if cmd.IsMultiKey() {
		result, err := fragment.Fragment(cmd, slotFunc)
		if err != nil && err != fragment.ErrNotMultiKey {
			return err
		}
		pending.frag = result // nil when Fragment degenerated to single-slot
	}

	c.pipeMu.Lock()
	c.pipeline = append(c.pipeline, pending)
	c.pipeMu.Unlock()
	return nil
}

// GetReply dequeues and executes the oldest appended command, returning its
// (possibly reassembled) reply. Commands execute in append order; each
// still goes through the full send-redirect-retry state machine.
func (c *Context) GetReply() (interface{}, error) {
	c.pipeMu.Lock()
	if len(c.pipeline) == 0 {
		c.pipeMu.Unlock()
		return nil, errConfigf("cluster: no pipelined command pending")
	}
	pending := c.pipeline[0]
	c.pipeline = c.pipeline[1:]
	c.pipeMu.Unlock()

	cmd := pending.cmd
	if pending.frag == nil {
		var slot int
		if cmd.IsMultiKey() {
			// Fragment degenerated to a single slot; cmd.Slot was set by
			// Fragment itself during Append.
			slot = cmd.Slot
		} else {
			s, err := c.slotForCommand(cmd)
			if err != nil {
				c.setErr(err)
				return nil, err
			}
			slot = s
		}
		reply, err := c.sendWithRetry(cmd.Name, slot, pending.args)
		c.setErr(err)
		return reply, err
	}

	replies := make([]interface{}, len(pending.frag.SubCommands))
	for i, sub := range pending.frag.SubCommands {
		reply, err := c.sendWithRetry(cmd.Name, sub.Slot, sub.Args)
		if err != nil {
			replies[i] = err
			continue
		}
		replies[i] = reply
	}
	reassembled, err := fragment.Reassemble(cmd.Name, pending.frag, replies)
	c.setErr(err)
	return reassembled, err
}

// Reset discards every appended-but-not-yet-read command, then — if a
// redirect or I/O error has flagged the topology as stale — synchronously
// refreshes it before returning, per §4.8's pipeline reset contract.
func (c *Context) Reset() error {
	c.pipeMu.Lock()
	c.pipeline = nil
	c.pipeMu.Unlock()

	if c.needsRefresh.Load() {
		return c.forceRefresh()
	}
	return nil
}
