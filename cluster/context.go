// Package cluster is the top-level client: it owns the route table and
// connection cache, drives the sync and async execution engines, and
// exposes the single- and multi-key command API described by the data
// model's Context and AsyncContext.
package cluster

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kevwan/rcluster/cmdparse"
	"github.com/kevwan/rcluster/fragment"
	"github.com/kevwan/rcluster/pool"
	"github.com/kevwan/rcluster/rclog"
	"github.com/kevwan/rcluster/rclusterconfig"
	"github.com/kevwan/rcluster/redis"
	"github.com/kevwan/rcluster/slotutil"
	"github.com/kevwan/rcluster/topology"
)

// Event is emitted to an installed callback on a topology change.
type Event int

const (
	// EventSlotmapUpdated fires on every successful topology refresh.
	EventSlotmapUpdated Event = iota
	// EventReady fires once, the first time the route version transitions
	// from 0 to 1.
	EventReady
)

func (e Event) String() string {
	switch e {
	case EventSlotmapUpdated:
		return "SLOTMAP_UPDATED"
	case EventReady:
		return "READY"
	default:
		return "UNKNOWN"
	}
}

// Context is the synchronous, single-threaded cluster client handle. It is
// not safe for concurrent use by multiple goroutines; callers that want
// concurrent access should give each goroutine its own Context, or
// synchronize externally.
type Context struct {
	opts  *rclusterconfig.Options
	log   *rclog.Logger
	cache *pool.Cache

	route        atomic.Pointer[topology.RouteTable]
	needsRefresh atomic.Bool
	nextID       atomic.Int64
	lastErr      atomic.Pointer[error]

	onEvent func(Event)

	refreshMu sync.Mutex // serializes topology refreshes

	pipeMu   sync.Mutex
	pipeline []*pendingCommand
}

type pendingCommand struct {
	cmd  *cmdparse.Command
	frag *fragment.Result // nil for single-slot commands
	args []string
}

// NewContext dials the seed addresses in opts.AddNodes in order, performs an
// initial topology discovery against the first that answers, and returns a
// ready Context. Per §4.5 step 5 this also emits EventReady once, since the
// route version transitions 0→1 here.
func NewContext(opts *rclusterconfig.Options, onEvent func(Event)) (*Context, error) {
	return newContextWithDialer(opts, onEvent, func(addr string) (*redis.Client, error) {
		return redis.Dial(redis.Config{
			Addr:           addr,
			Username:       opts.Username,
			Password:       opts.Password,
			ConnectTimeout: opts.ConnectTimeout,
			CommandTimeout: opts.CommandTimeout,
			TLSConfig:      opts.TLSConfig,
		})
	})
}

// newContextWithDialer is NewContext with the dialer as an explicit
// parameter — the seam tests use to substitute an in-memory connection for
// a real TCP dial.
func newContextWithDialer(opts *rclusterconfig.Options, onEvent func(Event), dial pool.Dialer) (*Context, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ctx := &Context{
		opts:    opts,
		log:     rclog.Default,
		onEvent: onEvent,
	}
	ctx.cache = pool.NewCache(dial)
	ctx.cache.SetLogger(ctx.log)

	var lastErr error
	for _, addr := range opts.AddNodes {
		if err := ctx.refreshTopologyFrom(addr); err != nil {
			lastErr = err
			continue
		}
		return ctx, nil
	}
	return nil, fmt.Errorf("cluster: no seed address answered CLUSTER %s: %w", topologyCommandName(opts), lastErr)
}

func topologyCommandName(opts *rclusterconfig.Options) string {
	if opts.RouteUseSlots {
		return "SLOTS"
	}
	return "NODES"
}

// routeTable returns the currently installed route table, or nil before the
// first successful refresh.
func (c *Context) routeTable() *topology.RouteTable {
	return c.route.Load()
}

// RouteVersion returns the monotonic version of the currently installed
// route table, or 0 if none has been installed yet.
func (c *Context) RouteVersion() uint64 {
	rt := c.routeTable()
	if rt == nil {
		return 0
	}
	return rt.Version
}

// LastErr returns the most recently recorded error, or nil. Per §4.11,
// recording is idempotent and a successful operation clears it.
func (c *Context) LastErr() error {
	p := c.lastErr.Load()
	if p == nil {
		return nil
	}
	return *p
}

// ErrString renders LastErr through the bounded, fixed-size rendering used
// by the async callback path (§3.3); the sync API normally returns errors
// directly instead.
func (c *Context) ErrString() string {
	return errString(c.LastErr())
}

func (c *Context) setErr(err error) {
	if err == nil {
		c.lastErr.Store(nil)
		return
	}
	c.lastErr.Store(&err)
}

// refreshTopologyFrom fetches and installs a fresh topology using addr's
// connection, used both for the bootstrap discovery in NewContext and for
// the node-bootstrapped path when the currently installed table has gone
// empty.
func (c *Context) refreshTopologyFrom(addr string) error {
	conn, err := c.cache.Get(addr)
	if err != nil {
		return errIO(err)
	}
	return c.refreshTopologyOn(conn)
}

// refreshTopologyOn fetches and installs a fresh topology over an
// already-open connection. refreshTopologyFrom is its caller; the sync
// engine's piggybacked refresh installs its reply through
// installTopologyReply instead.
func (c *Context) refreshTopologyOn(conn *redis.Client) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	nodes, err := c.fetchNodes(conn)
	if err != nil {
		c.setErr(err)
		return err
	}

	prev := c.routeTable()
	next, err := topology.Install(prev, nodes)
	if err != nil {
		c.setErr(errConfigf("%v", err))
		return err
	}
	c.route.Store(next)
	c.needsRefresh.Store(false)
	c.setErr(nil)

	c.log.Debugf("cluster: topology refreshed, version=%d nodes=%d", next.Version, len(next.Nodes))
	if c.onEvent != nil {
		c.onEvent(EventSlotmapUpdated)
		if prev == nil && next.Version == 1 {
			c.onEvent(EventReady)
		}
	}
	return nil
}

func (c *Context) fetchNodes(conn *redis.Client) (topology.NodeMap, error) {
	if c.opts.RouteUseSlots {
		reply, err := conn.Do("CLUSTER", "SLOTS")
		if err != nil {
			return nil, errIO(err)
		}
		return topology.ParseClusterSlots(reply, conn.Addr())
	}
	reply, err := conn.Do("CLUSTER", "NODES")
	if err != nil {
		return nil, errIO(err)
	}
	text, ok := reply.(string)
	if !ok {
		return nil, errProtocolf("CLUSTER NODES: unexpected reply type")
	}
	return topology.ParseClusterNodes(text, conn.Addr(), topology.ParseClusterNodesOptions{
		ParseReplicas:  c.opts.ParseReplicas,
		ParseOpenSlots: c.opts.ParseOpenSlots,
	})
}

// Close releases every cached connection. The Context must not be used
// afterward.
func (c *Context) Close() {
	c.cache.CloseAll()
}

// SetCommandTimeout changes the per-command network timeout used for every
// future command, including retroactively on every connection already open
// in the cache — the configuration surface's "command-timeout is also
// retroactively applied to all open connections" contract (§6).
func (c *Context) SetCommandTimeout(d time.Duration) {
	c.opts.CommandTimeout = d
	c.cache.ApplyCommandTimeout(d)
}

// slotForCommand resolves the routing slot for a parsed single- or
// zero-key command. Zero-key commands (e.g. PING, CLUSTER NODES itself) get
// slot -1, which addrForSlot resolves to any currently known node address.
func (c *Context) slotForCommand(cmd *cmdparse.Command) (int, error) {
	switch len(cmd.Keys) {
	case 0:
		return -1, nil
	case 1:
		return slotutil.Slot(string(cmd.Keys[0].Bytes(cmd.Raw))), nil
	default:
		return -1, fmt.Errorf("cluster: command has %d keys, must be fragmented first", len(cmd.Keys))
	}
}

// addrForSlot resolves the node address serving slot, triggering a
// topology refresh when the table doesn't (yet) cover it. slot of -1 (a
// zero-key command) falls back to any currently known node address.
func (c *Context) addrForSlot(slot int) (string, error) {
	rt := c.routeTable()
	if slot >= 0 {
		if node := rt.NodeFor(slot); node != nil {
			return node.Addr, nil
		}
	} else if rt != nil {
		for addr := range rt.Nodes {
			return addr, nil
		}
	}
	if err := c.forceRefresh(); err != nil {
		return "", err
	}
	rt = c.routeTable()
	if slot >= 0 {
		if node := rt.NodeFor(slot); node != nil {
			return node.Addr, nil
		}
		return "", errConfigf("slot %d is not served by any known node", slot)
	}
	for addr := range rt.Nodes {
		return addr, nil
	}
	return "", errConfigf("no known cluster node")
}

// forceRefresh runs a topology refresh against any currently reachable
// node, falling back to the configured seeds if the cache is empty.
func (c *Context) forceRefresh() error {
	rt := c.routeTable()
	if rt != nil {
		for addr := range rt.Nodes {
			if err := c.refreshTopologyFrom(addr); err == nil {
				return nil
			}
		}
	}
	var lastErr error
	for _, addr := range c.opts.AddNodes {
		if err := c.refreshTopologyFrom(addr); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = errConfigf("no seed address available for topology refresh")
	}
	return lastErr
}

// parseSlot is a tiny helper shared by the redirect path: MOVED/ASK carry
// their slot as a decimal string.
func parseSlot(s string) (int, error) {
	return strconv.Atoi(s)
}
