package cluster

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/kevwan/rcluster/cmdparse"
	"github.com/kevwan/rcluster/fragment"
	"github.com/kevwan/rcluster/redis"
)

// ReplyCallback receives a submitted command's final outcome: either a
// decoded reply, or a non-nil error (connection failure, protocol error, or
// a TypeTooManyRetries error).
type ReplyCallback func(reply interface{}, err error)

// AsyncContext is the callback-driven wrapper around a Context. Rather than
// an externally driven single-threaded event loop, each submitted command
// runs on its own goroutine and the callback fires from that goroutine —
// Submit itself never blocks, which is the contract §4.9 asks for. See
// DESIGN.md for the reasoning behind this substitution.
type AsyncContext struct {
	ctx *Context

	mu             sync.Mutex
	refreshing     bool
	refreshLimiter *rate.Limiter

	onConnect    func(addr string)
	onDisconnect func(addr string, err error)
}

// refreshThrottle is the minimum gap between background topology refresh
// attempts (§4.9 "Topology refresh throttle").
const refreshThrottle = time.Second

// NewAsyncContext wraps ctx; onConnect/onDisconnect may be nil.
func NewAsyncContext(ctx *Context, onConnect func(string), onDisconnect func(string, error)) *AsyncContext {
	return &AsyncContext{
		ctx:            ctx,
		refreshLimiter: rate.NewLimiter(rate.Every(refreshThrottle), 1),
		onConnect:      onConnect,
		onDisconnect:   onDisconnect,
	}
}

// Submit dispatches one command without blocking. cb runs later, on a
// background goroutine, with the final reply or error. Cross-slot
// multi-key commands are rejected synchronously, before anything is
// dispatched, per §4.9's documented limitation.
func (a *AsyncContext) Submit(args []string, cb ReplyCallback) {
	if len(args) == 0 {
		cb(nil, errConfigf("cluster: empty command"))
		return
	}
	raw := redis.RawRequest(args...)
	cmd := cmdparse.Parse(a.ctx.nextID.Add(1), raw)
	if cmd.Status != cmdparse.StatusOK {
		cb(nil, errProtocolf("%s", cmd.Err))
		return
	}
	slot := cmd.Slot
	if cmd.IsMultiKey() {
		// Fragment sets cmd.Slot when every key maps to one slot.
		if _, err := fragment.Fragment(cmd, slotFunc); err != fragment.ErrNotMultiKey {
			cb(nil, errConfigf("cluster: asynchronous API does not support multi-key cross-slot commands"))
			return
		}
		slot = cmd.Slot
	} else {
		s, err := a.ctx.slotForCommand(cmd)
		if err != nil {
			cb(nil, err)
			return
		}
		slot = s
	}
	go a.runAttempt(cmd.Name, slot, args, 0, cb)
}

// SubmitToNode sends args directly to addr with no slot routing and no
// redirect/retry handling — the NO_RETRY variant from §4.9.
func (a *AsyncContext) SubmitToNode(addr string, args []string, cb ReplyCallback) {
	go func() {
		conn, err := a.ctx.cache.Get(addr)
		if err != nil {
			if a.onDisconnect != nil {
				a.onDisconnect(addr, err)
			}
			a.maybeRefresh()
			cb(nil, errIO(err))
			return
		}
		reply, err := conn.Do(args...)
		if err != nil && !isReplyError(err) {
			a.ctx.cache.Invalidate(addr)
			if a.onDisconnect != nil {
				a.onDisconnect(addr, err)
			}
			a.maybeRefresh()
		}
		cb(reply, err)
	}()
}

func (a *AsyncContext) runAttempt(cmdName string, slot int, args []string, retries int, cb ReplyCallback) {
	addr, err := a.ctx.addrForSlot(slot)
	if err != nil {
		cb(nil, err)
		return
	}
	a.sendToNode(cmdName, slot, addr, args, retries, cb, false)
}

func (a *AsyncContext) sendToNode(cmdName string, slot int, addr string, args []string, retries int, cb ReplyCallback, asking bool) {
	conn, err := a.ctx.cache.Get(addr)
	if err != nil {
		if a.onDisconnect != nil {
			a.onDisconnect(addr, err)
		}
		a.maybeRefresh()
		a.retryOrFail(cmdName, slot, args, retries, cb)
		return
	}
	if a.onConnect != nil {
		a.onConnect(addr)
	}

	reply, doErr := sendOnConn(conn, args, asking)
	if doErr != nil && !isReplyError(doErr) {
		a.ctx.log.Warnf("cluster: async %s on %s failed, invalidating connection: %v", cmdName, addr, doErr)
		a.ctx.cache.Invalidate(addr)
		if a.onDisconnect != nil {
			a.onDisconnect(addr, doErr)
		}
		a.maybeRefresh()
		cb(nil, errIO(doErr))
		return
	}

	replyErr, ok := doErr.(*redis.ReplyError)
	if !ok {
		cb(reply, doErr)
		return
	}
	kind, rslot, raddr := classifyReplyError(replyErr)
	switch kind {
	case redirectMoved:
		a.ctx.log.Debugf("cluster: async %s redirected MOVED slot=%d to %s", cmdName, rslot, raddr)
		a.ctx.patchSlot(rslot, raddr)
		a.maybeRefresh()
		a.retryOnNode(cmdName, slot, raddr, args, retries, cb, false)
	case redirectAsk:
		a.ctx.log.Debugf("cluster: async %s redirected ASK slot=%d to %s", cmdName, rslot, raddr)
		a.retryOnNode(cmdName, slot, raddr, args, retries, cb, true)
	case redirectTryAgain, redirectClusterDown:
		a.ctx.log.Debugf("cluster: async %s got %v, retrying on %s", cmdName, replyErr.Token(), addr)
		a.retryOnNode(cmdName, slot, addr, args, retries, cb, false)
	default:
		cb(reply, doErr)
	}
}

func (a *AsyncContext) retryOnNode(cmdName string, slot int, addr string, args []string, retries int, cb ReplyCallback, asking bool) {
	retries++
	if retries > a.ctx.opts.MaxRetryCount {
		cb(nil, errTooManyRetries(cmdName))
		return
	}
	a.sendToNode(cmdName, slot, addr, args, retries, cb, asking)
}

func (a *AsyncContext) retryOrFail(cmdName string, slot int, args []string, retries int, cb ReplyCallback) {
	retries++
	if retries > a.ctx.opts.MaxRetryCount {
		cb(nil, errTooManyRetries(cmdName))
		return
	}
	a.runAttempt(cmdName, slot, args, retries, cb)
}

// maybeRefresh triggers a background topology refresh, throttled to at most
// one attempt per refreshThrottle and never overlapping with one already in
// flight — the "ONGOING" sentinel from §4.9, expressed as a guarded bool
// instead of a magic timestamp value.
func (a *AsyncContext) maybeRefresh() {
	a.mu.Lock()
	if a.refreshing || !a.refreshLimiter.Allow() {
		a.mu.Unlock()
		return
	}
	a.refreshing = true
	a.mu.Unlock()

	go func() {
		defer func() {
			a.mu.Lock()
			a.refreshing = false
			a.mu.Unlock()
		}()
		addr := a.pickRefreshNode()
		if addr == "" {
			return
		}
		a.ctx.log.Debugf("cluster: async background topology refresh via %s", addr)
		if err := a.ctx.refreshTopologyFrom(addr); err != nil {
			a.ctx.log.Warnf("cluster: async background topology refresh via %s failed: %v", addr, err)
		}
	}()
}

// pickRefreshNode implements §4.9's node-selection heuristic: prefer a node
// with an already-cached (and therefore presumably healthy) connection,
// falling back to any known node or seed address.
func (a *AsyncContext) pickRefreshNode() string {
	rt := a.ctx.routeTable()
	if rt != nil {
		for addr := range rt.Nodes {
			if a.ctx.cache.Has(addr) {
				return addr
			}
		}
		for addr := range rt.Nodes {
			return addr
		}
	}
	for _, addr := range a.ctx.opts.AddNodes {
		return addr
	}
	return ""
}
