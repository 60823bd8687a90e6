// Package pool is the connection cache: one owned connection per node
// address, lazily dialed on first use. It is deliberately NOT a
// size-N-per-address pool — a cluster context needs at most one live
// connection to a given node at a time (§4.6), so connections are cached
// as a single handle per address that is redialed in place on error rather
// than drawn from a fixed-size buffered pool.
//
// The cache is address-keyed and outlives any one topology snapshot — a
// node map references connections by address, never owns them (see
// topology.MigrateLive).
package pool

import (
	"sync"
	"time"

	"github.com/kevwan/rcluster/rclog"
	"github.com/kevwan/rcluster/redis"
)

// Dialer opens a fresh connection to addr, performing whatever connect
// timeout, TLS handshake, and AUTH exchange the caller's configuration
// requires.
type Dialer func(addr string) (*redis.Client, error)

// Cache is a set of owned connections keyed by node address.
type Cache struct {
	mu     sync.Mutex
	dial   Dialer
	conns  map[string]*redis.Client
	closed bool
	log    *rclog.Logger
}

// NewCache creates an empty cache that dials new connections with dial.
func NewCache(dial Dialer) *Cache {
	return &Cache{dial: dial, conns: map[string]*redis.Client{}, log: rclog.Default}
}

// SetLogger overrides the logger used to report connection churn (dial,
// invalidate, close). Defaults to rclog.Default.
func (c *Cache) SetLogger(l *rclog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l
}

// Get returns the owned connection for addr, dialing it on first use. A
// connection once obtained stays cached until Invalidate or CloseAll is
// called — callers that observe an I/O error on it must call Invalidate so
// the next Get redials rather than handing back the broken connection.
func (c *Cache) Get(addr string) (*redis.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errClosed
	}
	if conn, ok := c.conns[addr]; ok {
		return conn, nil
	}
	conn, err := c.dial(addr)
	if err != nil {
		c.log.Warnf("pool: dial %s failed: %v", addr, err)
		return nil, err
	}
	c.log.Debugf("pool: dialed %s", addr)
	c.conns[addr] = conn
	return conn, nil
}

// Invalidate closes and drops the cached connection for addr, if any — the
// sync engine calls this on an I/O error so the next Get reconnects in
// place.
func (c *Cache) Invalidate(addr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conn, ok := c.conns[addr]; ok {
		conn.Close()
		delete(c.conns, addr)
		c.log.Debugf("pool: invalidated connection to %s", addr)
	}
}

// Has reports whether a connection is currently cached for addr, without
// dialing one.
func (c *Cache) Has(addr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.conns[addr]
	return ok
}

// ApplyCommandTimeout retroactively applies a new per-call timeout to every
// currently open connection, per the configuration surface's
// command-timeout option.
func (c *Cache) ApplyCommandTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, conn := range c.conns {
		conn.SetCommandTimeout(d)
	}
}

// CloseAll closes every cached connection and marks the cache closed; a
// closed cache's Get always fails.
func (c *Cache) CloseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.conns)
	for addr, conn := range c.conns {
		conn.Close()
		delete(c.conns, addr)
	}
	c.closed = true
	if n > 0 {
		c.log.Debugf("pool: closed %d connections", n)
	}
}

var errClosed = &cacheClosedError{}

type cacheClosedError struct{}

func (*cacheClosedError) Error() string { return "pool: connection cache is closed" }
