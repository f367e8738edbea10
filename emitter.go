package sigslot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/sigslot/core/logger"
)

// core is the registry shared by every signal arity. It owns the ordered
// connection list and keeps each target receiver's sender set in step with it.
//
// Lock order: the signal lock may be held while taking a receiver's leaf lock,
// never the other way round, and no two signal locks are ever held together
// by the registry itself.
//
// Removals replace the connection slice instead of editing it in place and
// mark the removed connections, so an Emit that is already iterating
// (possible only through reentrancy under PolicyNone) walks the slice it
// started with and skips whatever was removed since.
type core[A any] struct {
	initOnce sync.Once
	opts     options
	mu       sync.Locker
	log      *slog.Logger

	// +checklocks:mu
	conns []slot[A]
	// +checklocks:mu
	closed bool

	stats counters
}

func (c *core[A]) init() {
	c.initOnce.Do(func() { c.setup(options{}) })
}

// configure applies opts. It has no effect once the signal has been used.
func (c *core[A]) configure(opts []Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	c.initOnce.Do(func() { c.setup(o) })
}

func (c *core[A]) setup(o options) {
	o.policy = o.policy.resolve()
	c.opts = o

	if o.locker != nil {
		c.mu = o.locker
	} else {
		c.mu = lockerFor(o.policy)
	}

	c.log = o.logger
	if c.log == nil {
		c.log = logger.Discard()
	}
}

// Policy returns the resolved lock policy. Signals built with WithLocker
// report the policy they were configured with, which does not describe the
// custom locker.
func (c *core[A]) Policy() Policy {
	c.init()
	return c.opts.policy
}

func (c *core[A]) connect(s slot[A]) error {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrEmitterClosed
	}
	if !s.target().register(c) {
		return ErrReceiverClosed
	}
	c.conns = append(c.conns, s)
	c.stats.connects.Add(1)

	c.debug("slot connected", "connect",
		logger.ID("connection_id", s.id()),
		logger.Count("slots", len(c.conns)),
	)
	return nil
}

// Disconnect removes every connection targeting dest. It reports whether
// anything was removed; disconnecting a receiver that was never connected
// is a no-op.
func (c *core[A]) Disconnect(dest Slotted) bool {
	if isNil(dest) {
		return false
	}
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.removeTarget(dest.receiver())
	if n > 0 {
		c.debug("receiver disconnected", "disconnect", logger.Count("removed", n))
	}
	return n > 0
}

// DisconnectID removes the single connection with the given id. The signal
// stays registered with the receiver while other connections still target it.
func (c *core[A]) DisconnectID(id ConnectionID) bool {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, s := range c.conns {
		if s.id() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	recv := c.conns[idx].target()
	c.conns[idx].detach()
	next := make([]slot[A], 0, len(c.conns)-1)
	next = append(next, c.conns[:idx]...)
	next = append(next, c.conns[idx+1:]...)
	c.conns = next
	c.stats.disconnects.Add(1)

	if !c.targets(recv) {
		recv.unregister(c)
	}

	c.debug("slot disconnected", "disconnect", logger.ID("connection_id", id))
	return true
}

// DisconnectAll removes every connection. It is idempotent.
func (c *core[A]) DisconnectAll() {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
}

// Close disconnects everything and turns Emit into a no-op. Later Connect
// calls return ErrEmitterClosed. It is idempotent.
func (c *core[A]) Close() {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		c.debug("signal closed", "close", logger.Count("slots", len(c.conns)))
	}
	c.clear()
}

// Len returns the number of connections.
func (c *core[A]) Len() int {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.conns)
}

// IsConnected reports whether at least one connection targets dest.
func (c *core[A]) IsConnected(dest Slotted) bool {
	if isNil(dest) {
		return false
	}
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targets(dest.receiver())
}

// Stats returns a snapshot of the signal's counters.
func (c *core[A]) Stats() Stats {
	c.init()
	c.mu.Lock()
	n := len(c.conns)
	c.mu.Unlock()
	return c.stats.snapshot(n)
}

// slotDisconnect is called by a receiver tearing itself down.
func (c *core[A]) slotDisconnect(r *Receiver) {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := c.removeTarget(r); n > 0 {
		c.debug("receiver swept", "sweep", logger.Count("removed", n))
	}
}

// slotDuplicate appends a copy of every connection targeting src, bound to
// dst. Either all copies are added or none. A closed signal is skipped.
func (c *core[A]) slotDuplicate(src *Receiver, dst Slotted) error {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	var dups []slot[A]
	for _, s := range c.conns {
		if s.target() != src {
			continue
		}
		d, ok := s.retarget(dst)
		if !ok {
			err := fmt.Errorf("%w: connection %s expects a different receiver type", ErrIncompatibleReceiver, s.id())
			c.debug("receiver duplication rejected", "duplicate", logger.Error(err))
			return err
		}
		dups = append(dups, d)
	}
	if len(dups) == 0 {
		return nil
	}
	if !dst.receiver().register(c) {
		return ErrReceiverClosed
	}

	c.conns = append(c.conns, dups...)
	c.stats.connects.Add(int64(len(dups)))
	c.debug("receiver duplicated", "duplicate", logger.Count("added", len(dups)))
	return nil
}

// cloneInto copies the connections of c, in order, into the empty registry dst.
func (c *core[A]) cloneInto(dst *core[A]) {
	c.init()
	c.mu.Lock()
	snapshot := c.conns
	opts := c.opts
	c.mu.Unlock()

	// A local policy yields a fresh mutex; shared lockers carry over.
	dst.initOnce.Do(func() { dst.setup(opts) })

	dst.mu.Lock()
	defer dst.mu.Unlock()

	for _, s := range snapshot {
		cl := s.clone()
		// A receiver closed since the snapshot rejects the clone.
		if !cl.target().register(dst) {
			continue
		}
		dst.conns = append(dst.conns, cl)
		dst.stats.connects.Add(1)
	}
	dst.debug("signal cloned", "clone", logger.Count("slots", len(dst.conns)))
}

func (c *core[A]) emit(args A) {
	c.init()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stats.emits.Add(1)

	conns := c.conns
	for _, s := range conns {
		if s.detached() {
			continue
		}
		if c.opts.recover {
			c.safeInvoke(s, args)
		} else {
			s.invoke(args)
		}
		c.stats.invocations.Add(1)
	}
}

func (c *core[A]) safeInvoke(s slot[A], args A) {
	defer func() {
		if r := recover(); r != nil {
			c.stats.panics.Add(1)
			c.log.LogAttrs(context.Background(), slog.LevelError, "slot panicked",
				logger.Component("sigslot"),
				logger.Action("emit"),
				logger.ID("connection_id", s.id()),
				logger.Panic(r),
				logger.Stack(),
			)
		}
	}()
	s.invoke(args)
}

// removeTarget drops every connection to r and unregisters c from r.
// Caller holds c.mu.
func (c *core[A]) removeTarget(r *Receiver) int {
	kept := make([]slot[A], 0, len(c.conns))
	for _, s := range c.conns {
		if s.target() != r {
			kept = append(kept, s)
		} else {
			s.detach()
		}
	}

	n := len(c.conns) - len(kept)
	if n > 0 {
		c.conns = kept
		c.stats.disconnects.Add(int64(n))
	}
	r.unregister(c)
	return n
}

// clear drops every connection. Caller holds c.mu.
func (c *core[A]) clear() {
	if len(c.conns) == 0 {
		return
	}

	seen := make(map[*Receiver]struct{}, len(c.conns))
	for _, s := range c.conns {
		s.detach()
		r := s.target()
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		r.unregister(c)
	}

	c.stats.disconnects.Add(int64(len(c.conns)))
	c.conns = nil
}

// targets reports whether any connection points at r. Caller holds c.mu.
func (c *core[A]) targets(r *Receiver) bool {
	for _, s := range c.conns {
		if s.target() == r {
			return true
		}
	}
	return false
}

func (c *core[A]) debug(msg, action string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !c.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs,
		logger.Component("sigslot"),
		logger.Action(action),
		logger.Policy(c.opts.policy.String()),
	)
	c.log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
