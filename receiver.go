package sigslot

import (
	"errors"
	"reflect"
	"sync"
)

// sender is the part of a signal a receiver needs for teardown and copying.
type sender interface {
	slotDisconnect(r *Receiver)
	slotDuplicate(src *Receiver, dst Slotted) error
}

// Slotted is implemented by any type embedding Receiver.
type Slotted interface {
	receiver() *Receiver
}

// Receiver records which signals are connected to its owner. Embed it in
// the owning type and call Close when the owner is done:
//
//	type Light struct {
//		sigslot.Receiver
//		on bool
//	}
//
//	l := &Light{}
//	defer l.Close()
//
// The address of the Receiver is its identity, so the owner must not be
// copied by value once connected; use CopySlots to duplicate connections.
//
// The receiver guards its sender set with a private leaf lock that is never
// held while calling into a signal, which keeps every lock policy free of
// lock-order inversions.
type Receiver struct {
	initOnce sync.Once
	policy   Policy
	mu       sync.Locker

	// +checklocks:mu
	senders map[sender]struct{}
	// +checklocks:mu
	closed bool
}

func (r *Receiver) receiver() *Receiver { return r }

func (r *Receiver) init() {
	r.initOnce.Do(func() { r.setup(PolicyDefault) })
}

func (r *Receiver) setup(p Policy) {
	r.policy = p.resolve()
	if r.policy == PolicyNone {
		r.mu = noLock{}
	} else {
		r.mu = &sync.Mutex{}
	}
	r.senders = make(map[sender]struct{})
}

// SetPolicy overrides the default policy. It must be called before the
// receiver is first used; afterwards it returns ErrReceiverInUse.
// Any policy other than PolicyNone uses the private leaf lock.
func (r *Receiver) SetPolicy(p Policy) error {
	applied := false
	r.initOnce.Do(func() {
		applied = true
		r.setup(p)
	})
	if !applied {
		return ErrReceiverInUse
	}
	return nil
}

// Policy returns the resolved policy of the receiver.
func (r *Receiver) Policy() Policy {
	r.init()
	return r.policy
}

// register adds s to the sender set. It fails once the receiver is closed.
func (r *Receiver) register(s sender) bool {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	r.senders[s] = struct{}{}
	return true
}

func (r *Receiver) unregister(s sender) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.senders, s)
}

func (r *Receiver) snapshot() []sender {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]sender, 0, len(r.senders))
	for s := range r.senders {
		out = append(out, s)
	}
	return out
}

// DisconnectAll removes every connection targeting the receiver from every
// signal. Calling it on an unconnected receiver is a no-op.
func (r *Receiver) DisconnectAll() {
	// Each slotDisconnect calls back into unregister, so iterate a copy.
	for _, s := range r.snapshot() {
		s.slotDisconnect(r)
	}
}

// Close disconnects the receiver from every signal and rejects further
// connections with ErrReceiverClosed. It is idempotent. When Close is called
// from a slot under PolicyNone, an Emit already in progress on the same
// signal does not reach the receiver afterwards.
func (r *Receiver) Close() {
	r.init()
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.DisconnectAll()
}

// Closed reports whether Close has been called.
func (r *Receiver) Closed() bool {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// SenderCount returns the number of distinct signals connected to the receiver.
func (r *Receiver) SenderCount() int {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.senders)
}

func (r *Receiver) hasSender(s sender) bool {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.senders[s]
	return ok
}

// CopySlots connects dst to every signal src is connected to, using the same
// slot functions. src keeps its own connections. dst and src must have the
// same concrete type; copying a receiver onto itself is a no-op.
//
// Each signal copies all of its connections to src or none of them. A signal
// holding a connection whose slot function expects a type other than dst's
// (for example one connected through &src.Receiver) is left unchanged, and
// its ErrIncompatibleReceiver is joined into the returned error; the other
// signals are still copied. Closed signals are skipped.
//
// Example:
//
//	l1 := &Light{}
//	sigslot.Connect(sw.Clicked, l1, (*Light).Toggle)
//
//	l2 := &Light{}
//	_ = sigslot.CopySlots(l2, l1) // sw.Clicked now reaches both lights
func CopySlots(dst, src Slotted) error {
	if isNil(dst) || isNil(src) {
		return ErrNilReceiver
	}
	if reflect.TypeOf(dst) != reflect.TypeOf(src) {
		return ErrIncompatibleReceiver
	}

	from, to := src.receiver(), dst.receiver()
	if from == to {
		return nil
	}
	if to.Closed() {
		return ErrReceiverClosed
	}

	var errs []error
	for _, s := range from.snapshot() {
		if err := s.slotDuplicate(from, dst); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func isNil(s Slotted) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
