package sigslot

import "github.com/google/uuid"

// Signal broadcasts a value of type A to every connected slot, in the order
// the slots were connected. The zero value is ready to use with the default
// policy. A Signal must not be copied after first use; use Clone.
//
// Example:
//
//	type Switch struct {
//		Toggled sigslot.Signal[int]
//	}
//
//	sw := &Switch{}
//	light := &Light{}
//	sigslot.Connect(&sw.Toggled, light, (*Light).Toggle)
//	sw.Toggled.Emit(2)
type Signal[A any] struct {
	core[A]
}

// New creates a signal configured with opts.
func New[A any](opts ...Option) *Signal[A] {
	s := &Signal[A]{}
	s.configure(opts)
	return s
}

// Connect binds fn to dest on s. Each call adds a new connection, even for a
// receiver and function that are already connected. On error neither s nor
// dest is modified.
func Connect[D Slotted, A any](s *Signal[A], dest D, fn func(D, A)) (ConnectionID, error) {
	return connect(&s.core, dest, fn)
}

// Emit calls every connected slot with args while holding the signal lock.
// Slots must not call back into the same signal unless it uses PolicyNone.
// After Close, Emit does nothing.
func (s *Signal[A]) Emit(args A) {
	s.emit(args)
}

// Clone returns a new signal with a copy of every connection, in order. Each
// connected receiver is linked to the clone as well. The clone keeps the same
// options; under PolicyLocal it gets its own lock.
func (s *Signal[A]) Clone() *Signal[A] {
	n := &Signal[A]{}
	s.cloneInto(&n.core)
	return n
}

func connect[D Slotted, A any](c *core[A], dest D, fn func(D, A)) (ConnectionID, error) {
	if isNil(dest) {
		return uuid.Nil, ErrNilReceiver
	}
	if fn == nil {
		return uuid.Nil, ErrNilCallback
	}

	b := newBinding(dest, fn)
	if err := c.connect(b); err != nil {
		return uuid.Nil, err
	}
	return b.cid, nil
}
