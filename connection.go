package sigslot

import "github.com/google/uuid"

// ConnectionID identifies one connection within a signal.
type ConnectionID = uuid.UUID

// slot is a connection as seen by the untyped parts of a signal.
type slot[A any] interface {
	id() ConnectionID
	target() *Receiver
	invoke(args A)
	clone() slot[A]
	retarget(dst Slotted) (slot[A], bool)
	// detach marks the connection as removed from its signal. Both calls
	// require the owning signal's lock.
	detach()
	detached() bool
}

// binding ties a destination of type D to a slot function. Apart from the
// removed flag it is immutable: clone and retarget build new bindings.
type binding[D Slotted, A any] struct {
	cid  ConnectionID
	dest D
	recv *Receiver
	fn   func(D, A)

	removed bool
}

func newBinding[D Slotted, A any](dest D, fn func(D, A)) *binding[D, A] {
	return &binding[D, A]{
		cid:  uuid.New(),
		dest: dest,
		recv: dest.receiver(),
		fn:   fn,
	}
}

func (b *binding[D, A]) id() ConnectionID  { return b.cid }
func (b *binding[D, A]) target() *Receiver { return b.recv }

func (b *binding[D, A]) detach()        { b.removed = true }
func (b *binding[D, A]) detached() bool { return b.removed }

func (b *binding[D, A]) invoke(args A) {
	b.fn(b.dest, args)
}

func (b *binding[D, A]) clone() slot[A] {
	return newBinding(b.dest, b.fn)
}

// retarget reports false when dst cannot stand in for D.
func (b *binding[D, A]) retarget(dst Slotted) (slot[A], bool) {
	d, ok := dst.(D)
	if !ok {
		return nil, false
	}
	return newBinding(d, b.fn), true
}
