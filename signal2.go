package sigslot

type pair[A, B any] struct {
	a A
	b B
}

// Signal2 is a signal carrying two arguments.
type Signal2[A, B any] struct {
	core[pair[A, B]]
}

// New2 creates a two-argument signal configured with opts.
func New2[A, B any](opts ...Option) *Signal2[A, B] {
	s := &Signal2[A, B]{}
	s.configure(opts)
	return s
}

// Connect2 binds fn to dest on s.
func Connect2[D Slotted, A, B any](s *Signal2[A, B], dest D, fn func(D, A, B)) (ConnectionID, error) {
	if fn == nil {
		return connect[D, pair[A, B]](&s.core, dest, nil)
	}
	return connect(&s.core, dest, func(d D, p pair[A, B]) { fn(d, p.a, p.b) })
}

// Emit calls every connected slot with a and b.
func (s *Signal2[A, B]) Emit(a A, b B) {
	s.emit(pair[A, B]{a: a, b: b})
}

// Clone returns a new signal with a copy of every connection.
func (s *Signal2[A, B]) Clone() *Signal2[A, B] {
	n := &Signal2[A, B]{}
	s.cloneInto(&n.core)
	return n
}
