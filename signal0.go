package sigslot

// Signal0 is a signal without arguments.
type Signal0 struct {
	core[struct{}]
}

// New0 creates an argument-less signal configured with opts.
func New0(opts ...Option) *Signal0 {
	s := &Signal0{}
	s.configure(opts)
	return s
}

// Connect0 binds fn to dest on s.
func Connect0[D Slotted](s *Signal0, dest D, fn func(D)) (ConnectionID, error) {
	if fn == nil {
		return connect[D, struct{}](&s.core, dest, nil)
	}
	return connect(&s.core, dest, func(d D, _ struct{}) { fn(d) })
}

// Emit calls every connected slot.
func (s *Signal0) Emit() {
	s.emit(struct{}{})
}

// Clone returns a new signal with a copy of every connection.
func (s *Signal0) Clone() *Signal0 {
	n := &Signal0{}
	s.cloneInto(&n.core)
	return n
}
