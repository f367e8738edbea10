package sigslot

import "errors"

var (
	// ErrNilReceiver is returned when a nil receiver is connected or copied.
	ErrNilReceiver = errors.New("sigslot: nil receiver")

	// ErrNilCallback is returned when Connect is given a nil slot function.
	ErrNilCallback = errors.New("sigslot: nil callback")

	// ErrEmitterClosed is returned when connecting to a signal after Close.
	ErrEmitterClosed = errors.New("sigslot: signal closed")

	// ErrReceiverClosed is returned when connecting a receiver after its Close.
	ErrReceiverClosed = errors.New("sigslot: receiver closed")

	// ErrIncompatibleReceiver is returned by CopySlots when source and destination
	// have different concrete types.
	ErrIncompatibleReceiver = errors.New("sigslot: incompatible receiver types")

	// ErrReceiverInUse is returned by SetPolicy once the receiver has been used.
	ErrReceiverInUse = errors.New("sigslot: receiver already in use")

	// ErrInvalidPolicy is returned when a policy name cannot be parsed.
	ErrInvalidPolicy = errors.New("sigslot: invalid lock policy")
)
