package sigslot

import (
	"log/slog"
	"sync"
)

type options struct {
	policy  Policy
	locker  sync.Locker
	logger  *slog.Logger
	recover bool
}

// Option configures a signal.
type Option func(*options)

// WithPolicy selects the lock policy. PolicyDefault defers to DefaultPolicy().
//
// Example:
//
//	sig := sigslot.New[int](sigslot.WithPolicy(sigslot.PolicyGlobal))
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLocker makes the signal use l instead of a policy-derived lock. The
// locker is shared, not copied, by clones. It must be a pointer type and must
// never be used as a receiver lock or held while calling into a signal.
//
// Example:
//
//	group := sigslot.NewSharedLock()
//	a := sigslot.New[int](sigslot.WithLocker(group))
//	b := sigslot.New[string](sigslot.WithLocker(group))
func WithLocker(l sync.Locker) Option {
	return func(o *options) {
		if l != nil {
			o.locker = l
		}
	}
}

// WithLogger enables debug logging of connection changes and error logging
// of recovered panics. Nil is ignored; the default logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecover makes Emit recover a panicking slot, log it and keep invoking
// the remaining slots. Without it the panic propagates to the Emit caller
// after the lock is released.
func WithRecover() Option {
	return func(o *options) {
		o.recover = true
	}
}
