package sigslot

import (
	"fmt"
	"strings"
	"sync"
)

// Policy selects how a signal or receiver synchronizes access to its state.
type Policy int

const (
	// PolicyDefault resolves to DefaultPolicy() when the value is first used.
	PolicyDefault Policy = iota
	// PolicyNone performs no locking. Single-goroutine use only: concurrent
	// access under this policy is a data race and is the caller's responsibility.
	PolicyNone
	// PolicyLocal gives every signal its own mutex.
	PolicyLocal
	// PolicyGlobal routes every signal through ProcessLock. Simplest to reason
	// about, but unrelated signals serialize against each other.
	PolicyGlobal
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyDefault:
		return "default"
	case PolicyNone:
		return "none"
	case PolicyLocal:
		return "local"
	case PolicyGlobal:
		return "global"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name into a Policy. Matching is case-insensitive;
// "single_threaded", "multi_threaded_local" and "multi_threaded_global" are
// accepted as aliases.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return PolicyDefault, nil
	case "none", "single_threaded":
		return PolicyNone, nil
	case "local", "multi_threaded_local":
		return PolicyLocal, nil
	case "global", "multi_threaded_global":
		return PolicyGlobal, nil
	default:
		return PolicyDefault, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// SharedLock is a mutex meant to be shared by many signals. Pass it with
// WithLocker to serialize a group of signals without touching ProcessLock.
type SharedLock struct {
	mu sync.Mutex
}

// NewSharedLock returns a new shared lock handle.
func NewSharedLock() *SharedLock {
	return &SharedLock{}
}

// Lock acquires the lock.
func (l *SharedLock) Lock() { l.mu.Lock() }

// Unlock releases the lock.
func (l *SharedLock) Unlock() { l.mu.Unlock() }

// ProcessLock is the lock shared by every signal using PolicyGlobal. It lives
// for the whole process and is never replaced.
var ProcessLock = NewSharedLock()

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// lockerFor returns the locker a signal uses for p.
func lockerFor(p Policy) sync.Locker {
	switch p {
	case PolicyNone:
		return noLock{}
	case PolicyGlobal:
		return ProcessLock
	default:
		return &sync.Mutex{}
	}
}

// resolve maps PolicyDefault onto the configured default.
func (p Policy) resolve() Policy {
	if p == PolicyDefault {
		return DefaultPolicy()
	}
	return p
}
