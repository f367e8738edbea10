// Package sigslot provides typed in-process signals and slots with automatic,
// race-free mutual disconnection when either side goes away.
//
// A Signal broadcasts a value to every connected slot synchronously, in
// connection order. A slot is a function bound to a receiver: any type that
// embeds sigslot.Receiver. Signals and receivers track each other, so closing
// either one removes the links on both sides, and copying either one (Clone,
// CopySlots) carries its connections over.
//
// # Basic Usage
//
//	type Light struct {
//		sigslot.Receiver
//		state int
//	}
//
//	func (l *Light) Toggle(v int) { l.state = v }
//	func (l *Light) TurnOn()      { l.state = 1 }
//
//	type Switch struct {
//		Clicked sigslot.Signal0
//		Toggled sigslot.Signal[int]
//	}
//
//	sw := &Switch{}
//	l1, l2 := &Light{}, &Light{}
//
//	sigslot.Connect0(&sw.Clicked, l1, (*Light).TurnOn)
//	sigslot.Connect(&sw.Toggled, l2, (*Light).Toggle)
//
//	sw.Clicked.Emit()
//	sw.Toggled.Emit(2)
//
//	sw.Toggled.Disconnect(l2) // safe to repeat
//	l1.Close()                // removes l1 from every signal
//
// Method expressions such as (*Light).Toggle have exactly the func(D, A)
// shape Connect expects. Signal0 and Signal2 cover zero and two arguments;
// larger argument lists are passed as a struct through Signal[A].
//
// # Copying
//
// Clone copies a signal: the clone reaches the same receivers through its
// own connections, and disconnecting one does not affect the other.
// CopySlots copies a receiver: every signal connected to the source gets
// extra connections to the destination, and the source keeps its own.
//
// # Lock Policies
//
// Each signal picks a policy at construction:
//
//   - PolicyNone: no locking, single goroutine only
//   - PolicyLocal: one mutex per signal (default)
//   - PolicyGlobal: every signal shares ProcessLock
//
// The default comes from the SIGSLOT_DEFAULT_POLICY environment variable
// (none, local, global) and can be overridden per signal with WithPolicy or
// replaced by any sync.Locker with WithLocker.
//
// Emit holds the signal lock while slots run. Connect, Disconnect and Emit
// from inside a slot on the same signal are allowed only under PolicyNone;
// under the other policies they deadlock, and under PolicyGlobal so does
// calling any other global signal. A reentrant Emit under PolicyNone walks
// the connection list as it was when that Emit started, minus connections
// removed since: a receiver disconnected or closed from inside a slot is not
// called by the rest of that Emit, and a slot connected from inside one first
// runs on the next Emit.
//
// Receivers use a private leaf lock that is never held while calling into a
// signal, so the library itself never acquires locks in conflicting order.
//
// # Errors
//
// Connect returns ErrNilReceiver, ErrNilCallback, ErrReceiverClosed or
// ErrEmitterClosed and changes nothing on failure. CopySlots reports every
// signal it could not copy, joined with errors.Join. Disconnecting something
// that is not connected, and closing twice, are silent no-ops.
//
// Slot panics propagate to the Emit caller unless the signal was built with
// WithRecover, in which case they are logged and the remaining slots run.
//
// # Teardown
//
// Go has no destructors: owners embedding Receiver call Close when they are
// done, and signals that outlive their use should be closed as well. Until
// then a connected receiver stays reachable from its signals.
package sigslot
