package sigslot

import "sync/atomic"

// Stats is a point-in-time view of a signal's activity.
type Stats struct {
	Connections int   // current number of connections
	Connects    int64 // connections ever added, including clones and duplicates
	Disconnects int64 // connections ever removed
	Emits       int64 // Emit calls on an open signal
	Invocations int64 // slot calls that returned or were recovered
	Panics      int64 // slot panics recovered under WithRecover
}

type counters struct {
	connects    atomic.Int64
	disconnects atomic.Int64
	emits       atomic.Int64
	invocations atomic.Int64
	panics      atomic.Int64
}

func (c *counters) snapshot(connections int) Stats {
	return Stats{
		Connections: connections,
		Connects:    c.connects.Load(),
		Disconnects: c.disconnects.Load(),
		Emits:       c.emits.Load(),
		Invocations: c.invocations.Load(),
		Panics:      c.panics.Load(),
	}
}
