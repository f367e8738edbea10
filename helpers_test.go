package sigslot_test

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/sigslot"
)

// recorder collects slot calls across receivers in call order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type light struct {
	sigslot.Receiver
	name string
	rec  *recorder
}

func newLight(name string, rec *recorder) *light {
	return &light{name: name, rec: rec}
}

func (l *light) Toggle(v int)            { l.rec.add("%s:toggle:%d", l.name, v) }
func (l *light) TurnOn()                 { l.rec.add("%s:on", l.name) }
func (l *light) Dim(level int, s string) { l.rec.add("%s:dim:%d:%s", l.name, level, s) }

// otherReceiver has a different concrete type from light.
type otherReceiver struct {
	sigslot.Receiver
}
