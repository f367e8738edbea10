package sigslot_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/sigslot"
)

type Light struct {
	sigslot.Receiver
	Name string
}

func (l *Light) ToggleState(i int) { fmt.Printf("%s: %d\n", l.Name, i) }
func (l *Light) TurnOn()           { fmt.Printf("%s: on\n", l.Name) }

type Switch struct {
	Clicked sigslot.Signal0
	Toggled sigslot.Signal[int]
}

func Example() {
	sw1 := &Switch{}
	l1, l2 := &Light{Name: "l1"}, &Light{Name: "l2"}

	_, _ = sigslot.Connect0(&sw1.Clicked, l1, (*Light).TurnOn)
	sw1.Clicked.Emit()

	_, _ = sigslot.Connect(&sw1.Toggled, l2, (*Light).ToggleState)
	sw1.Toggled.Emit(2)
	sw1.Toggled.Disconnect(l2)
	sw1.Toggled.Emit(3)

	// l3 picks up every connection l1 has.
	l3 := &Light{Name: "l3"}
	_ = sigslot.CopySlots(l3, l1)
	sw1.Clicked.Emit()

	// The copy reaches the same lights through its own connections.
	clicked := sw1.Clicked.Clone()
	l1.Close()
	clicked.Emit()

	// Output:
	// l1: on
	// l2: 2
	// l1: on
	// l3: on
	// l3: on
}

func ExampleCopySlots() {
	sig := sigslot.New[int]()
	lamp := &Light{Name: "lamp"}
	spare := &Light{Name: "spare"}

	_, _ = sigslot.Connect(sig, lamp, (*Light).ToggleState)
	if err := sigslot.CopySlots(spare, lamp); err != nil {
		fmt.Println(err)
		return
	}
	sig.Emit(1)

	err := sigslot.CopySlots(&otherReceiver{}, lamp)
	fmt.Println(errors.Is(err, sigslot.ErrIncompatibleReceiver))

	// Output:
	// lamp: 1
	// spare: 1
	// true
}

func ExampleSignal_Clone() {
	sig := sigslot.New[int]()
	lamp := &Light{Name: "lamp"}
	_, _ = sigslot.Connect(sig, lamp, (*Light).ToggleState)

	clone := sig.Clone()
	sig.Disconnect(lamp)

	sig.Emit(1)
	clone.Emit(2)
	fmt.Println(lamp.SenderCount())

	// Output:
	// lamp: 2
	// 1
}

func ExampleSignal2() {
	type Dimmer struct {
		sigslot.Receiver
	}

	sig := sigslot.New2[string, int]()
	d := &Dimmer{}
	_, _ = sigslot.Connect2(sig, d, func(_ *Dimmer, room string, level int) {
		fmt.Printf("%s dimmed to %d%%\n", room, level)
	})

	sig.Emit("kitchen", 40)

	// Output:
	// kitchen dimmed to 40%
}

func ExampleWithRecover() {
	sig := sigslot.New[int](sigslot.WithRecover())
	lamp := &Light{Name: "lamp"}

	_, _ = sigslot.Connect(sig, lamp, func(*Light, int) { panic("fuse blown") })
	_, _ = sigslot.Connect(sig, lamp, (*Light).ToggleState)

	sig.Emit(7)
	fmt.Println(sig.Stats().Panics)

	// Output:
	// lamp: 7
	// 1
}
