package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

type timer struct {
	frames int
	fn     func()
}

// TimersData holds named delayed calls for one entity, counted in frames.
type TimersData struct {
	pending map[string]*timer
}

// Schedule runs fn after the given number of ticks. A pending call with the
// same name is replaced.
func (t *TimersData) Schedule(name string, frames int, fn func()) {
	if t.pending == nil {
		t.pending = make(map[string]*timer)
	}
	t.pending[name] = &timer{frames: frames, fn: fn}
}

func (t *TimersData) Cancel(name string) {
	delete(t.pending, name)
}

func (t *TimersData) Pending(name string) bool {
	_, ok := t.pending[name]
	return ok
}

// Tick advances every timer by one frame and runs the due ones in name order.
// Calls may schedule new timers; those start counting on the next tick.
func (t *TimersData) Tick() {
	var due []string
	for name, tm := range t.pending {
		tm.frames--
		if tm.frames <= 0 {
			due = append(due, name)
		}
	}
	sort.Strings(due)

	calls := make([]func(), 0, len(due))
	for _, name := range due {
		calls = append(calls, t.pending[name].fn)
		delete(t.pending, name)
	}
	for _, fn := range calls {
		fn()
	}
}

var Timers = donburi.NewComponentType[TimersData]()
