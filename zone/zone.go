// Package zone implements a tracked execution context. Work run inside the
// zone is observed so the owner can re-check its bindings once the outermost
// run returns; work run outside it is not.
package zone

// Zone is a single-goroutine tracked execution context. The zero value is
// ready to use.
type Zone struct {
	depth    int
	turns    int
	onStable []func()
}

func New() *Zone {
	return &Zone{}
}

// Run executes fn inside the zone. When the outermost Run returns, the turn
// is counted and the stable hooks fire.
func (z *Zone) Run(fn func()) {
	z.depth++
	defer z.leave()
	fn()
}

func (z *Zone) leave() {
	z.depth--
	if z.depth > 0 {
		return
	}
	z.turns++
	for _, hook := range z.onStable {
		hook()
	}
}

// RunOutside executes fn with tracking suspended, then restores the previous
// state.
func (z *Zone) RunOutside(fn func()) {
	saved := z.depth
	z.depth = 0
	defer func() { z.depth = saved }()
	fn()
}

// InZone reports whether the caller is running inside the zone.
func (z *Zone) InZone() bool {
	return z.depth > 0
}

// OnStable registers a hook run after every completed turn.
func (z *Zone) OnStable(hook func()) {
	z.onStable = append(z.onStable, hook)
}

// Turns returns the number of completed turns.
func (z *Zone) Turns() int {
	return z.turns
}

// Noop is a context without tracking: both operations call fn directly and
// nothing is ever inside it.
type Noop struct{}

func (Noop) Run(fn func())        { fn() }
func (Noop) RunOutside(fn func()) { fn() }
func (Noop) InZone() bool         { return false }
