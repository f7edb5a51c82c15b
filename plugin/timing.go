package plugin

import (
	"github.com/heathj/eventoptions/dom"
	"github.com/heathj/eventoptions/parser"
)

// operator is a timing layer that owns a pending timer.
type operator interface {
	wrap(next Handler) Handler
	cancel()
}

func newOperator(timers dom.Timers, op parser.OperatorSymbol, t parser.Timing) operator {
	switch op {
	case parser.Debounce:
		return &debouncer{timers: timers, timing: t}
	case parser.Throttle:
		return &throttler{timers: timers, timing: t}
	}
	return nil
}

// debouncer delivers once input has been quiet for the wait. With
// Immediate it delivers the first event of a burst and swallows the rest.
type debouncer struct {
	timers  dom.Timers
	timing  parser.Timing
	next    Handler
	timeout dom.TimerID
	armed   bool
	wait    bool
}

func (d *debouncer) wrap(next Handler) Handler {
	d.next = next
	return d.handle
}

func (d *debouncer) handle(e dom.Event) {
	if d.armed {
		d.timers.ClearTimeout(d.timeout)
	}
	d.timeout = d.timers.SetTimeout(func() {
		d.armed = false
		if d.timing.Immediate {
			d.wait = false
			return
		}
		d.next(e)
	}, d.timing.Wait)
	d.armed = true

	if d.timing.Immediate && !d.wait {
		d.wait = true
		d.next(e)
	}
}

func (d *debouncer) cancel() {
	if d.armed {
		d.timers.ClearTimeout(d.timeout)
	}
	d.armed = false
	d.wait = false
}

// throttler delivers at most once per window. With Immediate the event that
// opens the window is delivered; otherwise the last event seen in the window
// is delivered when it closes.
type throttler struct {
	timers  dom.Timers
	timing  parser.Timing
	next    Handler
	timeout dom.TimerID
	open    bool
	last    dom.Event
}

func (t *throttler) wrap(next Handler) Handler {
	t.next = next
	return t.handle
}

func (t *throttler) handle(e dom.Event) {
	t.last = e
	if t.open {
		return
	}
	t.open = true
	t.timeout = t.timers.SetTimeout(func() {
		t.open = false
		last := t.last
		t.last = nil
		if !t.timing.Immediate {
			t.next(last)
		}
	}, t.timing.Wait)

	if t.timing.Immediate {
		t.next(e)
	}
}

func (t *throttler) cancel() {
	if t.open {
		t.timers.ClearTimeout(t.timeout)
	}
	t.open = false
	t.last = nil
}
