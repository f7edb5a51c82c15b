package dom

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled timeout.
type TimerID int

// Timers is the timer part of the host's global scope.
//
// https://html.spec.whatwg.org/multipage/timers-and-user-prompts.html#timers
type Timers interface {
	SetTimeout(fn func(), timeout time.Duration) TimerID
	ClearTimeout(id TimerID)
}

type timer struct {
	id   TimerID
	when time.Duration
	fn   func()
}

// timerQueue runs callbacks on virtual time. Callbacks run on the goroutine
// that calls advance.
type timerQueue struct {
	now     time.Duration
	nextID  TimerID
	pending []*timer
}

func (q *timerQueue) schedule(fn func(), timeout time.Duration) TimerID {
	if timeout < 0 {
		timeout = 0
	}
	q.nextID++
	q.pending = append(q.pending, &timer{id: q.nextID, when: q.now + timeout, fn: fn})
	return q.nextID
}

func (q *timerQueue) cancel(id TimerID) {
	for i, t := range q.pending {
		if t.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

func (q *timerQueue) advance(d time.Duration) {
	deadline := q.now + d
	for {
		t := q.next(deadline)
		if t == nil {
			break
		}
		q.now = t.when
		q.cancel(t.id)
		if t.fn != nil {
			t.fn()
		}
	}
	q.now = deadline
}

// next returns the earliest timer due at or before deadline. Ties run in
// scheduling order.
func (q *timerQueue) next(deadline time.Duration) *timer {
	if len(q.pending) == 0 {
		return nil
	}
	sort.SliceStable(q.pending, func(i, j int) bool {
		if q.pending[i].when == q.pending[j].when {
			return q.pending[i].id < q.pending[j].id
		}
		return q.pending[i].when < q.pending[j].when
	})
	if q.pending[0].when > deadline {
		return nil
	}
	return q.pending[0]
}
