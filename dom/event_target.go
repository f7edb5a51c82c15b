package dom

// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget interface {
	AddEventListener(eventType string, listener EventListener, options Options) error
	RemoveEventListener(eventType string, listener EventListener, options Options)
}

// https://dom.spec.whatwg.org/#callbackdef-eventlistener
//
// Listeners are matched by identity on removal, so implementations must be
// comparable (pointers in practice).
type EventListener interface {
	HandleEvent(e Event)
}

type listenerFunc struct {
	fn func(Event)
}

func (l *listenerFunc) HandleEvent(e Event) { l.fn(e) }

// ListenerFunc adapts fn to an EventListener. Every call returns a distinct
// listener.
func ListenerFunc(fn func(Event)) EventListener {
	return &listenerFunc{fn: fn}
}

// https://dom.spec.whatwg.org/#concept-event-listener
type listenerEntry struct {
	eventType string
	callback  EventListener
	capture   bool
	passive   bool
	once      bool
	removed   bool
}

// https://dom.spec.whatwg.org/#eventtarget-event-listener-list
type listenerList struct {
	entries []*listenerEntry
}

func (l *listenerList) find(eventType string, callback EventListener, capture bool) int {
	for i, entry := range l.entries {
		if entry.eventType == eventType && entry.callback == callback && entry.capture == capture {
			return i
		}
	}
	return -1
}

// https://dom.spec.whatwg.org/#add-an-event-listener
func (l *listenerList) add(f Features, eventType string, callback EventListener, options Options) error {
	fl, err := f.flatten(options)
	if err != nil {
		return err
	}
	if callback == nil || l.find(eventType, callback, fl.capture) >= 0 {
		return nil
	}
	l.entries = append(l.entries, &listenerEntry{
		eventType: eventType,
		callback:  callback,
		capture:   fl.capture,
		passive:   fl.passive,
		once:      fl.once,
	})
	return nil
}

// https://dom.spec.whatwg.org/#remove-an-event-listener
func (l *listenerList) remove(f Features, eventType string, callback EventListener, options Options) {
	l.removeAt(l.find(eventType, callback, f.flattenCapture(options)))
}

func (l *listenerList) removeEntry(entry *listenerEntry) {
	for i, e := range l.entries {
		if e == entry {
			l.removeAt(i)
			return
		}
	}
}

func (l *listenerList) removeAt(i int) {
	if i < 0 {
		return
	}
	l.entries[i].removed = true
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
}

func (l *listenerList) snapshot(eventType string) []*listenerEntry {
	var out []*listenerEntry
	for _, entry := range l.entries {
		if entry.eventType == eventType {
			out = append(out, entry)
		}
	}
	return out
}

// count returns the number of listeners registered for eventType.
func (l *listenerList) count(eventType string) int {
	return len(l.snapshot(eventType))
}

// dispatchTarget is an EventTarget that participates in the in-memory
// event path.
type dispatchTarget interface {
	EventTarget
	listeners() *listenerList
	parentTarget() dispatchTarget
}

// https://dom.spec.whatwg.org/#concept-event-dispatch
func dispatch(target dispatchTarget, e *BasicEvent) bool {
	if e.dispatching {
		return !e.canceled
	}
	e.dispatching = true
	e.target = target

	path := []dispatchTarget{target}
	for p := target.parentTarget(); p != nil; p = p.parentTarget() {
		path = append(path, p)
	}

	for i := len(path) - 1; i >= 0 && !e.stopPropagation; i-- {
		e.eventPhase = CapturingPhase
		if i == 0 {
			e.eventPhase = AtTargetPhase
		}
		invoke(path[i], e, true)
	}

	for i := 0; i < len(path) && !e.stopPropagation; i++ {
		if i == 0 {
			e.eventPhase = AtTargetPhase
		} else {
			if !e.bubbles {
				break
			}
			e.eventPhase = BubblingPhase
		}
		invoke(path[i], e, false)
	}

	e.eventPhase = NoneEventPhase
	e.currentTarget = nil
	e.dispatching = false
	e.stopPropagation = false
	e.stopImmediatePropagation = false
	return !e.canceled
}

// https://dom.spec.whatwg.org/#concept-event-listener-inner-invoke
func invoke(t dispatchTarget, e *BasicEvent, capturePass bool) {
	e.currentTarget = t
	list := t.listeners()
	for _, entry := range list.snapshot(e.eventType) {
		if e.stopImmediatePropagation {
			return
		}
		if entry.removed || entry.capture != capturePass {
			continue
		}
		if entry.once {
			list.removeEntry(entry)
		}
		e.inPassiveListener = entry.passive
		entry.callback.HandleEvent(e)
		e.inPassiveListener = false
	}
}
