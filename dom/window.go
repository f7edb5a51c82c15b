package dom

import (
	"time"

	"github.com/heathj/eventoptions/webidl"
)

// https://html.spec.whatwg.org/multipage/nav-history-apis.html#window
//
// Window is the global object of the in-memory host. It owns the document,
// the listener features of every node in it and a virtual clock that drives
// timers.
type Window struct {
	Document *Node
	Features Features

	list   listenerList
	timers timerQueue
}

// NewWindow returns a window holding an empty html/head/body document.
func NewWindow(features Features) *Window {
	w := &Window{Features: features}
	w.Document = newNode(w, DocumentNode, "#document")
	html := w.Document.AppendChild(w.CreateElement("html"))
	html.AppendChild(w.CreateElement("head"))
	html.AppendChild(w.CreateElement("body"))
	return w
}

// https://dom.spec.whatwg.org/#dom-document-createelement
func (w *Window) CreateElement(localName webidl.DOMString) *Node {
	return newNode(w, ElementNode, localName)
}

// https://html.spec.whatwg.org/multipage/dom.html#dom-document-body
func (w *Window) Body() *Node {
	if w.Document == nil {
		return nil
	}
	if bodies := w.Document.GetElementsByTagName("body"); len(bodies) > 0 {
		return bodies[0]
	}
	return nil
}

func (w *Window) AddEventListener(eventType string, listener EventListener, options Options) error {
	return w.list.add(w.Features, eventType, listener, options)
}

func (w *Window) RemoveEventListener(eventType string, listener EventListener, options Options) {
	w.list.remove(w.Features, eventType, listener, options)
}

// ListenerCount returns the number of listeners registered for eventType.
func (w *Window) ListenerCount(eventType string) int {
	return w.list.count(eventType)
}

func (w *Window) DispatchEvent(e *BasicEvent) bool {
	e.timeStamp = webidl.TimeStamp(w.Now())
	return dispatch(w, e)
}

func (w *Window) listeners() *listenerList {
	return &w.list
}

func (w *Window) parentTarget() dispatchTarget {
	return nil
}

// Now returns the virtual time elapsed since the window was created.
func (w *Window) Now() time.Duration {
	return w.timers.now
}

// https://html.spec.whatwg.org/multipage/timers-and-user-prompts.html#dom-settimeout
func (w *Window) SetTimeout(fn func(), timeout time.Duration) TimerID {
	return w.timers.schedule(fn, timeout)
}

// https://html.spec.whatwg.org/multipage/timers-and-user-prompts.html#dom-cleartimeout
func (w *Window) ClearTimeout(id TimerID) {
	w.timers.cancel(id)
}

// Advance moves the virtual clock forward by d, running every timer that
// falls due on the way in order.
func (w *Window) Advance(d time.Duration) {
	w.timers.advance(d)
}

// PendingTimers returns the number of scheduled timers.
func (w *Window) PendingTimers() int {
	return len(w.timers.pending)
}
