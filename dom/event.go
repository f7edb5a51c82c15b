package dom

import "github.com/heathj/eventoptions/webidl"

type EventPhase uint16

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

// https://dom.spec.whatwg.org/#interface-event
type Event interface {
	Type() string
	Target() EventTarget
	CurrentTarget() EventTarget
	EventPhase() EventPhase
	Bubbles() bool
	Cancelable() bool
	DefaultPrevented() bool
	TimeStamp() webidl.DOMHighResTimeStamp
	StopPropagation()
	StopImmediatePropagation()
	PreventDefault()
}

// https://dom.spec.whatwg.org/#dictdef-eventinit
type EventInit struct {
	Bubbles    bool
	Cancelable bool
}

// BasicEvent is the Event implementation dispatched by the in-memory host.
type BasicEvent struct {
	eventType     string
	target        EventTarget
	currentTarget EventTarget
	eventPhase    EventPhase
	bubbles       bool
	cancelable    bool
	timeStamp     webidl.DOMHighResTimeStamp

	canceled                 bool
	stopPropagation          bool
	stopImmediatePropagation bool
	inPassiveListener        bool
	dispatching              bool
}

func NewEvent(eventType string, init EventInit) *BasicEvent {
	return &BasicEvent{
		eventType:  eventType,
		bubbles:    init.Bubbles,
		cancelable: init.Cancelable,
	}
}

// NewMouseEvent returns an event initialized the way a user agent fires a click.
func NewMouseEvent(eventType string) *BasicEvent {
	return NewEvent(eventType, EventInit{Bubbles: true, Cancelable: true})
}

func (e *BasicEvent) Type() string                          { return e.eventType }
func (e *BasicEvent) Target() EventTarget                   { return e.target }
func (e *BasicEvent) CurrentTarget() EventTarget            { return e.currentTarget }
func (e *BasicEvent) EventPhase() EventPhase                { return e.eventPhase }
func (e *BasicEvent) Bubbles() bool                         { return e.bubbles }
func (e *BasicEvent) Cancelable() bool                      { return e.cancelable }
func (e *BasicEvent) DefaultPrevented() bool                { return e.canceled }
func (e *BasicEvent) TimeStamp() webidl.DOMHighResTimeStamp { return e.timeStamp }

func (e *BasicEvent) StopPropagation() {
	e.stopPropagation = true
}

func (e *BasicEvent) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediatePropagation = true
}

// https://dom.spec.whatwg.org/#set-the-canceled-flag
func (e *BasicEvent) PreventDefault() {
	if e.cancelable && !e.inPassiveListener {
		e.canceled = true
	}
}
