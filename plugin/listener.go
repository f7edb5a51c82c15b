package plugin

import (
	"github.com/google/uuid"
	"github.com/heathj/eventoptions/dom"
	"github.com/heathj/eventoptions/parser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Disposer removes the listener it was returned for, along with any pending
// debounce or throttle delivery. Calling it again does nothing.
type Disposer func()

func noopDisposer() {}

// listener is the EventListener handed to the host. Being a pointer, it is
// also the identity the host matches on removal.
type listener struct {
	id        string
	eventType string
	target    dom.EventTarget
	options   dom.Options
	handler   Handler
	op        operator
	zone      Zone
	log       *logrus.Entry
	disposed  bool
}

func (l *listener) HandleEvent(e dom.Event) {
	l.handler(e)
}

// detach removes the host registration with the exact options value it was
// registered with.
func (l *listener) detach() {
	l.target.RemoveEventListener(l.eventType, l, l.options)
}

func (l *listener) dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.zone.RunOutside(l.detach)
	if l.op != nil {
		l.op.cancel()
	}
	l.log.Debug("listener disposed")
}

// AddEventListener registers callback on target for the event named by
// eventName, applying its options and timing operator. A nil callback is
// replaced by a no-op. Registration always happens outside the zone; events
// are delivered into it when the call itself was made inside the zone and
// the spec does not carry NoZone.
func (p *Plugin) AddEventListener(target dom.EventTarget, eventName string, callback func(dom.Event)) (Disposer, error) {
	spec := parser.ParseEventSpec(eventName)
	flags := spec.Flags()
	log := p.log.WithField("event", eventName)

	if flags.Has(parser.InBrowser) && !p.platform.IsBrowser() {
		log.WithField("platform", p.platform).Debug("browser-only listener skipped")
		return noopDisposer, nil
	}
	if !spec.Valid() {
		return nil, errors.Wrapf(ErrMalformedSpec, "%q", eventName)
	}
	if target == nil {
		return nil, errors.Wrapf(ErrNilTarget, "%q", eventName)
	}
	if callback == nil {
		callback = func(dom.Event) {}
	}
	if flags.Has(parser.Passive) && flags.Has(parser.PreventDefault) {
		return nil, errors.WithStack(ErrConfigConflict)
	}

	settings, err := parser.ParseOperators(spec.Operators)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	op, timing, timed := settings.Operator()
	if timed && p.timers == nil {
		return nil, errors.Wrapf(ErrNoTimers, "%q", eventName)
	}

	l := &listener{
		id:        uuid.NewString(),
		eventType: spec.Type,
		target:    target,
		options:   p.eventOptions(flags),
		zone:      p.zone,
	}
	l.log = log.WithField("registration", l.id)

	c := &chain{}
	if flags.Has(parser.Stop) {
		c.use(stopLayer)
	}
	if flags.Has(parser.PreventDefault) {
		c.use(preventDefaultLayer)
	}
	// A useCapture boolean cannot carry once, whatever the probe found.
	if flags.Has(parser.Once) && (!p.nativeEventObjectSupported || !p.nativeSupport[NativeOnce]) {
		c.use(removeLayer(l.detach))
	}
	if timed {
		l.op = newOperator(p.timers, op, timing)
		c.use(l.op.wrap)
	}
	c.use(zoneLayer(p.zone, !flags.Has(parser.NoZone) && p.zone.InZone()))
	l.handler = c.then(Handler(callback))

	p.zone.RunOutside(func() {
		err = register(target, spec.Type, l, l.options)
	})
	if err != nil {
		if l.op != nil {
			l.op.cancel()
		}
		return nil, errors.Wrapf(err, "add %q listener", eventName)
	}

	fields := logrus.Fields{"flags": flags.String()}
	if timed {
		fields["operator"] = op
		fields["wait"] = timing.Wait
	}
	l.log.WithFields(fields).Debug("listener registered")
	return l.dispose, nil
}

// AddGlobalEventListener is AddEventListener on the window, document or body
// global. Globals only exist in a browser: on any other platform every
// global registration gets an inert disposer.
func (p *Plugin) AddGlobalEventListener(name string, eventName string, callback func(dom.Event)) (Disposer, error) {
	if !p.platform.IsBrowser() {
		p.log.WithFields(logrus.Fields{"event": eventName, "target": name}).Debug("global listener skipped outside the browser")
		return noopDisposer, nil
	}
	if !IsGlobalTarget(name) {
		return nil, errors.WithStack(&TargetError{Target: name, EventName: eventName})
	}

	var target dom.EventTarget
	if resolve, ok := p.globals[GlobalTarget(name)]; ok {
		target = resolve()
	}
	if target == nil {
		return nil, errors.Wrapf(ErrTargetUnavailable, "%s for event %q", name, eventName)
	}
	return p.AddEventListener(target, eventName, callback)
}
