package plugin

import (
	"github.com/heathj/eventoptions/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NativeOption names a member of the native listener options dictionary.
type NativeOption string

const (
	NativeCapture NativeOption = "capture"
	NativePassive NativeOption = "passive"
	NativeOnce    NativeOption = "once"
)

var nativeOptionNames = []NativeOption{NativeCapture, NativePassive, NativeOnce}

const probeEventType = "test"

// supportProbe records which dictionary members a host reads while it
// registers a listener.
type supportProbe struct {
	read map[NativeOption]bool
}

func (s *supportProbe) Capture() bool {
	s.read[NativeCapture] = true
	return false
}

func (s *supportProbe) Passive() bool {
	s.read[NativePassive] = true
	return false
}

func (s *supportProbe) Once() bool {
	s.read[NativeOnce] = true
	return false
}

// checkSupport registers a throwaway listener on the window global with a
// probe dictionary. Members the host reads are supported; a host that fails
// on the dictionary supports none of them.
func (p *Plugin) checkSupport() {
	for _, option := range nativeOptionNames {
		p.nativeSupport[option] = false
	}
	defer func() {
		p.nativeEventObjectSupported = p.nativeSupport[NativeCapture]
		p.log.WithFields(logrus.Fields{
			"capture": p.nativeSupport[NativeCapture],
			"passive": p.nativeSupport[NativePassive],
			"once":    p.nativeSupport[NativeOnce],
		}).Debug("native listener options probed")
	}()

	resolve, ok := p.globals[GlobalWindow]
	if !ok {
		return
	}
	target := resolve()
	if target == nil {
		return
	}

	probe := &supportProbe{read: map[NativeOption]bool{}}
	if err := register(target, probeEventType, noopListener, probe); err != nil {
		p.log.WithError(err).Debug("host rejected listener options dictionary")
		return
	}
	for option, read := range probe.read {
		p.nativeSupport[option] = read
	}
	target.RemoveEventListener(probeEventType, noopListener, probe)
}

// register calls the host and turns a panicking host into an error.
func register(target dom.EventTarget, eventType string, l dom.EventListener, options dom.Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("host panicked registering %q listener: %v", eventType, r)
		}
	}()
	return target.AddEventListener(eventType, l, options)
}

var noopListener = dom.ListenerFunc(func(dom.Event) {})

// SetNativeSupport overrides the probed support of one native option.
// Turning capture off makes every registration fall back to a plain
// useCapture boolean.
func (p *Plugin) SetNativeSupport(option NativeOption, supported bool) {
	p.nativeSupport[option] = supported
	if option == NativeCapture {
		p.nativeEventObjectSupported = supported
	}
}

// NativeSupport reports the probed (or overridden) support of option.
func (p *Plugin) NativeSupport(option NativeOption) bool {
	return p.nativeSupport[option]
}
