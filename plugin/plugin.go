// Package plugin binds native DOM listeners from event names that carry
// listener options and timing operators, e.g. "click.pcon" or
// "scroll.*|throttle{50,1}".
//
// A Plugin is owned by one event loop: it keeps no locks, and every call,
// including listener and timer callbacks, must come from that loop.
package plugin

import (
	"github.com/heathj/eventoptions/dom"
	"github.com/heathj/eventoptions/parser"
	"github.com/heathj/eventoptions/zone"
	"github.com/sirupsen/logrus"
)

// Zone is the tracked execution context events are delivered into.
type Zone interface {
	Run(fn func())
	RunOutside(fn func())
	InZone() bool
}

// Platform identifies the runtime the plugin is hosted in.
type Platform string

const (
	PlatformBrowser Platform = "browser"
	PlatformServer  Platform = "server"
)

func (p Platform) IsBrowser() bool {
	return p == PlatformBrowser
}

// Plugin is the event-options engine. Its native support table and options
// cache are filled once and shared by every registration.
type Plugin struct {
	zone     Zone
	platform Platform
	timers   dom.Timers
	globals  map[GlobalTarget]func() dom.EventTarget
	log      *logrus.Entry

	nativeEventObjectSupported bool
	nativeSupport              map[NativeOption]bool
	nativeOptions              map[parser.Flags]dom.Options

	overrides map[NativeOption]bool
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithPlatform sets the runtime platform. The default is PlatformBrowser.
func WithPlatform(p Platform) Option {
	return func(pl *Plugin) {
		pl.platform = p
	}
}

// WithTimers sets the timer source used by debounce and throttle.
func WithTimers(t dom.Timers) Option {
	return func(pl *Plugin) {
		pl.timers = t
	}
}

// WithGlobal registers the resolver of a named global target. The resolver
// runs on every AddGlobalEventListener call and may return nil when the
// target does not exist (yet).
func WithGlobal(name GlobalTarget, resolve func() dom.EventTarget) Option {
	return func(pl *Plugin) {
		pl.globals[name] = resolve
	}
}

// WithWindow wires an in-memory host window: its globals, its timers, and the
// window as the support probe target.
func WithWindow(w *dom.Window) Option {
	return func(pl *Plugin) {
		pl.timers = w
		pl.globals[GlobalWindow] = func() dom.EventTarget { return w }
		pl.globals[GlobalDocument] = func() dom.EventTarget {
			if w.Document == nil {
				return nil
			}
			return w.Document
		}
		pl.globals[GlobalBody] = func() dom.EventTarget {
			if body := w.Body(); body != nil {
				return body
			}
			return nil
		}
	}
}

// WithLogger sets the log entry. The default is the standard logger with a
// component field.
func WithLogger(entry *logrus.Entry) Option {
	return func(pl *Plugin) {
		pl.log = entry
	}
}

// WithNativeSupport forces the probe result for one native option.
func WithNativeSupport(option NativeOption, supported bool) Option {
	return func(pl *Plugin) {
		pl.overrides[option] = supported
	}
}

// New builds a plugin and probes the window global for native listener
// option support. A nil zone behaves like zone.Noop.
func New(z Zone, opts ...Option) *Plugin {
	if z == nil {
		z = zone.Noop{}
	}
	p := &Plugin{
		zone:          z,
		platform:      PlatformBrowser,
		globals:       map[GlobalTarget]func() dom.EventTarget{},
		log:           logrus.WithField("component", "eventoptions"),
		nativeSupport: map[NativeOption]bool{},
		nativeOptions: map[parser.Flags]dom.Options{},
		overrides:     map[NativeOption]bool{},
	}
	for _, opt := range opts {
		opt(p)
	}

	p.checkSupport()
	for option, supported := range p.overrides {
		p.SetNativeSupport(option, supported)
	}
	return p
}

// Supports reports whether eventName is handled by this plugin.
func (p *Plugin) Supports(eventName string) bool {
	return parser.Supports(eventName)
}

// Platform returns the runtime platform.
func (p *Plugin) Platform() Platform {
	return p.platform
}
