package dom

import "github.com/pkg/errors"

// ErrOptionsUnsupported is returned by hosts that cannot read the options
// argument passed to AddEventListener.
var ErrOptionsUnsupported = errors.New("listener options not supported")

// Options is the third argument of addEventListener. It is either a
// UseCapture flag or an AddEventListenerOptions dictionary.
type Options interface{}

// UseCapture is the legacy boolean form of the options argument.
type UseCapture bool

// https://dom.spec.whatwg.org/#dictdef-addeventlisteneroptions
//
// Hosts read the members through these methods, so an implementation can
// observe which members a host understands.
type AddEventListenerOptions interface {
	Capture() bool
	Passive() bool
	Once() bool
}

// ListenerOptions is a fixed AddEventListenerOptions value.
type ListenerOptions struct {
	capture bool
	passive bool
	once    bool
}

func NewListenerOptions(capture, passive, once bool) *ListenerOptions {
	return &ListenerOptions{capture: capture, passive: passive, once: once}
}

func (o *ListenerOptions) Capture() bool { return o.capture }
func (o *ListenerOptions) Passive() bool { return o.passive }
func (o *ListenerOptions) Once() bool    { return o.once }

// Features lists which parts of the options argument a host understands.
// The zero value is a legacy host that only knows the useCapture boolean.
type Features struct {
	// OptionsObject makes the host read AddEventListenerOptions. When false,
	// a dictionary is coerced to a truthy useCapture.
	OptionsObject bool
	Passive       bool
	Once          bool
	// RejectObjects makes a legacy host fail on anything but a boolean.
	RejectObjects bool
}

// ModernFeatures is a host that reads every member of AddEventListenerOptions.
var ModernFeatures = Features{OptionsObject: true, Passive: true, Once: true}

type flattened struct {
	capture bool
	passive bool
	once    bool
}

// https://dom.spec.whatwg.org/#concept-flatten-options
func (f Features) flatten(options Options) (flattened, error) {
	switch o := options.(type) {
	case nil:
		return flattened{}, nil
	case UseCapture:
		return flattened{capture: bool(o)}, nil
	case bool:
		return flattened{capture: o}, nil
	case AddEventListenerOptions:
		if !f.OptionsObject {
			if f.RejectObjects {
				return flattened{}, errors.Wrapf(ErrOptionsUnsupported, "%T", options)
			}
			return flattened{capture: true}, nil
		}
		fl := flattened{capture: o.Capture()}
		if f.Passive {
			fl.passive = o.Passive()
		}
		if f.Once {
			fl.once = o.Once()
		}
		return fl, nil
	default:
		return flattened{}, errors.Wrapf(ErrOptionsUnsupported, "%T", options)
	}
}

// flattenCapture only reads the capture member, which is all removal needs.
func (f Features) flattenCapture(options Options) bool {
	switch o := options.(type) {
	case UseCapture:
		return bool(o)
	case bool:
		return o
	case AddEventListenerOptions:
		if !f.OptionsObject {
			return true
		}
		return o.Capture()
	}
	return false
}
