package plugin

import (
	"github.com/heathj/eventoptions/dom"
	"github.com/heathj/eventoptions/parser"
)

// eventOptions returns the native options value for flags. Hosts without
// dictionary support get a plain useCapture boolean. Otherwise every
// registration asking for the same capture/passive/once combination shares
// one cached dictionary, whatever the order of the option characters.
func (p *Plugin) eventOptions(flags parser.Flags) dom.Options {
	if !p.nativeEventObjectSupported {
		return dom.UseCapture(flags.Has(parser.Capture))
	}

	key := flags.Native()
	if options, ok := p.nativeOptions[key]; ok {
		return options
	}

	options := dom.NewListenerOptions(key.Has(parser.Capture), key.Has(parser.Passive), key.Has(parser.Once))
	p.nativeOptions[key] = options
	p.log.WithField("options", key.String()).Debug("native options cached")
	return options
}

// CachedOptions returns the number of native options dictionaries created
// so far.
func (p *Plugin) CachedOptions() int {
	return len(p.nativeOptions)
}
