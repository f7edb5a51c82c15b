package plugin

import "github.com/heathj/eventoptions/dom"

// Handler receives a dispatched event.
type Handler func(e dom.Event)

// Layer wraps the next handler of a chain.
type Layer func(next Handler) Handler

// chain composes layers outside-in: the first layer added sees the event
// first.
type chain struct {
	layers []Layer
}

func (c *chain) use(l Layer) *chain {
	if l != nil {
		c.layers = append(c.layers, l)
	}
	return c
}

func (c *chain) then(h Handler) Handler {
	for i := len(c.layers) - 1; i >= 0; i-- {
		h = c.layers[i](h)
	}
	return h
}

func stopLayer(next Handler) Handler {
	return func(e dom.Event) {
		e.StopPropagation()
		e.StopImmediatePropagation()
		next(e)
	}
}

func preventDefaultLayer(next Handler) Handler {
	return func(e dom.Event) {
		e.PreventDefault()
		next(e)
	}
}

// removeLayer detaches the host listener before the first event goes on. It
// stands in for native once on hosts that ignore it.
func removeLayer(remove func()) Layer {
	return func(next Handler) Handler {
		return func(e dom.Event) {
			remove()
			next(e)
		}
	}
}

// zoneLayer delivers events into the zone when the registration asked for
// tracking. Firings already inside the zone are delivered directly.
func zoneLayer(z Zone, tracked bool) Layer {
	return func(next Handler) Handler {
		if !tracked {
			return next
		}
		return func(e dom.Event) {
			if z.InZone() {
				next(e)
				return
			}
			z.Run(func() { next(e) })
		}
	}
}
