package plugin

import (
	"testing"
	"time"

	"github.com/heathj/eventoptions/dom"
	"github.com/heathj/eventoptions/zone"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnce(t *testing.T) {
	tests := []struct {
		name     string
		features dom.Features
		options  string
		want     int
	}{
		{"without once", dom.ModernFeatures, "*", 5},
		{"native once", dom.ModernFeatures, "o", 1},
		{"host without once", dom.Features{OptionsObject: true, Passive: true}, "o", 1},
		{"legacy host", dom.Features{}, "o", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.features)
			calls := 0
			f.add(t, tt.options, f.el, counter(&calls))

			for i := 0; i < 5; i++ {
				f.el.Click()
			}

			assert.Equal(t, tt.want, calls)
			if tt.options == "o" {
				assert.Equal(t, 0, f.el.ListenerCount("click"))
			}
		})
	}
}

func TestOnceOverriddenOff(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)
	f.plugin.SetNativeSupport(NativeOnce, false)
	calls := 0
	f.add(t, "o", f.el, counter(&calls))

	f.el.Click()
	f.el.Click()

	assert.Equal(t, 1, calls)
}

func TestOnceWithoutOptionsDictionary(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures, WithNativeSupport(NativeCapture, false))
	require.True(t, f.plugin.NativeSupport(NativeOnce))

	calls := 0
	f.add(t, "o", f.el, counter(&calls))
	for i := 0; i < 3; i++ {
		f.el.Click()
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, f.el.ListenerCount("click"))
}

func TestStop(t *testing.T) {
	t.Run("siblings", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		first, second := 0, 0
		f.add(t, "s", f.el, counter(&first))
		f.add(t, "*", f.el, counter(&second))

		f.el.Click()

		assert.Equal(t, 1, first)
		assert.Equal(t, 0, second)
	})

	t.Run("ancestors", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		parent := f.el
		child := parent.AppendChild(f.window.CreateElement("span"))
		stopped, parentCalls := 0, 0

		f.add(t, "*", parent, counter(&parentCalls))
		f.add(t, "s", child, counter(&stopped))
		f.add(t, "*", parent, counter(&parentCalls))

		child.Click()

		assert.Equal(t, 1, stopped)
		assert.Equal(t, 0, parentCalls)
	})

	t.Run("nil callback", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		sibling := 0
		f.add(t, "s", f.el, nil)
		f.add(t, "*", f.el, counter(&sibling))

		assert.NotPanics(t, f.el.Click)
		assert.Equal(t, 0, sibling)
	})
}

func TestPreventDefault(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)
	prevented := false
	f.add(t, "d", f.el, func(e dom.Event) { prevented = e.DefaultPrevented() })

	f.el.Click()

	assert.True(t, prevented)
}

func TestPassive(t *testing.T) {
	tests := []struct {
		name     string
		features dom.Features
		want     bool
	}{
		{"native passive ignores preventDefault", dom.ModernFeatures, false},
		{"host without passive", dom.Features{OptionsObject: true}, true},
		{"legacy host", dom.Features{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.features)
			prevented := !tt.want
			f.add(t, "p", f.el, func(e dom.Event) {
				e.PreventDefault()
				prevented = e.DefaultPrevented()
			})

			f.el.Click()

			assert.Equal(t, tt.want, prevented)
		})
	}
}

func TestCapture(t *testing.T) {
	for _, features := range []dom.Features{dom.ModernFeatures, {}} {
		f := newFixture(t, features)
		parent := f.el
		child := parent.AppendChild(f.window.CreateElement("span"))

		var childVisited, inCapture, result bool
		f.add(t, "c", parent, func(dom.Event) { inCapture = !childVisited })
		f.add(t, "*", parent, func(dom.Event) { result = childVisited && inCapture })
		f.add(t, "*", child, func(dom.Event) { childVisited = true })

		child.Click()

		assert.True(t, result, "%+v", features)
	}
}

func TestZoneDispatch(t *testing.T) {
	t.Run("registered inside the zone", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		inZone := false
		f.add(t, "*", f.el, func(dom.Event) { inZone = f.zone.InZone() })

		f.el.Click()

		assert.True(t, inZone)
		assert.Equal(t, 2, f.zone.Turns())
	})

	t.Run("no zone option", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		inZone := true
		f.add(t, "n", f.el, func(dom.Event) { inZone = f.zone.InZone() })

		f.el.Click()

		assert.False(t, inZone)
		assert.Equal(t, 1, f.zone.Turns())
	})

	t.Run("registered outside the zone", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		inZone := true
		_, err := f.plugin.AddEventListener(f.el, "click.*", func(dom.Event) { inZone = f.zone.InZone() })
		require.NoError(t, err)

		f.el.Click()

		assert.False(t, inZone)
		assert.Equal(t, 0, f.zone.Turns())
	})

	t.Run("fired inside the zone", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		calls := 0
		f.add(t, "*", f.el, counter(&calls))

		f.zone.Run(f.el.Click)

		assert.Equal(t, 1, calls)
		assert.Equal(t, 2, f.zone.Turns())
	})
}

func TestInBrowser(t *testing.T) {
	t.Run("browser", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures)
		calls := 0
		f.add(t, "b", f.el, counter(&calls))
		f.el.Click()
		assert.Equal(t, 1, calls)
	})

	t.Run("server", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures, WithPlatform(PlatformServer))
		calls := 0

		local, err := f.plugin.AddEventListener(f.el, "click.b", counter(&calls))
		require.NoError(t, err)
		global, err := f.plugin.AddGlobalEventListener("window", "click.b", counter(&calls))
		require.NoError(t, err)
		require.NotNil(t, local)
		require.NotNil(t, global)

		assert.NotPanics(t, func() { local() })
		assert.NotPanics(t, func() { global() })
		for i := 0; i < 3; i++ {
			f.el.Click()
		}

		assert.Equal(t, 0, calls)
		assert.Equal(t, 0, f.el.ListenerCount("click"))
		assert.Equal(t, 0, f.window.ListenerCount("click"))
	})

	t.Run("server globals", func(t *testing.T) {
		p := New(nil, WithPlatform(PlatformServer))
		for _, name := range []string{"window", "document", "body", "html"} {
			dispose, err := p.AddGlobalEventListener(name, "click.*", nil)
			require.NoError(t, err, name)
			require.NotNil(t, dispose, name)
			assert.NotPanics(t, func() { dispose() })
		}
	})

	t.Run("server without the option", func(t *testing.T) {
		f := newFixture(t, dom.ModernFeatures, WithPlatform(PlatformServer))
		calls := 0
		f.add(t, "*", f.el, counter(&calls))
		f.el.Click()
		assert.Equal(t, 1, calls)
	})
}

func TestGlobalTargets(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)

	calls := map[string]int{}
	for _, name := range []string{"window", "document", "body"} {
		name := name
		dispose, err := f.plugin.AddGlobalEventListener(name, "click.*", func(dom.Event) { calls[name]++ })
		require.NoError(t, err, name)
		require.NotNil(t, dispose)
	}

	f.el.Click()

	assert.Equal(t, map[string]int{"window": 1, "document": 1, "body": 1}, calls)
}

func TestUnsupportedGlobalTarget(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)

	_, err := f.plugin.AddGlobalEventListener("html", "click.*", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTarget))
	assert.EqualError(t, err, "Unsupported event target html for event click.*")

	var targetErr *TargetError
	require.True(t, errors.As(err, &targetErr))
	assert.Equal(t, "html", targetErr.Target)

	bare := New(zone.New())
	_, err = bare.AddGlobalEventListener("body", "click.*", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTargetUnavailable))
	assert.False(t, errors.Is(err, ErrUnsupportedTarget))
}

// fire clicks el count times, advancing the clock by interval after each,
// then lets the clock settle. first receives the call count right after the
// first click.
func fire(f *fixture, count int, interval, settle time.Duration, calls *int) (first int) {
	for i := 0; i < count; i++ {
		f.el.Click()
		if i == 0 {
			first = *calls
		}
		f.window.Advance(interval)
	}
	f.window.Advance(settle)
	return first
}

func TestDebounce(t *testing.T) {
	tests := []struct {
		name      string
		options   string
		wantFirst int
	}{
		{"trailing", "*|debounce{50,0}", 0},
		{"leading", "*|debounce{50,1}", 1},
		{"default arguments", "*|debounce{}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, dom.ModernFeatures)
			calls := 0
			f.add(t, tt.options, f.el, counter(&calls))

			first := fire(f, 50, 5*time.Millisecond, 50*time.Millisecond, &calls)

			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, 1, calls)
			assert.Equal(t, 0, f.window.PendingTimers())
		})
	}
}

func TestDebounceDeliversLastEvent(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)
	var got []dom.Event
	f.add(t, "*|debounce{20}", f.el, func(e dom.Event) { got = append(got, e) })

	last := dom.NewMouseEvent("click")
	f.el.Click()
	f.window.Advance(5 * time.Millisecond)
	f.el.DispatchEvent(last)
	f.window.Advance(20 * time.Millisecond)

	require.Len(t, got, 1)
	assert.Same(t, last, got[0])
}

func TestDebounceSeparateBursts(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)
	calls := 0
	f.add(t, "*|debounce{50,1}", f.el, counter(&calls))

	fire(f, 10, 5*time.Millisecond, 60*time.Millisecond, &calls)
	fire(f, 10, 5*time.Millisecond, 60*time.Millisecond, &calls)

	assert.Equal(t, 2, calls)
}

func TestThrottle(t *testing.T) {
	const (
		wait   = 50 * time.Millisecond
		clicks = 50
		step   = 5 * time.Millisecond
	)
	elapsed := clicks * step
	expected := int(elapsed / wait)

	for _, tt := range []struct {
		name      string
		options   string
		wantFirst int
	}{
		{"trailing", "*|throttle{50,0}", 0},
		{"leading", "*|throttle{50,1}", 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, dom.ModernFeatures)
			calls := 0
			f.add(t, tt.options, f.el, counter(&calls))

			first := fire(f, clicks, step, wait, &calls)

			assert.Equal(t, tt.wantFirst, first)
			assert.GreaterOrEqual(t, calls, expected-1)
			assert.LessOrEqual(t, calls, expected+1)
		})
	}
}

func TestThrottleDeliversLastEventOfWindow(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)
	var got []dom.Event
	f.add(t, "*|throttle{30}", f.el, func(e dom.Event) { got = append(got, e) })

	events := []*dom.BasicEvent{dom.NewMouseEvent("click"), dom.NewMouseEvent("click"), dom.NewMouseEvent("click")}
	for _, e := range events {
		f.el.DispatchEvent(e)
		f.window.Advance(5 * time.Millisecond)
	}
	f.window.Advance(30 * time.Millisecond)

	require.Len(t, got, 1)
	assert.Same(t, events[2], got[0])
}

func TestDebounceWinsOverThrottle(t *testing.T) {
	f := newFixture(t, dom.ModernFeatures)
	calls := 0
	f.add(t, "*|throttle{10},debounce{50}", f.el, counter(&calls))

	fire(f, 50, 5*time.Millisecond, 50*time.Millisecond, &calls)

	assert.Equal(t, 1, calls)
}

func TestDisposeCancelsPendingDelivery(t *testing.T) {
	for _, options := range []string{"*|debounce{50}", "*|throttle{50}"} {
		t.Run(options, func(t *testing.T) {
			f := newFixture(t, dom.ModernFeatures)
			calls := 0
			dispose := f.add(t, options, f.el, counter(&calls))

			f.el.Click()
			dispose()
			f.window.Advance(100 * time.Millisecond)

			assert.Equal(t, 0, calls)
			assert.Equal(t, 0, f.window.PendingTimers())
		})
	}
}

func TestOnceWithDebounceStillDelivers(t *testing.T) {
	f := newFixture(t, dom.Features{OptionsObject: true})
	calls := 0
	f.add(t, "o|debounce{20}", f.el, counter(&calls))

	f.el.Click()
	f.el.Click()
	f.window.Advance(20 * time.Millisecond)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, f.el.ListenerCount("click"))
}
