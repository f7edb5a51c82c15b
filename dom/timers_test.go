package dom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimersRunInOrder(t *testing.T) {
	w := NewWindow(ModernFeatures)
	var order []string

	w.SetTimeout(func() { order = append(order, "b") }, 20*time.Millisecond)
	w.SetTimeout(func() { order = append(order, "a") }, 10*time.Millisecond)
	w.SetTimeout(func() { order = append(order, "c") }, 20*time.Millisecond)
	cleared := w.SetTimeout(func() { order = append(order, "cleared") }, 5*time.Millisecond)
	w.ClearTimeout(cleared)

	w.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)
	assert.Equal(t, 15*time.Millisecond, w.Now())

	w.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, w.PendingTimers())
}

func TestTimerScheduledFromTimer(t *testing.T) {
	w := NewWindow(ModernFeatures)
	var fired []time.Duration

	w.SetTimeout(func() {
		fired = append(fired, w.Now())
		w.SetTimeout(func() { fired = append(fired, w.Now()) }, 10*time.Millisecond)
	}, 10*time.Millisecond)

	w.Advance(50 * time.Millisecond)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, fired)
}

func TestNegativeTimeoutRunsOnNextAdvance(t *testing.T) {
	w := NewWindow(ModernFeatures)
	ran := false
	w.SetTimeout(func() { ran = true }, -time.Second)
	w.Advance(0)
	assert.True(t, ran)
}

func TestParseHTML(t *testing.T) {
	w, err := ParseHTML(strings.NewReader(`<!doctype html>
<html><body><div id="outer"><button id="go">Go</button></div></body></html>`), ModernFeatures)
	require.NoError(t, err)

	button, err := w.Document.GetElementByID("go")
	require.NoError(t, err)
	outer, err := w.Document.GetElementByID("outer")
	require.NoError(t, err)

	assert.True(t, outer.Contains(button))
	assert.True(t, w.Body().Contains(outer))

	_, err = w.Document.GetElementByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	clicked := false
	require.NoError(t, w.AddEventListener("click", ListenerFunc(func(e Event) {
		clicked = e.Target() == EventTarget(button)
	}), nil))
	button.Click()
	assert.True(t, clicked)
}

func TestParseHTMLString(t *testing.T) {
	w, err := ParseHTMLString(`<body><p id="note">  </p><p id="text">hi</p></body>`, Features{})
	require.NoError(t, err)

	blank, err := w.Document.GetElementByID("note")
	require.NoError(t, err)
	text, err := w.Document.GetElementByID("text")
	require.NoError(t, err)

	assert.False(t, blank.HasChildNodes())
	require.True(t, text.HasChildNodes())
	assert.Equal(t, "hi", text.ChildNodes[0].TextContent)
	assert.Equal(t, Features{}, w.Features)
}
