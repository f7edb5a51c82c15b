package webidl

import "time"

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://w3c.github.io/hr-time/#dom-domhighrestimestamp
type DOMHighResTimeStamp float64

// TimeStamp converts an offset from the time origin into milliseconds.
func TimeStamp(sinceOrigin time.Duration) DOMHighResTimeStamp {
	return DOMHighResTimeStamp(float64(sinceOrigin) / float64(time.Millisecond))
}
