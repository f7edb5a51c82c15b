package plugin

import "github.com/pkg/errors"

var (
	// ErrConfigConflict is returned when a spec asks for passive and
	// preventDefault together.
	ErrConfigConflict = errors.New("EventOptions: You cannot use 'passive (p)' and 'preventDefault (d)' simultaneously")

	// ErrUnsupportedTarget is the cause of every TargetError.
	ErrUnsupportedTarget = errors.New("unsupported event target")

	// ErrTargetUnavailable is returned when a known global target has no
	// value in this host, e.g. a document without a body.
	ErrTargetUnavailable = errors.New("event target not available")

	// ErrMalformedSpec is returned when an event name without an option
	// block reaches AddEventListener. Hosts should ask Supports first.
	ErrMalformedSpec = errors.New("malformed event options spec")

	// ErrNilTarget is returned when AddEventListener gets no target.
	ErrNilTarget = errors.New("nil event target")

	// ErrNoTimers is returned when a spec uses a timing operator and the
	// plugin has no timer source.
	ErrNoTimers = errors.New("timing operator requires a timer source")
)

// TargetError reports a global target name that cannot be resolved.
type TargetError struct {
	Target    string
	EventName string
}

func (e *TargetError) Error() string {
	return "Unsupported event target " + e.Target + " for event " + e.EventName
}

func (e *TargetError) Unwrap() error {
	return ErrUnsupportedTarget
}
