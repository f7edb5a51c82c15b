package plugin

// GlobalTarget names a global event target.
type GlobalTarget string

const (
	GlobalWindow   GlobalTarget = "window"
	GlobalDocument GlobalTarget = "document"
	GlobalBody     GlobalTarget = "body"
)

// IsGlobalTarget reports whether name is one of window, document or body.
func IsGlobalTarget(name string) bool {
	switch GlobalTarget(name) {
	case GlobalWindow, GlobalDocument, GlobalBody:
		return true
	}
	return false
}
