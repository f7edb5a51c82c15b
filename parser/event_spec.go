package parser

import "strings"

// EventSpec is a parsed event name. The zero value marks a name this
// package does not handle.
type EventSpec struct {
	Type      string
	Options   string
	Operators string
}

// ParseEventSpec splits raw into its type, option characters and operator
// block. The option characters are not validated; see Supports.
func ParseEventSpec(raw string) EventSpec {
	parts := strings.SplitN(raw, OptionSeparator, 2)
	if len(parts) != 2 {
		return EventSpec{}
	}

	eventType := strings.TrimSpace(parts[0])
	block := strings.SplitN(parts[1], BlockSeparator, 2)
	options := strings.TrimSpace(block[0])
	if eventType == "" || options == "" {
		return EventSpec{}
	}

	var operators string
	if len(block) == 2 {
		operators = strings.TrimSpace(block[1])
	}

	return EventSpec{Type: eventType, Options: options, Operators: operators}
}

// Valid reports whether both the type and the option block are present.
func (s EventSpec) Valid() bool {
	return s.Type != "" && s.Options != ""
}

// Flags returns the option flags named by the option block.
func (s EventSpec) Flags() Flags {
	return FlagsOf(s.Options)
}

func (s EventSpec) String() string {
	if !s.Valid() {
		return ""
	}
	out := s.Type + OptionSeparator + s.Options
	if s.Operators != "" {
		out += BlockSeparator + s.Operators
	}
	return out
}
