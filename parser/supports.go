package parser

import "strings"

// Supports reports whether raw is an event name handled by this package: a
// type, and an option block made only of known option characters, each used
// once. Key events reject one-character blocks.
func Supports(raw string) bool {
	spec := ParseEventSpec(raw)
	if !spec.Valid() {
		return false
	}

	options := spec.Options
	if len(options) == 1 && IsKeyEvent(spec.Type) {
		return false
	}

	for i := 0; i < len(options); i++ {
		if !IsOptionSymbol(options[i]) {
			return false
		}
		if strings.LastIndexByte(options, options[i]) != i {
			return false
		}
	}
	return true
}
