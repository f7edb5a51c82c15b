// Package parser reads the event-name mini-language:
//
//	spec      := type "." options ["|" operators]
//	options   := optionchar+
//	operators := block ("," block)*
//	block     := opname "{" arglist "}"
//
// e.g. "click.pcon" or "scroll.*|throttle{50,1}".
package parser

// OptionSymbol is a single option character.
type OptionSymbol byte

const (
	CaptureSymbol        OptionSymbol = 'c'
	PassiveSymbol        OptionSymbol = 'p'
	OnceSymbol           OptionSymbol = 'o'
	NoZoneSymbol         OptionSymbol = 'n'
	StopSymbol           OptionSymbol = 's'
	PreventDefaultSymbol OptionSymbol = 'd'
	InBrowserSymbol      OptionSymbol = 'b'
	// ForceSymbol carries no option. It lets a spec opt in without setting
	// anything else.
	ForceSymbol OptionSymbol = '*'
)

// OperatorSymbol names a timing operator.
type OperatorSymbol string

const (
	Debounce OperatorSymbol = "debounce"
	Throttle OperatorSymbol = "throttle"
)

const (
	OptionSeparator   = "."
	BlockSeparator    = "|"
	OperatorSeparator = ","
)

var optionFlags = map[OptionSymbol]Flags{
	CaptureSymbol:        Capture,
	PassiveSymbol:        Passive,
	OnceSymbol:           Once,
	NoZoneSymbol:         NoZone,
	StopSymbol:           Stop,
	PreventDefaultSymbol: PreventDefault,
	InBrowserSymbol:      InBrowser,
	ForceSymbol:          0,
}

var operatorSymbols = map[OperatorSymbol]bool{
	Debounce: true,
	Throttle: true,
}

// keyEvents reserve single-character option blocks for the host's own key
// aliases such as "keydown.enter".
var keyEvents = []string{"keydown", "keypress", "keyup"}

// IsOptionSymbol reports whether c is part of the option alphabet.
func IsOptionSymbol(c byte) bool {
	_, ok := optionFlags[OptionSymbol(c)]
	return ok
}

// IsOperatorSymbol reports whether name is a known timing operator.
func IsOperatorSymbol(name string) bool {
	return operatorSymbols[OperatorSymbol(name)]
}

// IsKeyEvent reports whether eventType is one of the key-press events.
func IsKeyEvent(eventType string) bool {
	for _, k := range keyEvents {
		if k == eventType {
			return true
		}
	}
	return false
}
