package parser

import "strings"

// Flags is the bit set of options requested by a spec.
type Flags uint8

const (
	Capture Flags = 1 << iota
	Passive
	Once
	NoZone
	Stop
	PreventDefault
	InBrowser
)

// NativeFlags are the options a host listener registration understands.
const NativeFlags = Capture | Passive | Once

var flagNames = []struct {
	flag Flags
	name string
}{
	{Capture, "capture"},
	{Passive, "passive"},
	{Once, "once"},
	{NoZone, "noZone"},
	{Stop, "stop"},
	{PreventDefault, "preventDefault"},
	{InBrowser, "inBrowser"},
}

// FlagsOf ORs the flags of every recognised option character in options.
// Unknown characters are ignored.
func FlagsOf(options string) Flags {
	var f Flags
	for i := 0; i < len(options); i++ {
		f |= optionFlags[OptionSymbol(options[i])]
	}
	return f
}

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Native keeps only the bits that take part in native listener options.
func (f Flags) Native() Flags {
	return f & NativeFlags
}

// Names lists the set flags in bit order.
func (f Flags) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}
