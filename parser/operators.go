package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrUnsupportedOperator is the cause of every OperatorError.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// OperatorError names an operator block this package does not know.
type OperatorError struct {
	Operator string
}

func (e *OperatorError) Error() string {
	return "Unsupported operator " + e.Operator
}

func (e *OperatorError) Unwrap() error {
	return ErrUnsupportedOperator
}

// DefaultWait applies when an operator has no usable time argument.
const DefaultWait = 50 * time.Millisecond

var blockEnd = regexp.MustCompile(`},?`)

// OperatorSettings maps each operator found in a spec to its raw arguments.
type OperatorSettings map[OperatorSymbol][]string

// ParseOperators reads "name{arg,arg}" blocks. Text that does not split into
// a name and an argument list is ignored, so trailing noise after a block is
// tolerated; an unknown name inside a block is an error. A repeated operator
// keeps its last arguments.
func ParseOperators(operators string) (OperatorSettings, error) {
	settings := OperatorSettings{}
	if operators == "" {
		return settings, nil
	}

	for _, chunk := range blockEnd.Split(operators, -1) {
		parts := strings.Split(chunk, "{")
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		if name == "" || !IsOperatorSymbol(name) {
			return nil, &OperatorError{Operator: name}
		}

		var args []string
		for _, arg := range strings.Split(parts[1], OperatorSeparator) {
			if arg != "" {
				args = append(args, arg)
			}
		}
		settings[OperatorSymbol(name)] = args
	}
	return settings, nil
}

// Timing is the decoded argument list of a debounce or throttle block.
type Timing struct {
	Wait      time.Duration
	Immediate bool
}

// Timing decodes the arguments of op. The wait defaults to DefaultWait when
// missing or not a number and is clamped at zero; any non-zero immediate
// flag turns on leading-edge calls.
func (s OperatorSettings) Timing(op OperatorSymbol) (Timing, bool) {
	args, ok := s[op]
	if !ok {
		return Timing{}, false
	}

	t := Timing{Wait: DefaultWait}
	if len(args) > 0 {
		if ms, ok := leadingInt(args[0]); ok {
			if ms < 0 {
				ms = 0
			}
			t.Wait = time.Duration(ms) * time.Millisecond
		}
	}
	if len(args) > 1 {
		if flag, ok := leadingInt(args[1]); ok {
			t.Immediate = flag != 0
		}
	}
	return t, true
}

// Operator picks the timing operator to apply. Debounce wins when both are
// present.
func (s OperatorSettings) Operator() (OperatorSymbol, Timing, bool) {
	for _, op := range []OperatorSymbol{Debounce, Throttle} {
		if t, ok := s.Timing(op); ok {
			return op, t, true
		}
	}
	return "", Timing{}, false
}

// leadingInt reads an optionally signed decimal prefix of s, ignoring
// surrounding whitespace, the way "50ms" reads as 50.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		if n < 1<<40 {
			n = n*10 + int64(s[digits]-'0')
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
