package cmd

import (
	"github.com/heathj/eventoptions/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type timingReport struct {
	Wait      string `yaml:"wait"`
	Immediate bool   `yaml:"immediate"`
}

type parseReport struct {
	Event     string                                 `yaml:"event"`
	Supported bool                                   `yaml:"supported"`
	Type      string                                 `yaml:"type,omitempty"`
	Options   string                                 `yaml:"options,omitempty"`
	Flags     string                                 `yaml:"flags,omitempty"`
	Operators map[parser.OperatorSymbol]timingReport `yaml:"operators,omitempty"`
	Effective parser.OperatorSymbol                  `yaml:"effective_operator,omitempty"`
	Error     string                                 `yaml:"error,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <event name>...",
	Short: "parse prints how event names are read, as YAML.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports := make([]parseReport, 0, len(args))
		for _, name := range args {
			reports = append(reports, report(name))
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func report(name string) parseReport {
	r := parseReport{Event: name, Supported: parser.Supports(name)}

	spec := parser.ParseEventSpec(name)
	if !spec.Valid() {
		return r
	}
	r.Type = spec.Type
	r.Options = spec.Options
	r.Flags = spec.Flags().String()

	settings, err := parser.ParseOperators(spec.Operators)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	for _, op := range []parser.OperatorSymbol{parser.Debounce, parser.Throttle} {
		t, ok := settings.Timing(op)
		if !ok {
			continue
		}
		if r.Operators == nil {
			r.Operators = map[parser.OperatorSymbol]timingReport{}
		}
		r.Operators[op] = timingReport{Wait: t.Wait.String(), Immediate: t.Immediate}
	}
	if op, _, ok := settings.Operator(); ok {
		r.Effective = op
	}
	return r
}
