package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/heathj/eventoptions/dom"
	"github.com/heathj/eventoptions/parser"
	"github.com/heathj/eventoptions/plugin"
	"github.com/heathj/eventoptions/zone"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultDocument = `<!DOCTYPE html><html><body><div id="target"></div></body></html>`

var hosts = map[string]dom.Features{
	"modern":        dom.ModernFeatures,
	"no-once":       {OptionsObject: true, Passive: true},
	"no-passive":    {OptionsObject: true, Once: true},
	"legacy":        {},
	"strict-legacy": {RejectObjects: true},
}

var (
	htmlPath    string
	targetID    string
	host        string
	fireCount   int
	interval    time.Duration
	outsideZone bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <event name>",
	Short: "simulate binds an event name in an in-memory page and fires events at it.",
	Long: `
		Simulate loads an HTML document (or a one-element default page), binds the
		event name on the element with the given id and fires the event there
		count times, interval apart, on virtual time. It then reports how many
		calls were delivered, how many zone turns ran and how many native
		option values were cached.
		`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		features, ok := hosts[host]
		if !ok {
			return errors.Errorf("unknown host %q, want one of %s", host, hostNames())
		}

		var r io.Reader = strings.NewReader(defaultDocument)
		if htmlPath != "" {
			f, err := os.Open(htmlPath)
			if err != nil {
				return errors.WithStack(err)
			}
			defer f.Close()
			r = f
		}

		res, err := simulate(r, features, args[0])
		if err != nil {
			return err
		}
		res.print(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&htmlPath, "html", "", "HTML document to load")
	simulateCmd.Flags().StringVar(&targetID, "id", "target", "id of the element to bind on")
	simulateCmd.Flags().StringVar(&host, "host", "modern", "listener options the host understands: "+hostNames())
	simulateCmd.Flags().IntVarP(&fireCount, "count", "n", 10, "number of events to fire")
	simulateCmd.Flags().DurationVar(&interval, "interval", 10*time.Millisecond, "virtual time between events")
	simulateCmd.Flags().BoolVar(&outsideZone, "outside-zone", false, "bind outside the tracked zone")
	rootCmd.AddCommand(simulateCmd)
}

func hostNames() string {
	return "modern, no-once, no-passive, legacy, strict-legacy"
}

type simulation struct {
	fired     int
	delivered int
	prevented int
	turns     int
	cached    int
	pending   int
	native    map[plugin.NativeOption]bool
}

func simulate(r io.Reader, features dom.Features, eventName string) (*simulation, error) {
	w, err := dom.ParseHTML(r, features)
	if err != nil {
		return nil, err
	}
	el, err := w.Document.GetElementByID(targetID)
	if err != nil {
		return nil, err
	}

	z := zone.New()
	opts := []plugin.Option{plugin.WithWindow(w), plugin.WithLogger(logrus.WithField("component", "simulate"))}
	if cfg != nil {
		opts = append(opts, cfg.PluginOptions()...)
	}
	p := plugin.New(z, opts...)

	res := &simulation{native: map[plugin.NativeOption]bool{}}
	for _, option := range []plugin.NativeOption{plugin.NativeCapture, plugin.NativePassive, plugin.NativeOnce} {
		res.native[option] = p.NativeSupport(option)
	}

	callback := func(e dom.Event) {
		res.delivered++
		if e.DefaultPrevented() {
			res.prevented++
		}
	}
	bind := func() {
		_, err = p.AddEventListener(el, eventName, callback)
	}
	if outsideZone {
		bind()
	} else {
		z.Run(bind)
	}
	if err != nil {
		return nil, err
	}
	bound := z.Turns()

	spec := parser.ParseEventSpec(eventName)
	for i := 0; i < fireCount; i++ {
		el.DispatchEvent(dom.NewMouseEvent(spec.Type))
		res.fired++
		w.Advance(interval)
	}
	w.Advance(settleTime(spec))

	res.turns = z.Turns() - bound
	res.cached = p.CachedOptions()
	res.pending = w.PendingTimers()
	return res, nil
}

// settleTime is long enough for any pending debounce or throttle delivery.
func settleTime(spec parser.EventSpec) time.Duration {
	settings, err := parser.ParseOperators(spec.Operators)
	if err != nil {
		return 0
	}
	if _, t, ok := settings.Operator(); ok {
		return t.Wait
	}
	return 0
}

func (s *simulation) print(out io.Writer) {
	fmt.Fprintf(out, "fired:     %d\n", s.fired)
	fmt.Fprintf(out, "delivered: %d\n", s.delivered)
	fmt.Fprintf(out, "prevented: %d\n", s.prevented)
	fmt.Fprintf(out, "turns:     %d\n", s.turns)
	fmt.Fprintf(out, "cached:    %d\n", s.cached)
	fmt.Fprintf(out, "pending:   %d\n", s.pending)
	fmt.Fprintf(out, "native:    capture=%t passive=%t once=%t\n",
		s.native[plugin.NativeCapture], s.native[plugin.NativePassive], s.native[plugin.NativeOnce])
}
