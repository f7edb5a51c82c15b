package cmd

import (
	"os"

	"github.com/heathj/eventoptions/config"
	"github.com/heathj/eventoptions/plugin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	platform   string

	// cfg is filled by the root command before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eventoptions",
	Short: "eventoptions inspects and exercises listener option specs such as click.pcon",
	Long: `
		eventoptions reads event names carrying listener options and timing
		operators ("click.pcon", "scroll.*|throttle{50,1}").
		It reports whether a name is supported, shows how it parses, and
		simulates delivery against an in-memory DOM on virtual time.
		`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "eventoptions.yaml", "config file (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the config file")
	rootCmd.PersistentFlags().StringVar(&platform, "platform", "", "runtime platform (browser or server), overrides the config file")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if platform != "" {
		c.Platform = plugin.Platform(platform)
	}
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "flags")
	}

	lvl, _ := c.Level()
	logrus.SetLevel(lvl)
	logrus.SetOutput(cmd.ErrOrStderr())
	cfg = c
	return nil
}
