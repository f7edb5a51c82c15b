package cmd

import (
	"fmt"

	"github.com/heathj/eventoptions/parser"
	"github.com/spf13/cobra"
)

var supportsCmd = &cobra.Command{
	Use:   "supports <event name>...",
	Short: "supports reports which event names the plugin handles.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", name, parser.Supports(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}
