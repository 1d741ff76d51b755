package cli

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"arcctl/internal/system"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "arcctl",
	Short: "arcctl – azdata CLI lifecycle manager",
	Long:  "arcctl discovers, installs, updates and drives the azdata CLI for Azure Arc data services.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			system.Logger.SetLevel(clog.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "verbose logging and azdata --debug")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
