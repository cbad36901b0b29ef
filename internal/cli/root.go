// Package cli implements the augment command-line interface.
//
// The CLI applies a configured augmentation pipeline to image files. It is
// built on cobra with viper-backed configuration and charmbracelet/log for
// leveled output.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

var (
	cfgFile   string
	verbose   bool
	activeCfg Config
	logger    *log.Logger
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the augment root command.
func NewRootCmd() *cobra.Command {
	defaults := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Apply image augmentation pipelines",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger = newLogger(os.Stderr, level)

			loaded, err := Load(LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml|toml|json)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "augment %s\n", version)
		},
	}
}

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
