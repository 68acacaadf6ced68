package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geocalc/internal/logger"
)

const (
	AppName = "Calculator"
	AppID   = "com.geocalc.calculator"
)

// Version is set during build with -ldflags
var version = "dev"

type rootOptions struct {
	logLevel string
	console  bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "geocalc",
		Short: "Desktop calculator with an area panel",
		Long: `geocalc is a keypad calculator with a panel that computes the area of a
square, rectangle, triangle or circle. Without a subcommand it opens the
desktop window; eval and area run the same engines from the shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}
			return runGUI(cmd.Context(), log)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error), defaults to $LOG_LEVEL")
	cmd.PersistentFlags().BoolVar(&opts.console, "console", false, "Human readable log output")

	cmd.AddCommand(newEvalCommand(opts))
	cmd.AddCommand(newAreaCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func (o *rootOptions) logger() (logger.Logger, error) {
	level := logger.LevelFromEnv()
	if o.logLevel != "" {
		parsed, err := logger.ParseLevel(o.logLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if o.console {
		return logger.NewConsoleLogger(level), nil
	}
	return logger.NewZerolog(os.Stderr, level), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of geocalc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geocalc version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
