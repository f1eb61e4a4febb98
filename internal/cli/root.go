// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the kickgate command line.
//
package cli

import (
	"io"
	"log/slog"

	kg "github.com/db47h/kickgate"
	"github.com/db47h/kickgate/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kickgate",
		Short: "Simulate conveyor logic puzzles",
		Long: `kickgate runs logic puzzle levels: sensors along a conveyor belt feed a
network of OR, AND, NOT, SR and D gates driving kickers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return errors.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log network edits and runs to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// logger returns the logger for the command: a text handler on w, at debug
// level when verbose, warnings only otherwise.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	lvl := slog.LevelWarn
	if o.Verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// loadLevel loads and builds a level file, logging to the command's stderr.
func loadLevel(o *RootOptions, cmd *cobra.Command, filename string) (*level.Sim, error) {
	l, err := level.Load(filename)
	if err != nil {
		return nil, err
	}
	sim, err := l.Build(kg.WithLogger(o.logger(cmd.ErrOrStderr())))
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return sim, nil
}
