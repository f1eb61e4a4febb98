// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Level run did not give the expected kicks
	ExitCommandError = 2 // Bad arguments, unreadable or invalid level
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for err: ExitSuccess for nil, the code of an
// ExitError, or ExitCommandError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *ExitError
	if errors.As(err, &e) {
		return e.Code
	}
	return ExitCommandError
}

// RunOptions holds the flags of the run command.
type RunOptions struct {
	Ticks  int
	Expect []string // kicker=count
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <level.yaml>",
		Short: "Run a level and print the trace of every pin",
		Long: `Run a level for the given number of ticks (default: the level's own tick
count) and print the state of every output pin and kicker input after each
tick, followed by the kick counts.

With --expect, the command fails if a kicker did not kick the given number of
times.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.Ticks, "ticks", "n", 0, "number of ticks to run")
	cmd.Flags().StringSliceVar(&opts.Expect, "expect", nil, "expected kick counts, as kicker=count")

	return cmd
}

func parseExpect(specs []string) (map[string]int, error) {
	m := make(map[string]int, len(specs))
	for _, s := range specs {
		name, count, ok := strings.Cut(s, "=")
		if !ok {
			return nil, errors.Errorf("invalid expectation %q: want kicker=count", s)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid expectation %q", s)
		}
		m[name] = n
	}
	return m, nil
}

func runRun(rootOpts *RootOptions, opts *RunOptions, cmd *cobra.Command, filename string) error {
	expect, err := parseExpect(opts.Expect)
	if err != nil {
		return err
	}
	sim, err := loadLevel(rootOpts, cmd, filename)
	if err != nil {
		return err
	}
	trace := sim.Run(opts.Ticks)

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		err = trace.WriteJSON(out)
	} else {
		err = trace.WriteText(out)
	}
	if err != nil {
		return err
	}

	kicks := sim.Kicks()
	var bad []string
	for name, want := range expect {
		got, ok := kicks[name]
		switch {
		case !ok:
			return errors.Errorf("no kicker named %q", name)
		case got != want:
			bad = append(bad, fmt.Sprintf("%s kicked %d times, expected %d", name, got, want))
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return &ExitError{Code: ExitFailure, Err: errors.New(strings.Join(bad, "; "))}
	}
	return nil
}
