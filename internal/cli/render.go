// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"bytes"
	"os"

	kg "github.com/db47h/kickgate"
	"github.com/db47h/kickgate/svg"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	Output string
	Ticks  int
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <level.yaml>",
		Short: "Render a level as SVG",
		Long: `Render a level as an SVG image after running it for the given number of
ticks. Pins and wires are colored after the state they carry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVarP(&opts.Ticks, "ticks", "n", 0, "number of ticks to run before rendering")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, cmd *cobra.Command, filename string) error {
	if opts.Ticks < 0 {
		return errors.Errorf("invalid tick count %d", opts.Ticks)
	}
	sim, err := loadLevel(rootOpts, cmd, filename)
	if err != nil {
		return err
	}
	if opts.Ticks > 0 {
		sim.Run(opts.Ticks)
	}

	var buf bytes.Buffer
	if err := svg.Render(&buf, sim.Board, kg.NewEditor(sim.Board)); err != nil {
		return err
	}
	if opts.Output == "" || opts.Output == "-" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	return errors.Wrap(os.WriteFile(opts.Output, buf.Bytes(), 0644), "write image")
}
