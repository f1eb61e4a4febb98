// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	kg "github.com/db47h/kickgate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// TruthTable is the full table of a gate kind.
type TruthTable struct {
	Kind    string     `json:"kind"`
	Inputs  []string   `json:"inputs"`
	Outputs []string   `json:"outputs"`
	Rows    []TruthRow `json:"rows"`
}

// TruthRow is a line of a TruthTable. Prev is the previous q output of
// flip-flops, the previous nq being its complement.
type TruthRow struct {
	In   []kg.State `json:"in"`
	Prev *kg.State  `json:"prev,omitempty"`
	Out  []kg.State `json:"out"`
}

var allStates = []kg.State{kg.Zero, kg.One, kg.Unknown}

// NewTruthTable evaluates kind for every combination of input states and, for
// flip-flops, of previous state.
func NewTruthTable(kind kg.Kind) (*TruthTable, error) {
	if !kind.IsGate() {
		return nil, errors.Errorf("%s is not a logic gate", kind)
	}
	t := &TruthTable{Kind: kind.String(), Inputs: kind.Inputs(), Outputs: kind.Outputs()}
	prevs := []kg.State{kg.Unknown}
	if kind.Sequential() {
		prevs = allStates
	}
	in := make([]kg.State, len(t.Inputs))
	var walk func(i int)
	walk = func(i int) {
		if i < len(in) {
			for _, s := range allStates {
				in[i] = s
				walk(i + 1)
			}
			return
		}
		for _, q := range prevs {
			row := TruthRow{In: append([]kg.State(nil), in...)}
			var prev []kg.State
			if kind.Sequential() {
				row.Prev = &q
				prev = []kg.State{q, q.Not()}
			}
			row.Out = kg.Eval(kind, in, prev)
			t.Rows = append(t.Rows, row)
		}
	}
	walk(0)
	return t, nil
}

// WriteText writes t as an aligned table.
func (t *TruthTable) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	hdr := append([]string(nil), t.Inputs...)
	if len(t.Rows) > 0 && t.Rows[0].Prev != nil {
		hdr = append(hdr, "q-1")
	}
	hdr = append(hdr, "|")
	hdr = append(hdr, t.Outputs...)
	fmt.Fprintln(tw, strings.Join(hdr, "\t"))
	for _, r := range t.Rows {
		var cells []string
		for _, s := range r.In {
			cells = append(cells, string(s.Rune()))
		}
		if r.Prev != nil {
			cells = append(cells, string(r.Prev.Rune()))
		}
		cells = append(cells, "|")
		for _, s := range r.Out {
			cells = append(cells, string(s.Rune()))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <kind>",
		Short: "Print the truth table of a gate kind",
		Long: `Print the truth table of OR, AND, NOT, SR or D over the states 0, 1 and X.
Flip-flop tables have one row per previous q output.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"or", "and", "not", "sr", "d"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := kg.ParseKind(args[0])
			if !ok {
				return errors.Errorf("unknown gate kind %q", args[0])
			}
			t, err := NewTruthTable(kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(t)
			}
			return t.WriteText(out)
		},
	}
	return cmd
}
