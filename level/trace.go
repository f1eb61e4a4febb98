// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	kg "github.com/db47h/kickgate"
	"github.com/pkg/errors"
)

// Frame holds the traced pin states after a tick.
//
type Frame struct {
	Tick   int        `json:"tick"`
	States []kg.State `json:"states"`
}

// Kicks is the kick count of a kicker.
//
type Kicks struct {
	Kicker string `json:"kicker"`
	Count  int    `json:"count"`
}

// Trace is the record of a level run.
//
type Trace struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Frames  []Frame  `json:"frames"`
	Kicks   []Kicks  `json:"kicks"`
}

// WriteText writes t as an aligned table, one row per tick, followed by the
// kick counts.
//
func (t *Trace) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n", t.Name); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "tick\t%s\n", strings.Join(t.Columns, "\t"))
	for _, f := range t.Frames {
		row := make([]string, len(f.States))
		for i, s := range f.States {
			row[i] = string(s.Rune())
		}
		fmt.Fprintf(tw, "%s\t%s\n", strconv.Itoa(f.Tick), strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, k := range t.Kicks {
		if _, err := fmt.Fprintf(w, "%s: %d kicks\n", k.Kicker, k.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes t as indented JSON. States are encoded as "1", "0" or "X".
//
func (t *Trace) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(t), "encode trace")
}
