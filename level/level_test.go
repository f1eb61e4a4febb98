// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	kg "github.com/db47h/kickgate"
	"github.com/db47h/kickgate/level"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	for _, name := range []string{"sorter", "latch"} {
		t.Run(name, func(t *testing.T) {
			l, err := level.Load(filepath.Join("testdata", name+".yaml"))
			require.NoError(t, err)
			sim, err := l.Build()
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, sim.Run(0).WriteText(&buf))
			g.Assert(t, name, buf.Bytes())
		})
	}
}

func TestTraceJSON(t *testing.T) {
	l, err := level.Load("testdata/sorter.yaml")
	require.NoError(t, err)
	sim, err := l.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sim.Run(2).WriteJSON(&buf))
	var got struct {
		Name    string
		Columns []string
		Frames  []struct {
			Tick   int
			States []string
		}
		Kicks []struct {
			Kicker string
			Count  int
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "sorter", got.Name)
	assert.Equal(t, []string{"heavy.out", "tall.out", "both.out", "kick.in"}, got.Columns)
	require.Len(t, got.Frames, 2)
	assert.Equal(t, []string{"1", "1", "1", "1"}, got.Frames[1].States)
	require.Len(t, got.Kicks, 1)
	assert.Equal(t, 1, got.Kicks[0].Count)
}

const base = `
name: test
parts:
  - {name: s, kind: sensor, at: [0, 0], script: "1"}
  - {name: g, kind: sr, at: [100, 0]}
  - {name: n, kind: not, at: [200, 0]}
`

func build(t *testing.T, extra string) (*level.Sim, error) {
	t.Helper()
	l, err := level.Parse(strings.NewReader(base + extra))
	require.NoError(t, err)
	return l.Build()
}

func TestBuildErrors(t *testing.T) {
	td := []struct {
		name  string
		extra string
		err   string
	}{
		{"missing arrow", "wires: [s g.s]", `missing "->"`},
		{"unknown part", "wires: [s -> x.a]", `unknown part "x"`},
		{"unknown pin", "wires: [s -> g.d]", `no input pin "d"`},
		{"ambiguous", "wires: [s -> g]", "pin name required"},
		{"bad ref", "wires: [s -> g.]", `invalid pin name ""`},
		{"taken", "wires: [s -> n, s -> n.in]", "already connected"},
		{"self", "wires: [n -> n]", "cannot connect"},
		{"kind", "parts: [{name: k, kind: flux}]", `unknown part kind "flux"`},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			extra := d.extra
			if strings.HasPrefix(extra, "parts:") {
				l, err := level.Parse(strings.NewReader(extra))
				require.NoError(t, err)
				_, err = l.Build()
				require.Error(t, err)
				assert.Contains(t, err.Error(), d.err)
				return
			}
			_, err := build(t, extra)
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.err)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := level.Parse(strings.NewReader("name: x\nspeed: 3\n"))
	assert.Error(t, err, "unknown field")

	l, err := level.Parse(strings.NewReader("parts: [{name: a, kind: sensor, script: '01z'}]"))
	require.NoError(t, err)
	assert.Equal(t, level.DefaultTicks, l.Ticks)
	_, err = l.Build()
	assert.ErrorContains(t, err, "invalid logic state")

	l, err = level.Parse(strings.NewReader("parts: [{name: a, kind: and, script: '01'}]"))
	require.NoError(t, err)
	_, err = l.Build()
	assert.ErrorContains(t, err, "only sensors")

	l, err = level.Parse(strings.NewReader("parts: [{name: a, kind: and}, {name: a, kind: or}]"))
	require.NoError(t, err)
	_, err = l.Build()
	assert.ErrorContains(t, err, "duplicate part name")
}

func TestFanOutAndPins(t *testing.T) {
	sim, err := build(t, `wires: ["s -> g.s, n"]`)
	require.NoError(t, err)

	s, ok := sim.Part("s")
	require.True(t, ok)
	out, err := sim.Pin("s", kg.Output)
	require.NoError(t, err)
	assert.Equal(t, s, out.Part)
	assert.Len(t, sim.Board.Network().Downstream(out), 2)

	nq, err := sim.Pin("g.nq", kg.Output)
	require.NoError(t, err)
	assert.Equal(t, 1, nq.Index)

	q, err := sim.Pin("g.q", kg.Output)
	require.NoError(t, err)
	sim.Step()
	assert.Equal(t, kg.One, sim.Board.Network().PinState(q))
	assert.Equal(t, kg.Zero, sim.Board.Network().PinState(nq))
	assert.Equal(t, 1, sim.Tick())
}

func TestScriptLoop(t *testing.T) {
	l, err := level.Parse(strings.NewReader(`
parts:
  - {name: clk, kind: sensor, script: "01", loop: true}
  - {name: hold, kind: sensor, script: "01"}
  - {name: none, kind: sensor}
`))
	require.NoError(t, err)
	sim, err := l.Build()
	require.NoError(t, err)
	tr := sim.Run(4)
	var got [][]kg.State
	for _, f := range tr.Frames {
		got = append(got, f.States)
	}
	X, O, I := kg.Unknown, kg.Zero, kg.One
	assert.Equal(t, [][]kg.State{{O, O, X}, {I, I, X}, {O, I, X}, {I, I, X}}, got)
	assert.Empty(t, sim.Kicks())
}
