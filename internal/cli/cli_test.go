// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kg "github.com/db47h/kickgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sorter = "../../level/testdata/sorter.yaml"

func execute(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"run", "render", "table"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	_, _, err := execute("table", "or", "--format", "xml")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}

func TestRun(t *testing.T) {
	out, _, err := execute("run", sorter, "--expect", "kick=1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# sorter\ntick heavy.out"))
	assert.Contains(t, out, "kick: 1 kicks\n")

	_, _, err = execute("run", sorter, "--ticks", "1", "--expect", "kick=1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, err.Error(), "kick kicked 0 times, expected 1")

	_, _, err = execute("run", sorter, "--expect", "nobody=1")
	assert.Equal(t, ExitCommandError, ExitCode(err))

	_, _, err = execute("run", "testdata/missing.yaml")
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestRunJSONVerbose(t *testing.T) {
	out, logs, err := execute("run", sorter, "-n", "3", "--format", "json", "-v")
	require.NoError(t, err)
	var trace struct {
		Frames []struct{ States []kg.State }
	}
	require.NoError(t, json.Unmarshal([]byte(out), &trace))
	assert.Len(t, trace.Frames, 3)
	assert.Equal(t, []kg.State{kg.One, kg.One, kg.One, kg.One}, trace.Frames[1].States)
	assert.Contains(t, logs, "msg=connect")
	assert.Contains(t, logs, `msg="level run"`)

	_, logs, err = execute("run", sorter)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestRender(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sorter.svg")
	_, _, err := execute("render", sorter, "-n", "2", "-o", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<svg ")))
	assert.Contains(t, string(data), ">belt</text>")

	out, _, err := execute("render", sorter)
	require.NoError(t, err)
	assert.Equal(t, string(data[:10]), out[:10])
	assert.Equal(t, 3, strings.Count(out, "<path "), "three wires")

	_, _, err = execute("render", sorter, "--ticks=-1")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	out, _, err := execute("table", "NOT")
	require.NoError(t, err)
	assert.Equal(t, "in | out\n0  | 1\n1  | 0\nX  | X\n", out)

	_, _, err = execute("table", "kicker")
	assert.ErrorContains(t, err, "not a logic gate")
	_, _, err = execute("table", "xor")
	assert.ErrorContains(t, err, `unknown gate kind "xor"`)
}

func TestTruthTable(t *testing.T) {
	for _, d := range []struct {
		kind kg.Kind
		rows int
	}{
		{kg.KindOr, 9}, {kg.KindAnd, 9}, {kg.KindNot, 3}, {kg.KindSR, 27}, {kg.KindD, 27},
	} {
		tt, err := NewTruthTable(d.kind)
		require.NoError(t, err)
		assert.Len(t, tt.Rows, d.rows, d.kind.String())
	}

	tt, err := NewTruthTable(kg.KindSR)
	require.NoError(t, err)
	for _, r := range tt.Rows {
		require.NotNil(t, r.Prev)
		if r.In[0] == kg.One && r.In[1] == kg.One {
			assert.Equal(t, []kg.State{kg.Unknown, kg.Unknown}, r.Out)
		}
		if r.In[0] == kg.Zero && r.In[1] == kg.Zero {
			assert.Equal(t, *r.Prev, r.Out[0], "hold")
		}
	}
}

func TestParseExpect(t *testing.T) {
	m, err := parseExpect([]string{"a=1", "b=0"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 0}, m)

	_, err = parseExpect([]string{"a"})
	assert.Error(t, err)
	_, err = parseExpect([]string{"a=x"})
	assert.Error(t, err)
}
