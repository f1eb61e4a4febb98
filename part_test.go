// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate_test

import (
	"testing"

	kg "github.com/db47h/kickgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	X = kg.Unknown
	O = kg.Zero
	I = kg.One
)

// rig wires constant sensors into a part of the given kind. Sensors are added
// first, so a single tick settles the part.
type rig struct {
	n    *kg.Network
	part kg.PartID
	ins  []kg.State
}

func newRig(t *testing.T, kind kg.Kind) *rig {
	t.Helper()
	r := &rig{n: kg.New()}
	r.ins = make([]kg.State, len(kind.Inputs()))
	sensors := make([]kg.PartID, len(r.ins))
	for i := range r.ins {
		i := i
		sensors[i] = r.n.AddSensor(kg.Pt(0, float64(50*i)), func() kg.State { return r.ins[i] })
	}
	r.part = r.n.Add(kind, kg.Pt(200, 0))
	for i, s := range sensors {
		out, ok := r.n.OutputPin(s, 0)
		require.True(t, ok)
		require.True(t, r.n.ConnectInput(r.part, i, out))
	}
	return r
}

func (r *rig) step(in ...kg.State) []kg.State {
	copy(r.ins, in)
	r.n.Tick()
	out := make([]kg.State, r.n.NumOutputs(r.part))
	for i := range out {
		pin, _ := r.n.OutputPin(r.part, i)
		out[i] = r.n.PinState(pin)
	}
	return out
}

func Test_truth_tables(t *testing.T) {
	states := []kg.State{X, O, I}
	td := []struct {
		kind kg.Kind
		// expected[a][b], indexed X, 0, 1
		expected [3][3]kg.State
	}{
		{kg.KindOr, [3][3]kg.State{
			{X, X, X},
			{X, O, I},
			{X, I, I},
		}},
		{kg.KindAnd, [3][3]kg.State{
			{X, X, X},
			{X, O, O},
			{X, O, I},
		}},
	}
	for _, d := range td {
		t.Run(d.kind.String(), func(t *testing.T) {
			r := newRig(t, d.kind)
			for ai, a := range states {
				for bi, b := range states {
					exp := d.expected[ai][bi]
					got := r.step(a, b)
					assert.Equal(t, []kg.State{exp}, got, "%s(%v, %v)", d.kind, a, b)
				}
			}
		})
	}
	t.Run("NOT", func(t *testing.T) {
		r := newRig(t, kg.KindNot)
		// the second input state is ignored: 9 combinations, 3 distinct results.
		for _, a := range states {
			for range states {
				assert.Equal(t, []kg.State{a.Not()}, r.step(a), "NOT(%v)", a)
			}
		}
		assert.Equal(t, X, X.Not())
		assert.Equal(t, I, O.Not())
		assert.Equal(t, O, I.Not())
	})
}

func TestOrOfAndOf(t *testing.T) {
	assert.Equal(t, X, kg.OrOf(I, X), "OR does not short-circuit on One")
	assert.Equal(t, X, kg.AndOf(O, X), "AND does not short-circuit on Zero")
	assert.Equal(t, I, kg.OrOf(O, I))
	assert.Equal(t, O, kg.AndOf(I, O))
}

func TestSRFlipFlop(t *testing.T) {
	r := newRig(t, kg.KindSR)

	// initial state is Unknown and held while nothing drives S or R.
	assert.Equal(t, []kg.State{X, X}, r.step(O, O))
	assert.Equal(t, []kg.State{I, O}, r.step(I, O), "set")
	assert.Equal(t, []kg.State{I, O}, r.step(O, O), "memory after set")
	assert.Equal(t, []kg.State{I, O}, r.step(X, X), "Unknown inputs hold")
	assert.Equal(t, []kg.State{O, I}, r.step(O, I), "reset")
	assert.Equal(t, []kg.State{O, I}, r.step(O, O), "memory after reset")
	assert.Equal(t, []kg.State{I, O}, r.step(I, X), "set with R unknown")
	assert.Equal(t, []kg.State{X, X}, r.step(I, I), "race")
	assert.Equal(t, []kg.State{X, X}, r.step(O, O), "race state is held")
}

func TestDFlipFlop(t *testing.T) {
	r := newRig(t, kg.KindD)

	assert.Equal(t, []kg.State{X, X}, r.step(I, O), "clock low holds initial Unknown")
	assert.Equal(t, []kg.State{I, O}, r.step(I, I), "latch One")
	assert.Equal(t, []kg.State{I, O}, r.step(O, O), "clock low holds")
	assert.Equal(t, []kg.State{I, O}, r.step(O, X), "unknown clock holds")
	assert.Equal(t, []kg.State{O, I}, r.step(O, I), "latch Zero")
	// level sensitive: D changes are followed while the clock is high.
	assert.Equal(t, []kg.State{I, O}, r.step(I, I))
	assert.Equal(t, []kg.State{X, X}, r.step(X, I), "Unknown D latches Unknown on both outputs")
}

func TestKind(t *testing.T) {
	for _, k := range []kg.Kind{kg.KindOr, kg.KindAnd, kg.KindNot, kg.KindSR, kg.KindD} {
		assert.True(t, k.IsGate(), k.String())
		p, ok := kg.ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, p)
	}
	assert.False(t, kg.KindSensor.IsGate())
	assert.False(t, kg.KindKicker.IsGate())
	assert.True(t, kg.KindSR.Sequential())
	assert.False(t, kg.KindAnd.Sequential())

	i, ok := kg.KindD.PinIndex(kg.Input, "clk")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	i, ok = kg.KindSR.PinIndex(kg.Output, "nq")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = kg.KindNot.PinIndex(kg.Input, "a")
	assert.False(t, ok)

	k, ok := kg.ParseKind("and")
	assert.True(t, ok)
	assert.Equal(t, kg.KindAnd, k)
	_, ok = kg.ParseKind("xor")
	assert.False(t, ok)
	assert.Equal(t, "INVALID", kg.Kind(42).String())
}

func TestComputeOutputIsPure(t *testing.T) {
	r := newRig(t, kg.KindSR)
	r.step(I, O)
	r.ins[0], r.ins[1] = O, I
	// no tick: input caches still hold S=1, R=0
	assert.Equal(t, []kg.State{I, O}, r.n.ComputeOutput(r.part))
	pin, _ := r.n.OutputPin(r.part, 0)
	assert.Equal(t, I, r.n.PinState(pin))
	assert.Nil(t, r.n.ComputeOutput(kg.PartID{}))
}

func TestEval(t *testing.T) {
	assert.Equal(t, []kg.State{I}, kg.Eval(kg.KindOr, []kg.State{O, I}, nil))
	assert.Equal(t, []kg.State{I, O}, kg.Eval(kg.KindSR, []kg.State{O, O}, []kg.State{I, O}))
	assert.Equal(t, []kg.State{X, X}, kg.Eval(kg.KindD, []kg.State{I, O}, nil), "missing history is Unknown")
	assert.Nil(t, kg.Eval(kg.KindAnd, []kg.State{I}, nil), "arity mismatch")
	assert.Nil(t, kg.Eval(kg.KindSensor, nil, nil))
}
