// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing parts and circuits.
//
package gatetest

import (
	"math/rand"
	"testing"
	"time"

	kg "github.com/db47h/kickgate"
)

// A Builder adds a sub-circuit to n, feeds it from the given source pins and
// returns its output pins.
//
type Builder func(n *kg.Network, inputs []kg.PinID) []kg.PinID

// Part returns a Builder for a single part of the given kind.
//
func Part(kind kg.Kind) Builder {
	return func(n *kg.Network, inputs []kg.PinID) []kg.PinID {
		id := n.Add(kind, kg.Pt(0, 0))
		for i, src := range inputs {
			n.ConnectInput(id, i, src)
		}
		outs := make([]kg.PinID, n.NumOutputs(id))
		for i := range outs {
			outs[i], _ = n.OutputPin(id, i)
		}
		return outs
	}
}

// Harness drives a sub-circuit from scripted sensors.
//
type Harness struct {
	N    *kg.Network
	In   []kg.State
	Outs []kg.PinID
}

// New returns a harness with inputs sensors feeding the sub-circuit built by
// b. The sensors are added first.
//
func New(inputs int, b Builder) *Harness {
	h := &Harness{N: kg.New(), In: make([]kg.State, inputs)}
	srcs := make([]kg.PinID, inputs)
	for i := range srcs {
		i := i
		s := h.N.AddSensor(kg.Pt(0, 0), func() kg.State { return h.In[i] })
		srcs[i], _ = h.N.OutputPin(s, 0)
	}
	h.Outs = b(h.N, srcs)
	return h
}

// Step sets the inputs, runs the given number of ticks and returns the
// output states.
//
func (h *Harness) Step(ticks int, in ...kg.State) []kg.State {
	copy(h.In, in)
	h.N.Run(ticks)
	return h.Outputs()
}

// Outputs returns the current output states.
//
func (h *Harness) Outputs() []kg.State {
	out := make([]kg.State, len(h.Outs))
	for i, p := range h.Outs {
		out[i] = h.N.PinState(p)
	}
	return out
}

// Drive feeds a single part of the given kind with each input vector in turn,
// one tick per vector, and returns the outputs after each tick.
//
func Drive(kind kg.Kind, vectors ...[]kg.State) [][]kg.State {
	h := New(len(kind.Inputs()), Part(kind))
	res := make([][]kg.State, 0, len(vectors))
	for _, v := range vectors {
		res = append(res, h.Step(1, v...))
	}
	return res
}

func randState(r *rand.Rand) kg.State {
	if r.Int63()&(1<<62) != 0 {
		return kg.One
	}
	return kg.Zero
}

// Compare drives sub-circuits a and b with the same random driven inputs and
// fails t if their outputs differ. Each input vector is held for settle ticks
// so that multi-stage circuits can propagate. Both circuits must have the same
// number of outputs.
//
func Compare(t testing.TB, inputs, settle, rounds int, a, b Builder) {
	t.Helper()

	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	ha, hb := New(inputs, a), New(inputs, b)
	if len(ha.Outs) != len(hb.Outs) {
		t.Fatalf("output count mismatch: %d != %d", len(ha.Outs), len(hb.Outs))
	}
	in := make([]kg.State, inputs)
	for i := 0; i < rounds; i++ {
		for j := range in {
			in[j] = randState(r)
		}
		oa, ob := ha.Step(settle, in...), hb.Step(settle, in...)
		for o := range oa {
			if oa[o] != ob[o] {
				t.Fatalf("seed %d, round %d, inputs %v: output %d = %v, expected %v", seed, i, in, o, ob[o], oa[o])
			}
		}
	}
}
