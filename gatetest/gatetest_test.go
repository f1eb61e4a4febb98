// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatetest_test

import (
	"testing"

	kg "github.com/db47h/kickgate"
	"github.com/db47h/kickgate/gatetest"
	"github.com/stretchr/testify/assert"
)

const (
	X = kg.Unknown
	O = kg.Zero
	I = kg.One
)

// notGate feeds a single input through a NOT part.
func notGate(n *kg.Network, in kg.PinID) kg.PinID {
	return gatetest.Part(kg.KindNot)(n, []kg.PinID{in})[0]
}

// De Morgan: a OR b == NOT(NOT a AND NOT b)
func deMorganOr(n *kg.Network, in []kg.PinID) []kg.PinID {
	na, nb := notGate(n, in[0]), notGate(n, in[1])
	and := gatetest.Part(kg.KindAnd)(n, []kg.PinID{na, nb})[0]
	return []kg.PinID{notGate(n, and)}
}

// latch is a SR latch built from two cross-coupled NOR gates, q = NOR(r, nq)
// and nq = NOR(s, q).
func latch(n *kg.Network, in []kg.PinID) []kg.PinID {
	nor := func(a kg.PinID) (kg.PartID, kg.PinID) {
		or := n.Add(kg.KindOr, kg.Pt(0, 0))
		n.ConnectInput(or, 0, a)
		out, _ := n.OutputPin(or, 0)
		return or, notGate(n, out)
	}
	orQ, q := nor(in[1])
	orNQ, nq := nor(in[0])
	n.ConnectInput(orQ, 1, nq)
	n.ConnectInput(orNQ, 1, q)
	return []kg.PinID{q, nq}
}

func TestCompare(t *testing.T) {
	gatetest.Compare(t, 2, 4, 64, gatetest.Part(kg.KindOr), deMorganOr)
}

func TestDrive(t *testing.T) {
	res := gatetest.Drive(kg.KindAnd, []kg.State{I, I}, []kg.State{I, O}, []kg.State{X, I})
	assert.Equal(t, [][]kg.State{{I}, {O}, {X}}, res)
}

// OR(One, Unknown) is Unknown, so a latch built from cross-coupled gates never
// leaves its initial Unknown state, while the SR primitive does.
func TestNorLatchStaysUnknown(t *testing.T) {
	h := gatetest.New(2, latch)
	assert.Equal(t, []kg.State{X, X}, h.Step(8, I, O), "set")
	assert.Equal(t, []kg.State{X, X}, h.Step(8, O, I), "reset")

	sr := gatetest.New(2, gatetest.Part(kg.KindSR))
	assert.Equal(t, []kg.State{I, O}, sr.Step(1, I, O))
	assert.Equal(t, []kg.State{I, O}, sr.Step(1, O, O))
}
