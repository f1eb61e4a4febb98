// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable sub-circuits built from the
// kickgate primitives.
//
// Every sub-circuit has the same signature: it adds its parts to n, feeds them
// from the given source pins and returns its output pins. Parts are added in
// signal order so that a sub-circuit fed from earlier parts settles within the
// tick its inputs change.
//
package hwlib

import (
	kg "github.com/db47h/kickgate"
)

// add adds a part of the given kind, connects its inputs to in and returns
// its output pins.
func add(n *kg.Network, kind kg.Kind, in ...kg.PinID) []kg.PinID {
	id := n.Add(kind, kg.Point{})
	for i, src := range in {
		n.ConnectInput(id, i, src)
	}
	outs := make([]kg.PinID, n.NumOutputs(id))
	for i := range outs {
		outs[i], _ = n.OutputPin(id, i)
	}
	return outs
}

func not(n *kg.Network, in kg.PinID) kg.PinID   { return add(n, kg.KindNot, in)[0] }
func and(n *kg.Network, a, b kg.PinID) kg.PinID { return add(n, kg.KindAnd, a, b)[0] }
func or(n *kg.Network, a, b kg.PinID) kg.PinID  { return add(n, kg.KindOr, a, b)[0] }

func xor(n *kg.Network, a, b kg.PinID) kg.PinID {
	return and(n, or(n, a, b), not(n, and(n, a, b)))
}

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(n *kg.Network, in []kg.PinID) []kg.PinID {
	return []kg.PinID{not(n, and(n, in[0], in[1]))}
}

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(n *kg.Network, in []kg.PinID) []kg.PinID {
	return []kg.PinID{not(n, or(n, in[0], in[1]))}
}

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && !b || !a && b
//
func Xor(n *kg.Network, in []kg.PinID) []kg.PinID {
	return []kg.PinID{xor(n, in[0], in[1])}
}

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(n *kg.Network, in []kg.PinID) []kg.PinID {
	return []kg.PinID{not(n, xor(n, in[0], in[1]))}
}
