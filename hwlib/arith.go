// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import kg "github.com/db47h/kickgate"

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(n *kg.Network, in []kg.PinID) []kg.PinID {
	a, b := in[0], in[1]
	return []kg.PinID{xor(n, a, b), and(n, a, b)}
}

func fullAdder(n *kg.Network, a, b, cin kg.PinID) (s, cout kg.PinID) {
	s1 := xor(n, a, b)
	return xor(n, s1, cin), or(n, and(n, a, b), and(n, s1, cin))
}

// FullAdder returns a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(n *kg.Network, in []kg.PinID) []kg.PinID {
	s, c := fullAdder(n, in[0], in[1], in[2])
	return []kg.PinID{s, c}
}

// Adder returns a ripple carry adder for unsigned integers of the given bit
// size. For bits < 1 the returned sub-circuit adds no parts and has no
// outputs.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = a + b, c = carry out
//
func Adder(bits int) func(n *kg.Network, in []kg.PinID) []kg.PinID {
	return func(n *kg.Network, in []kg.PinID) []kg.PinID {
		if bits < 1 {
			return nil
		}
		a, b := in[:bits], in[bits:2*bits]
		out := make([]kg.PinID, bits+1)
		var c kg.PinID
		out[0], c = xor(n, a[0], b[0]), and(n, a[0], b[0])
		for i := 1; i < bits; i++ {
			out[i], c = fullAdder(n, a[i], b[i], c)
		}
		out[bits] = c
		return out
	}
}
