// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import kg "github.com/db47h/kickgate"

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(n *kg.Network, in []kg.PinID) []kg.PinID {
	a, b, sel := in[0], in[1], in[2]
	return []kg.PinID{or(n, and(n, a, not(n, sel)), and(n, b, sel))}
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(n *kg.Network, in []kg.PinID) []kg.PinID {
	x, sel := in[0], in[1]
	return []kg.PinID{and(n, x, not(n, sel)), and(n, x, sel)}
}
