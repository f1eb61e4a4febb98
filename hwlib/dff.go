// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import kg "github.com/db47h/kickgate"

// DFF returns an edge triggered data flip flop made of two D latches.
//
//	Inputs: d, clk
//	Outputs: q, nq
//	Function: q takes the value of d on the rising edge of clk and holds it
//	          until the next rising edge.
//
// The outputs are Unknown until the first rising edge following a tick with clk
// low and d driven.
//
func DFF(n *kg.Network, in []kg.PinID) []kg.PinID {
	d, clk := in[0], in[1]
	master := add(n, kg.KindD, d, not(n, clk))
	return add(n, kg.KindD, master[0], clk)
}
