// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// Tick advances the simulation by one step.
//
// Parts are visited once, in the order they were added. For each part,
// disconnected inputs are reset to Unknown, new outputs are computed from the
// input caches and every output state is copied to the input caches of its
// fan-out. Sensors sample their probe and kickers pass their input to their
// actuator.
//
// There is no settling: a part reading from a part that comes later in the
// evaluation order sees the value driven on the previous tick. A chain of N
// gates added in reverse order therefore needs N ticks to propagate a change.
//
func (n *Network) Tick() {
	for _, idx := range n.order {
		p := &n.parts[idx]
		for i := range p.ins {
			if !p.ins[i].connected() {
				p.ins[i].state = Unknown
			}
		}
		if p.kind == KindKicker {
			if p.act != nil {
				p.act(p.ins[0].state)
			}
			continue
		}
		for i, s := range p.compute() {
			o := &p.outs[i]
			o.state = s
			for _, to := range o.to {
				n.parts[to.Part.index].ins[to.Index].state = s
			}
		}
	}
	n.ticks++
}

// Run calls Tick count times.
//
func (n *Network) Run(count int) {
	for ; count > 0; count-- {
		n.Tick()
	}
}

// Steps returns the number of ticks since the network was created or last
// reset.
//
func (n *Network) Steps() uint64 { return n.ticks }

// Reset sets every cached pin state, including flip-flop memory, back to
// Unknown and zeroes the step counter. Parts and connections are kept.
//
func (n *Network) Reset() {
	for _, idx := range n.order {
		p := &n.parts[idx]
		for i := range p.ins {
			p.ins[i].state = Unknown
		}
		for i := range p.outs {
			p.outs[i].state = Unknown
		}
	}
	n.ticks = 0
}

// ComputeOutput returns the output states the given part would drive if it
// were evaluated now, without changing anything. It returns nil for kickers
// and unknown parts. For sensors the probe is sampled.
//
func (n *Network) ComputeOutput(id PartID) []State {
	p := n.part(id)
	if p == nil {
		return nil
	}
	return p.compute()
}
