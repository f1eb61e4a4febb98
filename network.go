// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

import (
	"log/slog"
)

// Network is an arena of parts and the connections between their pins.
//
// Parts are addressed by generational PartIDs and pins by PinIDs. A Network is
// not safe for concurrent use; all calls are expected to come from the single
// thread driving the simulation.
//
type Network struct {
	parts []part
	free  []int32
	order []int32 // live part slots in insertion order
	ticks uint64
	log   *slog.Logger
}

// An Option configures a Network.
//
type Option func(*Network)

// WithLogger sets the logger used by the network. Connection edits are logged
// at debug level.
//
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// New returns a new empty Network.
//
func New(opts ...Option) *Network {
	n := &Network{log: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Logger returns the network's logger.
//
func (n *Network) Logger() *slog.Logger { return n.log }

// part returns the live part for id or nil.
func (n *Network) part(id PartID) *part {
	if !id.Valid() || id.index < 0 || int(id.index) >= len(n.parts) {
		return nil
	}
	p := &n.parts[id.index]
	if !p.live || p.gen != id.gen {
		return nil
	}
	return p
}

func (n *Network) inPin(id PinID) *inputPin {
	if id.Kind != Input {
		return nil
	}
	p := n.part(id.Part)
	if p == nil || id.Index < 0 || id.Index >= len(p.ins) {
		return nil
	}
	return &p.ins[id.Index]
}

func (n *Network) outPin(id PinID) *outputPin {
	if id.Kind != Output {
		return nil
	}
	p := n.part(id.Part)
	if p == nil || id.Index < 0 || id.Index >= len(p.outs) {
		return nil
	}
	return &p.outs[id.Index]
}

// Add creates a new part of the given kind centered at the given position. All
// its pins start disconnected and Unknown.
//
// Add returns the zero PartID if kind is not a valid Kind.
//
func (n *Network) Add(kind Kind, at Point) PartID {
	if kind.spec() == nil {
		return PartID{}
	}
	var idx int32
	if l := len(n.free); l > 0 {
		idx = n.free[l-1]
		n.free = n.free[:l-1]
	} else {
		idx = int32(len(n.parts))
		n.parts = append(n.parts, part{})
	}
	p := &n.parts[idx]
	p.gen++
	p.init(kind, at)
	n.order = append(n.order, idx)
	return PartID{idx, p.gen}
}

// AddSensor creates a sensor driven by probe.
//
func (n *Network) AddSensor(at Point, probe Probe) PartID {
	id := n.Add(KindSensor, at)
	n.part(id).probe = probe
	return id
}

// AddKicker creates a kicker forwarding its input to act.
//
func (n *Network) AddKicker(at Point, act Actuator) PartID {
	id := n.Add(KindKicker, at)
	n.part(id).act = act
	return id
}

// SetProbe replaces the probe of a sensor. It returns false if id is not a
// live sensor.
//
func (n *Network) SetProbe(id PartID, probe Probe) bool {
	p := n.part(id)
	if p == nil || p.kind != KindSensor {
		return false
	}
	p.probe = probe
	return true
}

// SetActuator replaces the actuator of a kicker. It returns false if id is
// not a live kicker.
//
func (n *Network) SetActuator(id PartID, act Actuator) bool {
	p := n.part(id)
	if p == nil || p.kind != KindKicker {
		return false
	}
	p.act = act
	return true
}

// Remove disconnects all pins of the given part and removes it. Outstanding
// PartIDs and PinIDs referring to it become stale.
//
func (n *Network) Remove(id PartID) bool {
	p := n.part(id)
	if p == nil {
		return false
	}
	for i := range p.ins {
		in := PinID{id, Input, i}
		if up := p.ins[i].from; up.Valid() {
			n.Disconnect(up, in)
		}
	}
	for i := range p.outs {
		out := PinID{id, Output, i}
		for len(p.outs[i].to) > 0 {
			n.Disconnect(out, p.outs[i].to[0])
		}
	}
	p.live = false
	p.ins, p.outs, p.probe, p.act = nil, nil, nil, nil
	for i, idx := range n.order {
		if idx == id.index {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	n.free = append(n.free, id.index)
	n.log.Debug("part removed", "part", id.index, "kind", p.kind)
	return true
}

// Clear removes all parts.
//
func (n *Network) Clear() {
	for _, id := range n.Parts() {
		n.Remove(id)
	}
	n.ticks = 0
}

// Len returns the number of live parts.
//
func (n *Network) Len() int { return len(n.order) }

// Parts returns the IDs of all live parts in evaluation order.
//
func (n *Network) Parts() []PartID {
	ids := make([]PartID, len(n.order))
	for i, idx := range n.order {
		ids[i] = PartID{idx, n.parts[idx].gen}
	}
	return ids
}

// Contains returns true if id refers to a live part.
//
func (n *Network) Contains(id PartID) bool { return n.part(id) != nil }

// Kind returns the kind of the given part.
//
func (n *Network) Kind(id PartID) (Kind, bool) {
	p := n.part(id)
	if p == nil {
		return 0, false
	}
	return p.kind, true
}

// Position returns the center of the given part.
//
func (n *Network) Position(id PartID) (Point, bool) {
	p := n.part(id)
	if p == nil {
		return Point{}, false
	}
	return p.center, true
}

// SetPosition moves the given part and all its pins.
//
func (n *Network) SetPosition(id PartID, at Point) bool {
	p := n.part(id)
	if p == nil {
		return false
	}
	p.place(at)
	return true
}

// Bounds returns the bounding box of the given part.
//
func (n *Network) Bounds(id PartID) (Rect, bool) {
	p := n.part(id)
	if p == nil {
		return Rect{}, false
	}
	return p.bounds(), true
}

// HitTest returns true if pt lies within the bounding box of the given part.
//
func (n *Network) HitTest(id PartID, pt Point) bool {
	p := n.part(id)
	return p != nil && p.bounds().Contains(pt)
}

// InputPin returns the i-th input pin of the given part, or NoPin and false if
// there is no such pin.
//
func (n *Network) InputPin(id PartID, i int) (PinID, bool) {
	pin := PinID{id, Input, i}
	if n.inPin(pin) == nil {
		return NoPin, false
	}
	return pin, true
}

// OutputPin returns the i-th output pin of the given part, or NoPin and false
// if there is no such pin.
//
func (n *Network) OutputPin(id PartID, i int) (PinID, bool) {
	pin := PinID{id, Output, i}
	if n.outPin(pin) == nil {
		return NoPin, false
	}
	return pin, true
}

// NumInputs returns the input pin count of the given part.
//
func (n *Network) NumInputs(id PartID) int {
	if p := n.part(id); p != nil {
		return len(p.ins)
	}
	return 0
}

// NumOutputs returns the output pin count of the given part.
//
func (n *Network) NumOutputs(id PartID) int {
	if p := n.part(id); p != nil {
		return len(p.outs)
	}
	return 0
}

// Pins returns all pins of the given part, inputs first.
//
func (n *Network) Pins(id PartID) []PinID {
	p := n.part(id)
	if p == nil {
		return nil
	}
	pins := make([]PinID, 0, len(p.ins)+len(p.outs))
	for i := range p.ins {
		pins = append(pins, PinID{id, Input, i})
	}
	for i := range p.outs {
		pins = append(pins, PinID{id, Output, i})
	}
	return pins
}

func (n *Network) geom(pin PinID) *pinGeom {
	if in := n.inPin(pin); in != nil {
		return &in.pinGeom
	}
	if out := n.outPin(pin); out != nil {
		return &out.pinGeom
	}
	return nil
}

// PinPosition returns the absolute position of a pin.
//
func (n *Network) PinPosition(pin PinID) (Point, bool) {
	g := n.geom(pin)
	if g == nil {
		return Point{}, false
	}
	return g.pos, true
}

// PinHitTest returns true if pt is within PinDiameter/2 of the pin's center.
//
func (n *Network) PinHitTest(pin PinID, pt Point) bool {
	g := n.geom(pin)
	return g != nil && g.hit(pt)
}

// PinState returns the cached state of a pin: the last state propagated to an
// input pin, or the state currently driven by an output pin. It returns
// Unknown for invalid pins.
//
func (n *Network) PinState(pin PinID) State {
	if in := n.inPin(pin); in != nil {
		return in.state
	}
	if out := n.outPin(pin); out != nil {
		return out.state
	}
	return Unknown
}

// Connect connects output pin out to input pin in. If in is already connected
// to another output, that connection is dropped first.
//
// Connect is a no-op and returns false if either pin is invalid or stale, if
// the pins have the wrong kinds, if both pins belong to the same part or if
// the connection already exists. Cached pin states are left untouched; they are
// refreshed by the next Tick.
//
func (n *Network) Connect(out, in PinID) bool {
	o, i := n.outPin(out), n.inPin(in)
	if o == nil || i == nil || out.Part == in.Part || i.from == out {
		return false
	}
	if i.connected() {
		n.Disconnect(i.from, in)
	}
	i.from = out
	o.to = append(o.to, in)
	n.log.Debug("connect", "from", pinLog(out), "to", pinLog(in))
	return true
}

// Disconnect removes the connection from out to in. It returns false if there
// was no such connection.
//
func (n *Network) Disconnect(out, in PinID) bool {
	o, i := n.outPin(out), n.inPin(in)
	if o == nil || i == nil || i.from != out {
		return false
	}
	o.drop(in)
	i.from = NoPin
	n.log.Debug("disconnect", "from", pinLog(out), "to", pinLog(in))
	return true
}

// ConnectInput connects the index-th input of the given part to out. See
// Connect.
//
func (n *Network) ConnectInput(id PartID, index int, out PinID) bool {
	in, ok := n.InputPin(id, index)
	if !ok {
		return false
	}
	return n.Connect(out, in)
}

// Upstream returns the output pin connected to in.
//
func (n *Network) Upstream(in PinID) (PinID, bool) {
	i := n.inPin(in)
	if i == nil || !i.connected() {
		return NoPin, false
	}
	return i.from, true
}

// Downstream returns the input pins connected to out.
//
func (n *Network) Downstream(out PinID) []PinID {
	o := n.outPin(out)
	if o == nil {
		return nil
	}
	return append([]PinID(nil), o.to...)
}

// Connected returns true if out is connected to in.
//
func (n *Network) Connected(out, in PinID) bool {
	i := n.inPin(in)
	return i != nil && i.from == out && n.outPin(out) != nil
}

// A Connection is an edge from an output pin to an input pin.
//
type Connection struct {
	From, To PinID
}

// Connections returns all connections in the network, ordered by the
// evaluation order of their source part.
//
func (n *Network) Connections() []Connection {
	var cs []Connection
	for _, idx := range n.order {
		p := &n.parts[idx]
		for i := range p.outs {
			from := PinID{PartID{idx, p.gen}, Output, i}
			for _, to := range p.outs[i].to {
				cs = append(cs, Connection{from, to})
			}
		}
	}
	return cs
}

type pinLog PinID

func (p pinLog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("part", int(p.Part.index)),
		slog.String("kind", p.Kind.String()),
		slog.Int("index", p.Index),
	)
}
