// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// An Item is an element of a Board: a gate, a sensor, a kicker or a piece of
// scenery. The set of item variants is closed; Item cannot be implemented
// outside this package.
//
type Item interface {
	// Accept calls the entry of v matching the item's variant, if set.
	Accept(v *Visitor)
	Bounds() Rect
	// Draw draws the item. It never changes simulation state.
	Draw(c Canvas)

	item()
}

// A Visitor is a dispatch table with one entry per item variant. Nil entries
// are skipped.
//
type Visitor struct {
	Gate    func(*Gate)
	Sensor  func(*Sensor)
	Kicker  func(*Kicker)
	Scenery func(*Scenery)
}

// partItem is the common part of items backed by a Network part.
type partItem struct {
	net *Network
	id  PartID
}

func (partItem) item() {}

// ID returns the network handle of the item.
func (p partItem) ID() PartID { return p.id }

// Position returns the center of the item.
func (p partItem) Position() Point {
	pt, _ := p.net.Position(p.id)
	return pt
}

// SetPosition moves the item and its pins.
func (p partItem) SetPosition(at Point) bool { return p.net.SetPosition(p.id, at) }

// Bounds returns the bounding box of the item.
func (p partItem) Bounds() Rect {
	r, _ := p.net.Bounds(p.id)
	return r
}

// HitTest returns true if pt is inside the item's bounding box.
func (p partItem) HitTest(pt Point) bool { return p.net.HitTest(p.id, pt) }

// Draw draws the item body and its pins.
func (p partItem) Draw(c Canvas) { p.net.drawPart(c, p.id) }

// Gate is a logic gate item.
//
type Gate struct {
	partItem
}

// Accept implements Item.
func (g *Gate) Accept(v *Visitor) {
	if v.Gate != nil {
		v.Gate(g)
	}
}

// Kind returns the gate kind.
func (g *Gate) Kind() Kind {
	k, _ := g.net.Kind(g.id)
	return k
}

// InputPin returns the i-th input pin, or NoPin and false.
func (g *Gate) InputPin(i int) (PinID, bool) { return g.net.InputPin(g.id, i) }

// OutputPin returns the i-th output pin, or NoPin and false.
func (g *Gate) OutputPin(i int) (PinID, bool) { return g.net.OutputPin(g.id, i) }

// ConnectInput connects the i-th input of g to out.
func (g *Gate) ConnectInput(i int, out PinID) bool { return g.net.ConnectInput(g.id, i, out) }

// Output returns the state currently driven on the i-th output.
func (g *Gate) Output(i int) State {
	pin, ok := g.OutputPin(i)
	if !ok {
		return Unknown
	}
	return g.net.PinState(pin)
}

// ComputeOutput returns the outputs g would drive if it were evaluated now.
func (g *Gate) ComputeOutput() []State { return g.net.ComputeOutput(g.id) }

// Sensor is an item driving a single output pin from a Probe.
//
type Sensor struct {
	partItem
}

// Accept implements Item.
func (s *Sensor) Accept(v *Visitor) {
	if v.Sensor != nil {
		v.Sensor(s)
	}
}

// OutputPin returns the sensor's output pin.
func (s *Sensor) OutputPin() PinID { return PinID{s.id, Output, 0} }

// State returns the state sampled on the last tick.
func (s *Sensor) State() State { return s.net.PinState(s.OutputPin()) }

// SetProbe replaces the sensor's probe.
func (s *Sensor) SetProbe(p Probe) { s.net.SetProbe(s.id, p) }

// Kicker is the actuator item. It kicks on every rising edge of its input,
// that is every tick where its input is One after having been anything else.
//
type Kicker struct {
	partItem
	last  State
	kicks int
	act   Actuator
}

// Accept implements Item.
func (k *Kicker) Accept(v *Visitor) {
	if v.Kicker != nil {
		v.Kicker(k)
	}
}

// InputPin returns the kicker's input pin.
func (k *Kicker) InputPin() PinID { return PinID{k.id, Input, 0} }

// State returns the input state seen on the last tick.
func (k *Kicker) State() State { return k.last }

// Kicks returns the number of kicks so far.
func (k *Kicker) Kicks() int { return k.kicks }

func (k *Kicker) reset() { k.last, k.kicks = Unknown, 0 }

func (k *Kicker) actuate(s State) {
	if s == One && k.last != One {
		k.kicks++
	}
	k.last = s
	if k.act != nil {
		k.act(s)
	}
}

// Scenery is an inert physical item: conveyor belt, light beam, product bin…
// It takes part in drawing and hit-testing but not in the logic network.
//
type Scenery struct {
	Label string
	Rect  Rect
	Style Style
}

func (*Scenery) item() {}

// Accept implements Item.
func (s *Scenery) Accept(v *Visitor) {
	if v.Scenery != nil {
		v.Scenery(s)
	}
}

// Bounds implements Item.
func (s *Scenery) Bounds() Rect { return s.Rect }

// Draw implements Item.
func (s *Scenery) Draw(c Canvas) {
	c.Rect(s.Rect, s.Style)
	if s.Label != "" {
		c.Text(s.Rect.Center, s.Label)
	}
}
