// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// Board queries. Each query is a Visitor accumulating results over the board
// items. When several items overlap at a point, the last one in insertion
// order wins since it is drawn on top.

// GateAt returns the topmost gate whose body contains pt.
//
func (b *Board) GateAt(pt Point) (*Gate, bool) {
	var hit *Gate
	b.Walk(&Visitor{
		Gate: func(g *Gate) {
			if g.HitTest(pt) {
				hit = g
			}
		},
	})
	return hit, hit != nil
}

// PartAt returns the topmost gate, sensor or kicker whose body contains pt.
//
func (b *Board) PartAt(pt Point) (PartID, bool) {
	var (
		hit PartID
		ok  bool
	)
	test := func(p partItem) {
		if p.HitTest(pt) {
			hit, ok = p.id, true
		}
	}
	b.Walk(&Visitor{
		Gate:   func(g *Gate) { test(g.partItem) },
		Sensor: func(s *Sensor) { test(s.partItem) },
		Kicker: func(k *Kicker) { test(k.partItem) },
	})
	return hit, ok
}

// pinAt returns the topmost pin of the given kind within reach of pt.
func (b *Board) pinAt(pt Point, kind PinKind) (PinID, bool) {
	hit := NoPin
	test := func(p partItem) {
		for _, pin := range b.net.Pins(p.id) {
			if pin.Kind == kind && b.net.PinHitTest(pin, pt) {
				hit = pin
			}
		}
	}
	v := &Visitor{Gate: func(g *Gate) { test(g.partItem) }}
	switch kind {
	case Output:
		v.Sensor = func(s *Sensor) { test(s.partItem) }
	case Input:
		v.Kicker = func(k *Kicker) { test(k.partItem) }
	}
	b.Walk(v)
	return hit, hit.Valid()
}

// OutputPinAt returns the output pin under pt, on a gate or a sensor.
//
func (b *Board) OutputPinAt(pt Point) (PinID, bool) { return b.pinAt(pt, Output) }

// InputPinAt returns the input pin under pt, on a gate or a kicker.
//
func (b *Board) InputPinAt(pt Point) (PinID, bool) { return b.pinAt(pt, Input) }

// GatesOfKind returns all gates of the given kind in insertion order.
//
func (b *Board) GatesOfKind(kind Kind) []*Gate {
	var gs []*Gate
	b.Walk(&Visitor{
		Gate: func(g *Gate) {
			if g.Kind() == kind {
				gs = append(gs, g)
			}
		},
	})
	return gs
}

// Gates returns all gates in insertion order.
//
func (b *Board) Gates() []*Gate {
	var gs []*Gate
	b.Walk(&Visitor{Gate: func(g *Gate) { gs = append(gs, g) }})
	return gs
}

// Sensors returns all sensors in insertion order.
//
func (b *Board) Sensors() []*Sensor {
	var ss []*Sensor
	b.Walk(&Visitor{Sensor: func(s *Sensor) { ss = append(ss, s) }})
	return ss
}

// Kickers returns all kickers in insertion order.
//
func (b *Board) Kickers() []*Kicker {
	var ks []*Kicker
	b.Walk(&Visitor{Kicker: func(k *Kicker) { ks = append(ks, k) }})
	return ks
}

// Outputs returns, for every gate in insertion order, the outputs it would
// drive if evaluated now.
//
func (b *Board) Outputs() [][]State {
	var out [][]State
	b.Walk(&Visitor{Gate: func(g *Gate) { out = append(out, g.ComputeOutput()) }})
	return out
}
