// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// PinDiameter is the visual diameter of a pin. A point hits a pin if it is at
// most PinDiameter/2 away from the pin's center.
//
const PinDiameter = 10.0

// PinKind tells input pins from output pins.
//
type PinKind uint8

// Pin kinds.
//
const (
	Input PinKind = iota + 1
	Output
)

func (k PinKind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return "none"
}

// A PinID identifies a pin by its owning part, its kind and its index within
// the part's inputs or outputs. Pins have no existence outside their part:
// once the part is removed, the PinID no longer resolves.
//
type PinID struct {
	Part  PartID
	Kind  PinKind
	Index int
}

// NoPin is the PinID returned by lookups that found nothing.
//
var NoPin PinID

// Valid returns false for NoPin. A valid PinID may still be stale; the Network
// methods check liveness.
//
func (p PinID) Valid() bool { return p.Kind != 0 && p.Part.Valid() }

// pin geometry. off is relative to the owning part's center.
type pinGeom struct {
	off, pos Point
}

func (g *pinGeom) place(center Point) { g.pos = center.Add(g.off) }

func (g *pinGeom) hit(p Point) bool { return g.pos.Dist(p) <= PinDiameter/2 }

type inputPin struct {
	pinGeom
	from  PinID // upstream output, NoPin if unconnected
	state State
}

func (i *inputPin) connected() bool { return i.from.Valid() }

type outputPin struct {
	pinGeom
	to    []PinID // fan-out
	state State
}

func (o *outputPin) drop(in PinID) bool {
	for i, t := range o.to {
		if t == in {
			copy(o.to[i:], o.to[i+1:])
			o.to = o.to[:len(o.to)-1]
			return true
		}
	}
	return false
}

func (o *outputPin) has(in PinID) bool {
	for _, t := range o.to {
		if t == in {
			return true
		}
	}
	return false
}
