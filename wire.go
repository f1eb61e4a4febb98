// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

import "math"

// minBend is the minimum horizontal distance between a wire endpoint and its
// control point.
const minBend = 20.0

// A Wire is the visual side of a connection from an output pin to an input
// pin. It carries no state of its own besides its endpoints and the control
// points of the Bézier curve used to draw it.
//
type Wire struct {
	From, To PinID

	p0, c1, c2, p1 Point
}

// NewWire returns a wire for the connection from -> to, routed against n.
//
func NewWire(n *Network, from, to PinID) *Wire {
	w := &Wire{From: from, To: to}
	w.Route(n)
	return w
}

// Route recomputes the curve after one of the endpoint parts moved. It returns
// false if either endpoint no longer exists.
//
func (w *Wire) Route(n *Network) bool {
	p0, ok0 := n.PinPosition(w.From)
	p1, ok1 := n.PinPosition(w.To)
	if !ok0 || !ok1 {
		return false
	}
	w.p0, w.p1 = p0, p1
	w.c1, w.c2 = controls(p0, p1)
	return true
}

// controls returns the control points of a curve leaving p0 to the right and
// entering p1 from the left.
func controls(p0, p1 Point) (Point, Point) {
	dx := math.Max(math.Abs(p1.X-p0.X)/2, minBend)
	return Point{p0.X + dx, p0.Y}, Point{p1.X - dx, p1.Y}
}

// Curve returns the cached endpoints and control points.
//
func (w *Wire) Curve() (p0, c1, c2, p1 Point) { return w.p0, w.c1, w.c2, w.p1 }

// State returns the state driven on the wire by its source pin.
//
func (w *Wire) State(n *Network) State { return n.PinState(w.From) }

// Live returns true if the connection drawn by w still exists in n.
//
func (w *Wire) Live(n *Network) bool { return n.Connected(w.From, w.To) }

// Draw draws the wire, colored after the state it carries.
//
func (w *Wire) Draw(c Canvas, n *Network) {
	c.Curve(w.p0, w.c1, w.c2, w.p1, Style{Stroke: StateColor(w.State(n))})
}
