// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// Style holds the stroke and fill colors of a shape. Empty strings mean no
// stroke or no fill.
//
type Style struct {
	Stroke string
	Fill   string
}

// Canvas is the drawing surface provided by the presentation layer. All
// coordinates are board coordinates.
//
type Canvas interface {
	Rect(r Rect, s Style)
	Circle(center Point, radius float64, s Style)
	Line(from, to Point, s Style)
	Curve(p0, c1, c2, p1 Point, s Style)
	Text(at Point, text string)
}

// Colors used to draw signals.
//
const (
	ColorOne     = "#2e9e3e"
	ColorZero    = "#b83232"
	ColorUnknown = "#8a8a8a"
	ColorBody    = "#202020"
	ColorFill    = "#f4f4f0"
)

// StateColor returns the color used to draw a pin or wire carrying s.
//
func StateColor(s State) string {
	switch s {
	case One:
		return ColorOne
	case Zero:
		return ColorZero
	}
	return ColorUnknown
}

// drawPart draws the body, label and pins of a part.
func (n *Network) drawPart(c Canvas, id PartID) {
	p := n.part(id)
	if p == nil {
		return
	}
	c.Rect(p.bounds(), Style{Stroke: ColorBody, Fill: ColorFill})
	c.Text(p.center, p.kind.String())
	for i := range p.ins {
		drawPin(c, p.ins[i].pos, p.ins[i].state)
	}
	for i := range p.outs {
		drawPin(c, p.outs[i].pos, p.outs[i].state)
	}
}

func drawPin(c Canvas, at Point, s State) {
	col := StateColor(s)
	c.Circle(at, PinDiameter/2, Style{Stroke: ColorBody, Fill: col})
}

// DrawPin draws a single pin.
//
func (n *Network) DrawPin(c Canvas, pin PinID) {
	if g := n.geom(pin); g != nil {
		drawPin(c, g.pos, n.PinState(pin))
	}
}
