// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package svg implements a kickgate.Canvas producing SVG documents.
//
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"

	kg "github.com/db47h/kickgate"
)

// DefaultMargin is the blank space added around the drawing.
//
const DefaultMargin = 10

// Canvas records drawing calls and writes them as a standalone SVG document.
// The view box is fitted to the drawn shapes.
//
type Canvas struct {
	Margin float64

	buf      bytes.Buffer
	min, max kg.Point
	empty    bool
}

// New returns an empty Canvas.
//
func New() *Canvas {
	return &Canvas{Margin: DefaultMargin, empty: true}
}

func (c *Canvas) extend(pts ...kg.Point) {
	for _, p := range pts {
		if c.empty {
			c.min, c.max, c.empty = p, p, false
			continue
		}
		c.min = kg.Pt(math.Min(c.min.X, p.X), math.Min(c.min.Y, p.Y))
		c.max = kg.Pt(math.Max(c.max.X, p.X), math.Max(c.max.Y, p.Y))
	}
}

func style(s kg.Style) string {
	var a string
	if s.Stroke != "" {
		a += fmt.Sprintf(` stroke="%s"`, s.Stroke)
	}
	if s.Fill != "" {
		a += fmt.Sprintf(` fill="%s"`, s.Fill)
	} else {
		a += ` fill="none"`
	}
	return a
}

// Rect implements kickgate.Canvas.
func (c *Canvas) Rect(r kg.Rect, s kg.Style) {
	min, max := r.Min(), r.Max()
	c.extend(min, max)
	fmt.Fprintf(&c.buf, "  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\"%s/>\n", min.X, min.Y, r.W, r.H, style(s))
}

// Circle implements kickgate.Canvas.
func (c *Canvas) Circle(center kg.Point, radius float64, s kg.Style) {
	d := kg.Pt(radius, radius)
	c.extend(center.Sub(d), center.Add(d))
	fmt.Fprintf(&c.buf, "  <circle cx=\"%g\" cy=\"%g\" r=\"%g\"%s/>\n", center.X, center.Y, radius, style(s))
}

// Line implements kickgate.Canvas.
func (c *Canvas) Line(from, to kg.Point, s kg.Style) {
	c.extend(from, to)
	fmt.Fprintf(&c.buf, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"%s/>\n", from.X, from.Y, to.X, to.Y, style(s))
}

// Curve implements kickgate.Canvas. Curves are never filled.
func (c *Canvas) Curve(p0, c1, c2, p1 kg.Point, s kg.Style) {
	c.extend(p0, c1, c2, p1)
	s.Fill = ""
	fmt.Fprintf(&c.buf, "  <path d=\"M %g %g C %g %g, %g %g, %g %g\"%s/>\n",
		p0.X, p0.Y, c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y, style(s))
}

// Text implements kickgate.Canvas. The text is centered on at.
func (c *Canvas) Text(at kg.Point, text string) {
	c.extend(at)
	fmt.Fprintf(&c.buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" dominant-baseline=\"middle\">", at.X, at.Y)
	xml.EscapeText(&c.buf, []byte(text))
	c.buf.WriteString("</text>\n")
}

// WriteTo writes the SVG document to w.
//
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	min, max := c.min, c.max
	m := kg.Pt(c.Margin, c.Margin)
	min, max = min.Sub(m), max.Add(m)
	var out bytes.Buffer
	fmt.Fprintf(&out, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\" font-family=\"sans-serif\" font-size=\"10\">\n",
		min.X, min.Y, max.X-min.X, max.Y-min.Y)
	out.Write(c.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.WriteTo(w)
}

// Reset clears the canvas.
//
func (c *Canvas) Reset() {
	c.buf.Reset()
	c.min, c.max, c.empty = kg.Point{}, kg.Point{}, true
}

// Render writes b as an SVG document. The wires of e are drawn under the
// parts if e is not nil.
//
func Render(w io.Writer, b *kg.Board, e *kg.Editor) error {
	c := New()
	if e != nil {
		e.Draw(c)
	}
	b.Draw(c)
	_, err := c.WriteTo(w)
	return err
}
