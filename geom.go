// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

import "math"

// Point is a position in board coordinates.
//
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
//
func Pt(x, y float64) Point { return Point{x, y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rect is an axis aligned rectangle given by its center and size.
//
type Rect struct {
	Center Point
	W, H   float64
}

// Min returns the top-left corner of r.
func (r Rect) Min() Point { return Point{r.Center.X - r.W/2, r.Center.Y - r.H/2} }

// Max returns the bottom-right corner of r.
func (r Rect) Max() Point { return Point{r.Center.X + r.W/2, r.Center.Y + r.H/2} }

// Contains reports whether p lies within r, edges included.
//
func (r Rect) Contains(p Point) bool {
	return math.Abs(p.X-r.Center.X) <= r.W/2 && math.Abs(p.Y-r.Center.Y) <= r.H/2
}
