// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package kickgate implements the logic network of a conveyor sorting puzzle: the
player wires gates and sensors so that a kicker pushes the right products off
the belt.

Signals are three-valued (One, Zero, Unknown). A Network holds parts (OR, AND
and NOT gates, SR and D flip-flops, sensors and kickers) in an arena addressed
by generational handles. Each part owns its pins; an input pin has at most one
upstream output pin, an output pin fans out to any number of inputs.

	n := kickgate.New()
	s := n.AddSensor(kickgate.Pt(0, 0), func() kickgate.State { return kickgate.One })
	not := n.Add(kickgate.KindNot, kickgate.Pt(100, 0))
	out, _ := n.OutputPin(s, 0)
	n.ConnectInput(not, 0, out)
	n.Tick()

Tick evaluates every part once, in insertion order, and pushes the new output
states along the connections. There is no settling, so a value crossing a part
evaluated earlier in the same tick arrives one tick later.

A Board wraps a Network into the item collection seen by the presentation
layer (gates, sensors, kickers and inert scenery), with point queries written
as Visitors, and an Editor implements the mouse-driven wiring session on top of
it. Items draw themselves on a Canvas.
*/
package kickgate
