// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// Mode is the state of the wiring interaction.
//
type Mode int

// Editor modes.
//
const (
	Idle     Mode = iota
	Dragging      // dragging a wire from a pin
	Moving        // dragging a part
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Moving:
		return "moving"
	}
	return "idle"
}

// Outcome is the result of a pointer event.
//
type Outcome int

// Pointer event outcomes.
//
const (
	None         Outcome = iota
	Started              // a drag started
	Connected            // a wire was connected
	Disconnected         // a wire was detached from an input pin
	Moved                // a part moved
	Abandoned            // a wire drag ended over nothing compatible
)

var outcomeNames = [...]string{"none", "started", "connected", "disconnected", "moved", "abandoned"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "invalid"
	}
	return outcomeNames[o]
}

// Editor is the mouse-driven wiring session over a Board. It owns the wires.
//
// Pressing an output pin, or a free input pin, starts dragging a wire from it.
// Pressing a connected input pin detaches it and drags the wire from its
// upstream output. Releasing over a compatible pin connects; releasing
// anywhere else abandons the drag and leaves no partial connection. Pressing a
// part body drags the part.
//
type Editor struct {
	board  *Board
	wires  []*Wire
	mode   Mode
	from   PinID
	moving PartID
	grab   Point
	cursor Point
}

// NewEditor returns an idle editor over b, with wires for all the connections
// already in b's network.
//
func NewEditor(b *Board) *Editor {
	e := &Editor{board: b}
	e.Sync()
	return e
}

// Mode returns the current interaction mode.
//
func (e *Editor) Mode() Mode { return e.mode }

// Wires returns the wires in creation order.
//
func (e *Editor) Wires() []*Wire { return append([]*Wire(nil), e.wires...) }

func (e *Editor) net() *Network { return e.board.net }

// Press handles a pointer press at pt.
//
func (e *Editor) Press(pt Point) Outcome {
	e.Cancel()
	e.cursor = pt
	n := e.net()
	if out, ok := e.board.OutputPinAt(pt); ok {
		return e.drag(out, Started)
	}
	if in, ok := e.board.InputPinAt(pt); ok {
		if up, ok := n.Upstream(in); ok {
			e.Disconnect(in)
			return e.drag(up, Disconnected)
		}
		return e.drag(in, Started)
	}
	if id, ok := e.board.PartAt(pt); ok {
		pos, _ := n.Position(id)
		e.mode, e.moving, e.grab = Moving, id, pt.Sub(pos)
		return e.done(Started)
	}
	return None
}

func (e *Editor) drag(from PinID, o Outcome) Outcome {
	e.mode, e.from = Dragging, from
	return e.done(o)
}

// Move handles a pointer move to pt.
//
func (e *Editor) Move(pt Point) Outcome {
	e.cursor = pt
	if e.mode != Moving {
		return None
	}
	if !e.net().SetPosition(e.moving, pt.Sub(e.grab)) {
		e.Cancel()
		return None
	}
	e.reroute(e.moving)
	return Moved
}

// Release handles a pointer release at pt and returns the editor to Idle.
//
func (e *Editor) Release(pt Point) Outcome {
	defer e.Cancel()
	switch e.mode {
	case Moving:
		if e.Move(pt) == Moved {
			return e.done(Moved)
		}
	case Dragging:
		var (
			out, in PinID
			ok      bool
		)
		if e.from.Kind == Output {
			out = e.from
			in, ok = e.board.InputPinAt(pt)
		} else {
			in = e.from
			out, ok = e.board.OutputPinAt(pt)
		}
		if ok && e.Connect(out, in) {
			return e.done(Connected)
		}
		return e.done(Abandoned)
	}
	return None
}

// Cancel abandons any gesture in progress.
//
func (e *Editor) Cancel() {
	e.mode, e.from, e.moving = Idle, NoPin, PartID{}
}

func (e *Editor) done(o Outcome) Outcome {
	e.net().log.Debug("pointer", "outcome", o.String(), "mode", e.mode.String(), "x", e.cursor.X, "y", e.cursor.Y)
	return o
}

// Connect connects out to in and adds the matching wire, replacing the wire
// previously attached to in, if any.
//
func (e *Editor) Connect(out, in PinID) bool {
	if !e.net().Connect(out, in) {
		return false
	}
	e.dropWire(in)
	e.wires = append(e.wires, NewWire(e.net(), out, in))
	return true
}

// Disconnect detaches input pin in from its upstream output and removes the
// wire.
//
func (e *Editor) Disconnect(in PinID) bool {
	up, ok := e.net().Upstream(in)
	if !ok {
		return false
	}
	e.net().Disconnect(up, in)
	e.dropWire(in)
	return true
}

func (e *Editor) dropWire(in PinID) {
	ws := e.wires[:0]
	for _, w := range e.wires {
		if w.To != in {
			ws = append(ws, w)
		}
	}
	e.wires = ws
}

func (e *Editor) reroute(id PartID) {
	for _, w := range e.wires {
		if w.From.Part == id || w.To.Part == id {
			w.Route(e.net())
		}
	}
}

// Sync reconciles the wires with the network connections: wires whose
// connection is gone are dropped, connections without a wire get one and all
// wires are rerouted.
//
func (e *Editor) Sync() {
	n := e.net()
	ws := e.wires[:0]
	have := make(map[Connection]bool, len(e.wires))
	for _, w := range e.wires {
		if w.Live(n) && w.Route(n) {
			ws = append(ws, w)
			have[Connection{w.From, w.To}] = true
		}
	}
	e.wires = ws
	for _, c := range n.Connections() {
		if !have[c] {
			e.wires = append(e.wires, NewWire(n, c.From, c.To))
		}
	}
}

// RubberBand returns the segment to draw while dragging a wire.
//
func (e *Editor) RubberBand() (from, to Point, ok bool) {
	if e.mode != Dragging {
		return Point{}, Point{}, false
	}
	from, ok = e.net().PinPosition(e.from)
	return from, e.cursor, ok
}

// Remove removes it from the board along with the wires attached to its part.
//
func (e *Editor) Remove(it Item) bool {
	id, isPart := PartOf(it)
	if !e.board.Remove(it) {
		return false
	}
	if isPart {
		ws := e.wires[:0]
		for _, w := range e.wires {
			if w.From.Part != id && w.To.Part != id {
				ws = append(ws, w)
			}
		}
		e.wires = ws
		if e.moving == id || e.from.Part == id {
			e.Cancel()
		}
	}
	return true
}

// Draw draws the live wires and, while dragging, the rubber band. Wires whose
// connection was removed from the network are skipped.
//
func (e *Editor) Draw(c Canvas) {
	for _, w := range e.wires {
		if w.Live(e.net()) {
			w.Draw(c, e.net())
		}
	}
	if from, to, ok := e.RubberBand(); ok {
		c.Line(from, to, Style{Stroke: ColorBody})
	}
}
