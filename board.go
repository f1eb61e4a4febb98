// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

// Board is the order-stable collection of items making up a level. Part items
// are backed by the Board's Network.
//
type Board struct {
	net   *Network
	items []Item
}

// NewBoard returns an empty board over n. If n is nil, a new Network is
// created.
//
func NewBoard(n *Network) *Board {
	if n == nil {
		n = New()
	}
	return &Board{net: n}
}

// Network returns the logic network of the board.
//
func (b *Board) Network() *Network { return b.net }

// AddGate adds a logic gate. It returns nil if kind is not a gate kind.
//
func (b *Board) AddGate(kind Kind, at Point) *Gate {
	if !kind.IsGate() {
		return nil
	}
	g := &Gate{partItem{b.net, b.net.Add(kind, at)}}
	b.items = append(b.items, g)
	return g
}

// AddSensor adds a sensor sampling probe on every tick.
//
func (b *Board) AddSensor(at Point, probe Probe) *Sensor {
	s := &Sensor{partItem{b.net, b.net.AddSensor(at, probe)}}
	b.items = append(b.items, s)
	return s
}

// AddKicker adds a kicker. act may be nil.
//
func (b *Board) AddKicker(at Point, act Actuator) *Kicker {
	k := &Kicker{act: act}
	k.partItem = partItem{b.net, b.net.AddKicker(at, k.actuate)}
	b.items = append(b.items, k)
	return k
}

// AddScenery adds an inert item.
//
func (b *Board) AddScenery(label string, r Rect) *Scenery {
	s := &Scenery{Label: label, Rect: r, Style: Style{Stroke: ColorBody}}
	b.items = append(b.items, s)
	return s
}

// Remove removes it from the board, and its part from the network.
//
func (b *Board) Remove(it Item) bool {
	for i, x := range b.items {
		if x != it {
			continue
		}
		b.items = append(b.items[:i], b.items[i+1:]...)
		if id, ok := PartOf(it); ok {
			b.net.Remove(id)
		}
		return true
	}
	return false
}

// Clear removes all items and parts.
//
func (b *Board) Clear() {
	b.items = nil
	b.net.Clear()
}

// Reset resets the network (see Network.Reset) and the kick count and last
// seen input of every kicker.
//
func (b *Board) Reset() {
	b.net.Reset()
	b.Walk(&Visitor{Kicker: func(k *Kicker) { k.reset() }})
}

// Len returns the item count.
//
func (b *Board) Len() int { return len(b.items) }

// Items returns the board items in insertion order.
//
func (b *Board) Items() []Item { return append([]Item(nil), b.items...) }

// Walk applies v to every item in insertion order.
//
func (b *Board) Walk(v *Visitor) {
	for _, it := range b.items {
		it.Accept(v)
	}
}

// Tick advances the simulation by one step. See Network.Tick.
//
func (b *Board) Tick() { b.net.Tick() }

// Draw draws all items in insertion order.
//
func (b *Board) Draw(c Canvas) {
	for _, it := range b.items {
		it.Draw(c)
	}
}

// PartOf returns the network part backing it, if any.
//
func PartOf(it Item) (PartID, bool) {
	var (
		id PartID
		ok bool
	)
	set := func(p partItem) { id, ok = p.id, true }
	it.Accept(&Visitor{
		Gate:   func(g *Gate) { set(g.partItem) },
		Sensor: func(s *Sensor) { set(s.partItem) },
		Kicker: func(k *Kicker) { set(k.partItem) },
	})
	return id, ok
}
