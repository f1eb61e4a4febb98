// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

import "strings"

// Kind identifies the variant of a part in a Network.
//
// KindOr, KindAnd, KindNot, KindSR and KindD are logic gates. KindSensor and
// KindKicker are the I/O parts connecting the network to the conveyor: a
// sensor drives its output from a Probe and a kicker forwards its input to an
// Actuator.
//
type Kind uint8

// Part kinds.
//
const (
	KindOr Kind = iota
	KindAnd
	KindNot
	KindSR
	KindD
	KindSensor
	KindKicker

	kindCount
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
	pQ   = "q"
	pNQ  = "nq"
)

// kindSpec is the blueprint of a part kind: its name, pin names and body size.
type kindSpec struct {
	name    string
	inputs  []string
	outputs []string
	w, h    float64
}

var kindSpecs = [kindCount]kindSpec{
	KindOr:     {"OR", []string{pA, pB}, []string{pOut}, 60, 40},
	KindAnd:    {"AND", []string{pA, pB}, []string{pOut}, 60, 40},
	KindNot:    {"NOT", []string{pIn}, []string{pOut}, 40, 30},
	KindSR:     {"SR", []string{"s", "r"}, []string{pQ, pNQ}, 60, 60},
	KindD:      {"D", []string{"d", "clk"}, []string{pQ, pNQ}, 60, 60},
	KindSensor: {"SENSOR", nil, []string{pOut}, 30, 30},
	KindKicker: {"KICKER", []string{pIn}, nil, 40, 30},
}

func (k Kind) spec() *kindSpec {
	if k >= kindCount {
		return nil
	}
	return &kindSpecs[k]
}

func (k Kind) String() string {
	if s := k.spec(); s != nil {
		return s.name
	}
	return "INVALID"
}

// IsGate returns true for the five logic gate kinds.
//
func (k Kind) IsGate() bool { return k <= KindD }

// Sequential returns true for flip-flops, whose outputs depend on their
// previous outputs.
//
func (k Kind) Sequential() bool { return k == KindSR || k == KindD }

// Inputs returns the input pin names of k in pin index order.
//
func (k Kind) Inputs() []string {
	if s := k.spec(); s != nil {
		return append([]string(nil), s.inputs...)
	}
	return nil
}

// Outputs returns the output pin names of k in pin index order.
//
func (k Kind) Outputs() []string {
	if s := k.spec(); s != nil {
		return append([]string(nil), s.outputs...)
	}
	return nil
}

// Size returns the body size of parts of kind k.
//
func (k Kind) Size() (w, h float64) {
	if s := k.spec(); s != nil {
		return s.w, s.h
	}
	return 0, 0
}

// PinIndex returns the index of the named pin.
//
func (k Kind) PinIndex(kind PinKind, name string) (int, bool) {
	s := k.spec()
	if s == nil {
		return 0, false
	}
	names := s.inputs
	if kind == Output {
		names = s.outputs
	}
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// ParseKind returns the kind with the given name (case insensitive).
//
func ParseKind(name string) (Kind, bool) {
	for k := range kindSpecs {
		if strings.EqualFold(kindSpecs[k].name, name) {
			return Kind(k), true
		}
	}
	return 0, false
}

// A Probe samples the physical world for a sensor, once per tick.
//
type Probe func() State

// An Actuator receives the input state of a kicker, once per tick.
//
type Actuator func(State)

// A PartID is a generational handle to a part in a Network. The zero value
// refers to no part.
//
type PartID struct {
	index int32
	gen   uint32
}

// Valid returns false for the zero PartID.
//
func (id PartID) Valid() bool { return id.gen != 0 }

type part struct {
	gen    uint32
	live   bool
	kind   Kind
	center Point
	ins    []inputPin
	outs   []outputPin
	probe  Probe
	act    Actuator
}

func (p *part) init(kind Kind, at Point) {
	s := kind.spec()
	p.kind = kind
	p.live = true
	p.probe, p.act = nil, nil
	p.ins = make([]inputPin, len(s.inputs))
	p.outs = make([]outputPin, len(s.outputs))
	for i := range p.ins {
		p.ins[i].off = Point{-s.w / 2, -s.h/2 + s.h*float64(i+1)/float64(len(p.ins)+1)}
	}
	for i := range p.outs {
		p.outs[i].off = Point{s.w / 2, -s.h/2 + s.h*float64(i+1)/float64(len(p.outs)+1)}
	}
	p.place(at)
}

// place moves the part and re-derives all pin positions.
func (p *part) place(at Point) {
	p.center = at
	for i := range p.ins {
		p.ins[i].place(at)
	}
	for i := range p.outs {
		p.outs[i].place(at)
	}
}

func (p *part) bounds() Rect {
	w, h := p.kind.Size()
	return Rect{p.center, w, h}
}

// compute returns the next output states of p from its current input caches
// and, for flip-flops, its current outputs. It does not modify p.
func (p *part) compute() []State {
	switch p.kind {
	case KindSensor:
		if p.probe == nil {
			return []State{Unknown}
		}
		return []State{p.probe()}
	case KindKicker:
		return nil
	}
	in := make([]State, len(p.ins))
	for i := range p.ins {
		in[i] = p.ins[i].state
	}
	prev := make([]State, len(p.outs))
	for i := range p.outs {
		prev[i] = p.outs[i].state
	}
	return Eval(p.kind, in, prev)
}

// Eval applies the rule of a gate kind to the input states in and returns the
// new output states. prev holds the previous outputs of flip-flops; missing
// entries count as Unknown. Eval returns nil if kind is not a gate or if in
// does not have one state per input pin.
//
//	OR, AND: Unknown if any input is Unknown, else the boolean function.
//	NOT:     the complement, Unknown stays Unknown.
//	SR:      s=r=1 gives Unknown on q and nq, s=1 sets, r=1 resets, else hold.
//	D:       clk=1 gives q=d, nq=complement of d, else hold.
//
func Eval(kind Kind, in, prev []State) []State {
	if !kind.IsGate() || len(in) != len(kindSpecs[kind].inputs) {
		return nil
	}
	q, nq := Unknown, Unknown
	if len(prev) > 0 {
		q = prev[0]
	}
	if len(prev) > 1 {
		nq = prev[1]
	}
	switch kind {
	case KindOr:
		return []State{OrOf(in[0], in[1])}
	case KindAnd:
		return []State{AndOf(in[0], in[1])}
	case KindNot:
		return []State{in[0].Not()}
	case KindSR:
		q, nq = srNext(in[0], in[1], q, nq)
	case KindD:
		q, nq = dNext(in[0], in[1], q, nq)
	}
	return []State{q, nq}
}

// srNext is the SR flip-flop rule. S and R both One is the invalid state and
// yields Unknown on both outputs. Anything else that does not drive S or R to
// One holds the previous outputs.
func srNext(s, r, q, nq State) (State, State) {
	switch {
	case s == One && r == One:
		return Unknown, Unknown
	case s == One:
		return One, Zero
	case r == One:
		return Zero, One
	}
	return q, nq
}

// dNext is the level sensitive D latch rule.
func dNext(d, clk, q, nq State) (State, State) {
	if clk == One {
		return d, d.Not()
	}
	return q, nq
}
