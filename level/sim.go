// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level

import (
	"log/slog"
	"strings"

	kg "github.com/db47h/kickgate"
	"github.com/pkg/errors"
)

// script is a parsed sensor script.
type script struct {
	states []kg.State
	loop   bool
}

func parseScript(s string, loop bool) (script, error) {
	sc := script{loop: loop}
	for _, r := range s {
		switch r {
		case ' ', '\t', '_':
			continue
		}
		st, err := kg.ParseState(string(r))
		if err != nil {
			return script{}, err
		}
		sc.states = append(sc.states, st)
	}
	return sc, nil
}

func (s script) at(tick int) kg.State {
	switch n := len(s.states); {
	case n == 0:
		return kg.Unknown
	case tick < n:
		return s.states[tick]
	case s.loop:
		return s.states[tick%n]
	default:
		return s.states[n-1]
	}
}

// Sim is a level built onto a Board.
//
type Sim struct {
	Level *Level
	Board *kg.Board

	names   []string
	parts   map[string]kg.PartID
	kickers []*kg.Kicker
	tick    int
	log     *slog.Logger
}

// Build creates the level's board: its parts in file order, its wires and its
// scenery. Sensors are driven by their scripts. The options are passed to the
// underlying Network.
//
func (l *Level) Build(opts ...kg.Option) (*Sim, error) {
	net := kg.New(opts...)
	s := &Sim{
		Level: l,
		Board: kg.NewBoard(net),
		parts: make(map[string]kg.PartID, len(l.Parts)),
		log:   net.Logger(),
	}
	for i := range l.Parts {
		if err := s.addPart(&l.Parts[i]); err != nil {
			return nil, errors.Wrapf(err, "part #%d", i+1)
		}
	}
	for _, w := range l.Wires {
		if err := s.addWire(w); err != nil {
			return nil, err
		}
	}
	for _, sc := range l.Scenery {
		s.Board.AddScenery(sc.Label, kg.Rect{
			Center: kg.Pt(sc.At[0], sc.At[1]),
			W:      sc.Size[0],
			H:      sc.Size[1],
		})
	}
	s.log.Debug("level built", "name", l.Name, "parts", len(l.Parts), "wires", len(l.Wires))
	return s, nil
}

func (s *Sim) addPart(p *Part) error {
	if !isIdent(p.Name) {
		return errors.Errorf("invalid part name %q", p.Name)
	}
	if _, ok := s.parts[p.Name]; ok {
		return errors.Errorf("duplicate part name %q", p.Name)
	}
	kind, ok := kg.ParseKind(p.Kind)
	if !ok {
		return errors.Errorf("%s: unknown part kind %q", p.Name, p.Kind)
	}
	if p.Script != "" && kind != kg.KindSensor {
		return errors.Errorf("%s: only sensors can have a script", p.Name)
	}
	at := kg.Pt(p.At[0], p.At[1])
	var id kg.PartID
	switch kind {
	case kg.KindSensor:
		sc, err := parseScript(p.Script, p.Loop)
		if err != nil {
			return errors.Wrapf(err, "%s: script", p.Name)
		}
		id = s.Board.AddSensor(at, func() kg.State { return sc.at(s.tick) }).ID()
	case kg.KindKicker:
		k := s.Board.AddKicker(at, nil)
		s.kickers = append(s.kickers, k)
		id = k.ID()
	default:
		id = s.Board.AddGate(kind, at).ID()
	}
	s.parts[p.Name] = id
	s.names = append(s.names, p.Name)
	return nil
}

func (s *Sim) addWire(spec string) error {
	w, err := parseWire(spec)
	if err != nil {
		return err
	}
	from, err := s.pin(w.from, kg.Output)
	if err != nil {
		return errors.Wrapf(err, "in wire %q", spec)
	}
	net := s.Board.Network()
	for _, r := range w.to {
		to, err := s.pin(r, kg.Input)
		if err != nil {
			return errors.Wrapf(err, "in wire %q", spec)
		}
		if _, ok := net.Upstream(to); ok {
			return errors.Errorf("in wire %q: input %s already connected", spec, r)
		}
		if !net.Connect(from, to) {
			return errors.Errorf("in wire %q: cannot connect %s to %s", spec, w.from, r)
		}
	}
	return nil
}

// pin resolves a pin reference. A reference without a pin name selects the
// part's only pin of the requested kind.
func (s *Sim) pin(r pinRef, kind kg.PinKind) (kg.PinID, error) {
	id, ok := s.parts[r.part]
	if !ok {
		return kg.NoPin, errors.Errorf("unknown part %q", r.part)
	}
	net := s.Board.Network()
	k, _ := net.Kind(id)
	get, count := net.InputPin, net.NumInputs(id)
	if kind == kg.Output {
		get, count = net.OutputPin, net.NumOutputs(id)
	}
	idx := 0
	if r.pin != "" {
		if idx, ok = k.PinIndex(kind, r.pin); !ok {
			return kg.NoPin, errors.Errorf("%s %s has no %s pin %q", k, r.part, kind, r.pin)
		}
	} else if count != 1 {
		return kg.NoPin, errors.Errorf("%s %s has %d %s pins, pin name required", k, r.part, count, kind)
	}
	p, _ := get(id, idx)
	return p, nil
}

// Part returns the handle of the named part.
//
func (s *Sim) Part(name string) (kg.PartID, bool) {
	id, ok := s.parts[name]
	return id, ok
}

// Pin returns the pin designated by ref ("part" or "part.pin") of the given
// kind.
//
func (s *Sim) Pin(ref string, kind kg.PinKind) (kg.PinID, error) {
	r, err := parseRef(ref)
	if err != nil {
		return kg.NoPin, err
	}
	return s.pin(r, kind)
}

// Tick returns the number of ticks run so far.
//
func (s *Sim) Tick() int { return s.tick }

// Kicks returns the kick count of every kicker, by name.
//
func (s *Sim) Kicks() map[string]int {
	m := make(map[string]int, len(s.kickers))
	for _, k := range s.kickers {
		m[s.nameOf(k.ID())] = k.Kicks()
	}
	return m
}

func (s *Sim) nameOf(id kg.PartID) string {
	for _, n := range s.names {
		if s.parts[n] == id {
			return n
		}
	}
	return ""
}

// Columns returns the names of the traced pins: every output pin of every
// part, and the input of kickers, in part order.
//
func (s *Sim) Columns() []string {
	var cols []string
	net := s.Board.Network()
	for _, n := range s.names {
		k, _ := net.Kind(s.parts[n])
		pins := k.Outputs()
		if k == kg.KindKicker {
			pins = k.Inputs()
		}
		for _, p := range pins {
			cols = append(cols, n+"."+p)
		}
	}
	return cols
}

// Step runs one tick and returns the resulting frame.
//
func (s *Sim) Step() Frame {
	s.Board.Tick()
	f := Frame{Tick: s.tick}
	net := s.Board.Network()
	for _, n := range s.names {
		id := s.parts[n]
		k, _ := net.Kind(id)
		if k == kg.KindKicker {
			p, _ := net.InputPin(id, 0)
			f.States = append(f.States, net.PinState(p))
			continue
		}
		for i := 0; i < net.NumOutputs(id); i++ {
			p, _ := net.OutputPin(id, i)
			f.States = append(f.States, net.PinState(p))
		}
	}
	s.tick++
	return f
}

// Run runs the given number of ticks, or the level's tick count if ticks <= 0,
// and returns the trace.
//
func (s *Sim) Run(ticks int) *Trace {
	if ticks <= 0 {
		ticks = s.Level.Ticks
	}
	t := &Trace{Name: s.Level.Name, Columns: s.Columns()}
	for i := 0; i < ticks; i++ {
		t.Frames = append(t.Frames, s.Step())
	}
	t.Kicks = make([]Kicks, 0, len(s.kickers))
	for _, k := range s.kickers {
		t.Kicks = append(t.Kicks, Kicks{Kicker: s.nameOf(k.ID()), Count: k.Kicks()})
	}
	s.log.Info("level run", "name", s.Level.Name, "ticks", ticks, "kickers", strings.Join(kickerNames(t.Kicks), ","))
	return t
}

func kickerNames(ks []Kicks) []string {
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.Kicker
	}
	return names
}
