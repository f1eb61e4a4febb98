// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package level loads puzzle levels from YAML files and runs them against
// scripted sensors.
//
// A level file looks like this:
//
//	name: heavy and tall
//	ticks: 5
//	parts:
//	  - {name: heavy, kind: sensor, at: [20, 40], script: "0110"}
//	  - {name: tall, kind: sensor, at: [20, 120], script: "0101"}
//	  - {name: both, kind: and, at: [150, 80]}
//	  - {name: kick, kind: kicker, at: [300, 80]}
//	wires:
//	  - heavy -> both.a
//	  - tall -> both.b
//	  - both -> kick
//	scenery:
//	  - {label: belt, at: [200, 200], size: [400, 20]}
//
// Parts are evaluated in file order. A sensor script gives one state per tick
// ('1', '0' or 'x'; blanks are ignored). Past its end, the script holds its
// last state, or starts over if loop is set.
//
package level

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Level is the description of a puzzle level.
//
type Level struct {
	Name    string    `yaml:"name"`
	Ticks   int       `yaml:"ticks"`
	Parts   []Part    `yaml:"parts"`
	Wires   []string  `yaml:"wires"`
	Scenery []Scenery `yaml:"scenery"`
}

// Part describes a gate, sensor or kicker.
//
type Part struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	At     [2]float64 `yaml:"at"`
	Script string     `yaml:"script,omitempty"`
	Loop   bool       `yaml:"loop,omitempty"`
}

// Scenery describes an inert item.
//
type Scenery struct {
	Label string     `yaml:"label"`
	At    [2]float64 `yaml:"at"`
	Size  [2]float64 `yaml:"size"`
}

// DefaultTicks is the tick count of levels that do not specify one.
//
const DefaultTicks = 16

// Parse decodes a level. Unknown fields are rejected.
//
func Parse(r io.Reader) (*Level, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var l Level
	if err := dec.Decode(&l); err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	if l.Ticks <= 0 {
		l.Ticks = DefaultTicks
	}
	return &l, nil
}

// Load reads and parses the given level file.
//
func Load(filename string) (*Level, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return l, nil
}
