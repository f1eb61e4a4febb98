// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package level

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// pinRef is a "part" or "part.pin" reference. An empty pin name selects the
// part's only pin of the expected kind.
type pinRef struct {
	part string
	pin  string
}

func (r pinRef) String() string {
	if r.pin == "" {
		return r.part
	}
	return r.part + "." + r.pin
}

// wireSpec is a parsed "src -> dst, dst..." wire description.
type wireSpec struct {
	from pinRef
	to   []pinRef
}

// parseWire parses a wire description. The source is an output pin reference,
// followed by "->" and a comma separated list of input pin references:
//
//	heavy -> both.a
//	clock.out -> d1.clk, d2.clk
//
func parseWire(s string) (wireSpec, error) {
	src, dsts, ok := strings.Cut(s, "->")
	if !ok {
		return wireSpec{}, parseError(s, "missing \"->\"")
	}
	from, err := parseRef(src)
	if err != nil {
		return wireSpec{}, parseError(s, err.Error())
	}
	w := wireSpec{from: from}
	for _, d := range strings.Split(dsts, ",") {
		to, err := parseRef(d)
		if err != nil {
			return wireSpec{}, parseError(s, err.Error())
		}
		w.to = append(w.to, to)
	}
	return w, nil
}

func parseRef(s string) (pinRef, error) {
	s = strings.TrimSpace(s)
	part, pin, dot := strings.Cut(s, ".")
	if !isIdent(part) {
		return pinRef{}, errors.Errorf("invalid part name %q", part)
	}
	if dot && !isIdent(pin) {
		return pinRef{}, errors.Errorf("invalid pin name %q", pin)
	}
	return pinRef{part, pin}, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || i > 0 && (unicode.IsDigit(r) || r == '-') {
			continue
		}
		return false
	}
	return true
}

func parseError(in string, msg string) error {
	return errors.Errorf("in wire %q: %s", in, msg)
}
