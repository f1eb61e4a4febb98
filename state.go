// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate

import (
	"strings"

	"github.com/pkg/errors"
)

// State is a three-valued logic signal.
//
// The zero value is Unknown: a pin that has never been driven.
//
type State uint8

// Logic states.
//
const (
	Unknown State = iota
	Zero
	One
)

// Not returns the complement of s. The complement of Unknown is Unknown.
//
func (s State) Not() State {
	switch s {
	case Zero:
		return One
	case One:
		return Zero
	default:
		return Unknown
	}
}

// Driven returns true if s is One or Zero.
//
func (s State) Driven() bool { return s == One || s == Zero }

// OrOf returns a OR b.
//
//	Function: Unknown if a or b is Unknown, One if a or b is One, Zero otherwise.
//
func OrOf(a, b State) State {
	if !a.Driven() || !b.Driven() {
		return Unknown
	}
	if a == One || b == One {
		return One
	}
	return Zero
}

// AndOf returns a AND b.
//
//	Function: Unknown if a or b is Unknown, One if both are One, Zero otherwise.
//
func AndOf(a, b State) State {
	if !a.Driven() || !b.Driven() {
		return Unknown
	}
	if a == One && b == One {
		return One
	}
	return Zero
}

// Rune returns the single character representation of s: '1', '0' or 'X'.
//
func (s State) Rune() rune {
	switch s {
	case Zero:
		return '0'
	case One:
		return '1'
	default:
		return 'X'
	}
}

func (s State) String() string {
	switch s {
	case Zero:
		return "Zero"
	case One:
		return "One"
	default:
		return "Unknown"
	}
}

// ParseState parses a state. Accepted values are (case insensitive)
// "1", "one", "true", "high", "0", "zero", "false", "low", "x", "unknown" and
// "?".
//
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one", "true", "high":
		return One, nil
	case "0", "zero", "false", "low":
		return Zero, nil
	case "x", "?", "unknown":
		return Unknown, nil
	}
	return Unknown, errors.Errorf("invalid logic state %q", s)
}

// MarshalText implements encoding.TextMarshaler.
//
func (s State) MarshalText() ([]byte, error) {
	return []byte(string(s.Rune())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (s *State) UnmarshalText(text []byte) error {
	v, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
