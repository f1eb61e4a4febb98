// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package kickgate_test

import (
	"testing"

	kg "github.com/db47h/kickgate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	td := []struct {
		in  string
		out kg.State
	}{
		{"1", kg.One}, {"One", kg.One}, {"true", kg.One}, {" high ", kg.One},
		{"0", kg.Zero}, {"ZERO", kg.Zero}, {"false", kg.Zero}, {"low", kg.Zero},
		{"x", kg.Unknown}, {"X", kg.Unknown}, {"?", kg.Unknown}, {"unknown", kg.Unknown},
	}
	for _, d := range td {
		s, err := kg.ParseState(d.in)
		require.NoError(t, err, d.in)
		assert.Equal(t, d.out, s, d.in)
	}
	_, err := kg.ParseState("2")
	assert.EqualError(t, err, `invalid logic state "2"`)
}

func TestStateText(t *testing.T) {
	var s kg.State
	require.NoError(t, s.UnmarshalText([]byte("1")))
	assert.Equal(t, kg.One, s)
	b, err := kg.Zero.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
	assert.Error(t, s.UnmarshalText([]byte("maybe")))
	assert.Equal(t, kg.One, s, "failed unmarshal leaves the value alone")

	assert.Equal(t, "Unknown", kg.Unknown.String())
	assert.Equal(t, 'X', kg.Unknown.Rune())
	assert.False(t, kg.Unknown.Driven())
	assert.True(t, kg.Zero.Driven())
}
