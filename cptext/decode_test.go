// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package cptext

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hello = []byte{72, 101, 108, 108, 111, 32, 119, 111, 114, 108, 100, 33}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"single", []byte{65}, "A"},
		{"hello", hello, "Hello world!"},
		{"nul", []byte{0}, "\x00"},
		{"max", []byte{255}, "ÿ"},
		{"latin1", []byte{0xA2, 0xE9, 0x20, 0xD7}, "¢é ×"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestDecodeLength(t *testing.T) {
	b := allBytes()
	for n := 0; n <= len(b); n++ {
		s := Decode(b[:n])
		require.Equal(t, n, utf8.RuneCountInString(s), "prefix %d", n)
	}
}

func TestDecodeOrder(t *testing.T) {
	b := allBytes()
	var i int
	for _, r := range Decode(b) {
		require.Equal(t, rune(b[i]), r, "index %d", i)
		i++
	}
	require.Equal(t, len(b), i)
}

func TestDecodeConcat(t *testing.T) {
	b := allBytes()
	for _, split := range []int{0, 1, 64, 127, 128, 200, 256} {
		b1, b2 := b[:split], b[split:]
		joined := append(append([]byte(nil), b1...), b2...)
		assert.Equal(t, Decode(b1)+Decode(b2), Decode(joined), "split %d", split)
	}
}

func TestDecodeBoundaries(t *testing.T) {
	for _, c := range []byte{0, 127, 128, 255} {
		s := Decode([]byte{c})
		r, size := utf8.DecodeRuneInString(s)
		assert.Equal(t, len(s), size)
		assert.Equal(t, rune(c), r)
	}
}

func TestDecodeDoesNotRetainInput(t *testing.T) {
	b := []byte("abc")
	s := Decode(b)
	b[0] = 'x'
	assert.Equal(t, "abc", s)
}

func TestAppendDecode(t *testing.T) {
	dst := []byte("> ")
	dst = AppendDecode(dst, []byte{72, 105, 0xB1})
	assert.Equal(t, "> Hi±", string(dst))

	buf := make([]byte, 0, 16)
	out := AppendDecode(buf, []byte("ok"))
	assert.Equal(t, "ok", string(out))
	assert.Same(t, &buf[:1][0], &out[0], "expected the spare capacity to be reused")
}

func TestDecodeCodepoints(t *testing.T) {
	s, err := DecodeCodepoints([]int{72, 101, 108, 108, 111, 32, 119, 111, 114, 108, 100, 33})
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", s)

	s, err = DecodeCodepoints(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = DecodeCodepoints([]int{0, 255})
	require.NoError(t, err)
	assert.Equal(t, "\x00ÿ", s)
}

func TestDecodeCodepointsInvalid(t *testing.T) {
	tests := []struct {
		in    []int
		index int
		value int
	}{
		{[]int{65, 256}, 1, 256},
		{[]int{-1}, 0, -1},
		{[]int{1, 2, 3, 1 << 20, -5}, 3, 1 << 20},
	}
	for _, tt := range tests {
		s, err := DecodeCodepoints(tt.in)
		assert.Empty(t, s)

		var invalid *ErrInvalidCodepoint
		require.True(t, errors.As(err, &invalid), "%v", err)
		assert.Equal(t, tt.index, invalid.Index)
		assert.Equal(t, tt.value, invalid.Value)
	}
}

func TestErrInvalidCodepointMessage(t *testing.T) {
	err := &ErrInvalidCodepoint{Index: 1, Value: 256}
	assert.Equal(t, "invalid code point 256 at index 1: outside 0-255", err.Error())
}

func BenchmarkDecode(b *testing.B) {
	src := allBytes()
	b.SetBytes(int64(len(src)))
	for b.Loop() {
		_ = Decode(src)
	}
}
