// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package cptext

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var table = charmap.ISO8859_1

// Decode returns the text whose i-th character has the code point b[i].
func Decode(b []byte) string {
	return bytesToString(AppendDecode(nil, b))
}

// AppendDecode appends the UTF-8 encoding of the decoded src to dst and
// returns the extended buffer.
func AppendDecode(dst, src []byte) []byte {
	dst = grow(dst, decodedLen(src))
	for _, c := range src {
		dst = utf8.AppendRune(dst, table.DecodeByte(c))
	}
	return dst
}

// DecodeCodepoints is like [Decode] for code points held in ints. It
// fails on the first value outside 0-255.
func DecodeCodepoints(cps []int) (string, error) {
	dst := make([]byte, 0, len(cps)*2)
	for i, cp := range cps {
		if cp < 0 || cp > 0xFF {
			return "", &ErrInvalidCodepoint{Index: i, Value: cp}
		}
		dst = utf8.AppendRune(dst, table.DecodeByte(byte(cp)))
	}
	return bytesToString(dst), nil
}

func decodedLen(src []byte) int {
	n := len(src)
	for _, c := range src {
		if c >= utf8.RuneSelf {
			n++
		}
	}
	return n
}

func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	c := make([]byte, len(b), len(b)+n)
	copy(c, b)
	return c
}
