// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package cptext

// Encode is the inverse of [Decode]: it returns one byte per character
// of s. Characters above U+00FF, including the U+FFFD that stands in for
// invalid UTF-8, have no single-byte code point and are rejected.
func Encode(s string) ([]byte, error) {
	dst := make([]byte, 0, len(s))
	var i int
	for _, r := range s {
		c, ok := table.EncodeRune(r)
		if !ok {
			return nil, &ErrInvalidCodepoint{Index: i, Value: int(r)}
		}
		dst = append(dst, c)
		i++
	}
	return dst, nil
}

// Codepoints is like [Encode] but returns the code points as ints.
func Codepoints(s string) ([]int, error) {
	b, err := Encode(s)
	if err != nil {
		return nil, err
	}
	cps := make([]int, len(b))
	for i, c := range b {
		cps[i] = int(c)
	}
	return cps, nil
}
