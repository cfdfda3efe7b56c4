// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package cptext

import "strconv"

// ErrInvalidCodepoint reports a value that is not a single-byte code
// point. Index is the position of the value in the input, counted in
// elements for ints and in characters for strings.
type ErrInvalidCodepoint struct {
	Index int
	Value int
}

func (err *ErrInvalidCodepoint) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, "invalid code point "...)
	b = strconv.AppendInt(b, int64(err.Value), 10)
	b = append(b, " at index "...)
	b = strconv.AppendInt(b, int64(err.Index), 10)
	b = append(b, ": outside 0-255"...)
	return bytesToString(b)
}
