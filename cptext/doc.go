// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

// Package cptext converts between single-byte code points and text.
//
// Every byte value 0-255 is the code point of exactly one character,
// U+0000 through U+00FF, so decoding is total and one character is
// produced per input byte. The returned strings are UTF-8, which means
// bytes 0x80-0xFF occupy two bytes of the result; count characters with
// [unicode/utf8.RuneCountInString], not len.
package cptext
