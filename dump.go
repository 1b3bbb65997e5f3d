package charset

/**********************************************************************************************/
/* The MIT License                                                                            */
/*                                                                                            */
/* Copyright 2016-2017 Twitch Interactive, Inc. or its affiliates. All Rights Reserved.       */
/* golang Port Copyright (c) 2022 Mux (mux.com)                                                      */
/*                                                                                            */
/* Permission is hereby granted, free of charge, to any person obtaining a copy               */
/* of this software and associated documentation files (the "Software"), to deal              */
/* in the Software without restriction, including without limitation the rights               */
/* to use, copy, modify, merge, publish, distribute, sublicense, and/or sell                  */
/* copies of the Software, and to permit persons to whom the Software is                      */
/* furnished to do so, subject to the following conditions:                                   */
/*                                                                                            */
/* The above copyright notice and this permission notice shall be included in                 */
/* all copies or substantial portions of the Software.                                        */
/*                                                                                            */
/* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR                 */
/* IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,                   */
/* FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE                */
/* AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER                     */
/* LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,              */
/* OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN                  */
/* THE SOFTWARE.                                                                              */
/**********************************************************************************************/

import (
	"strings"
	"unicode"
)

// Dump is a pseudo charset representing data as a hexadecimal dump: two
// upper-case digits per byte, bytes separated by one space. It has no state.
type Dump struct{}

var _ Charset = Dump{}

func init() {
	Register("DUMP", func() Charset { return Dump{} })
}

const hexDigits = "0123456789ABCDEF"

func (Dump) Name() string { return "DUMP" }

func (Dump) Decode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(3*len(data) - 1)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0F])
	}
	return sb.String()
}

// Encode parses hexadecimal digit pairs from s. White space is skipped
// anywhere, even between the two digits of a byte. Encoding stops at the
// first other character or when dst is full; a dangling digit is not
// consumed.
func (Dump) Encode(dst []byte, s string) (nChars, nBytes int) {
	var (
		high    byte
		pending bool
		pos     int
	)
	for _, c := range s {
		pos++
		if unicode.IsSpace(c) {
			if !pending {
				nChars = pos
			}
			continue
		}
		nibble, ok := hexValue(c)
		if !ok {
			break
		}
		if !pending {
			if nBytes >= len(dst) {
				break
			}
			high, pending = nibble, true
			continue
		}
		dst[nBytes] = high<<4 | nibble
		nBytes++
		pending = false
		nChars = pos
	}
	return nChars, nBytes
}

// CanEncode reports whether s only contains hexadecimal digits and white
// space, with an even number of digits.
func (Dump) CanEncode(s string) bool {
	digits := 0
	for _, c := range s {
		if unicode.IsSpace(c) {
			continue
		}
		if _, ok := hexValue(c); !ok {
			return false
		}
		digits++
	}
	return digits%2 == 0
}

func hexValue(c rune) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return byte(c - '0'), true
	case 'a' <= c && c <= 'f':
		return byte(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return byte(c-'A') + 10, true
	}
	return 0, false
}
