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
	"math/bits"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	assert "github.com/stretchr/testify/require"
)

// withParity adds the parity bit to every byte of s.
func withParity(s string) []byte {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = ParityByte(s[i])
	}
	return b
}

func TestParityTable(t *testing.T) {
	assert := assert.New(t)
	for b := 0; b < 256; b++ {
		assert.Equal(bits.OnesCount8(uint8(b))%2 == 1, ParityOK(byte(b)), "byte 0x%02X", b)
	}
	for b := 0; b < 128; b++ {
		p := ParityByte(byte(b))
		assert.True(ParityOK(p), "byte 0x%02X", b)
		assert.Equal(byte(b), p&0x7F)
	}
}

func TestDecodeByteParityError(t *testing.T) {
	assert := assert.New(t)
	german := NewTeletext()
	german.SetMagazineOverride(4)
	cyrillic := NewTeletext()
	cyrillic.SelectGroup(0x1200)

	for _, tt := range []*Teletext{NewTeletext(), german, cyrillic} {
		for b := 0; b < 256; b++ {
			if !ParityOK(byte(b)) {
				assert.Equal(rune(0x20), tt.DecodeByte(byte(b)), "byte 0x%02X", b)
			}
		}
	}
}

func TestDecodeByteControlCodes(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	for b := byte(0); b < 0x20; b++ {
		if ParityOK(b) {
			assert.Equal(rune(b), tt.DecodeByte(b))
		}
		assert.Equal(rune(b), tt.DecodeByte(ParityByte(b)))
	}
}

func TestDecodeByteLatin(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	assert.Equal(Latin, tt.Group())
	assert.Equal('A', tt.DecodeByte(ParityByte('A')))
	assert.Equal('z', tt.DecodeByte(ParityByte('z')))
	assert.Equal('@', tt.DecodeByte(0x40))
	assert.Equal('£', tt.DecodeByte(ParityByte(0x23)))
	assert.Equal('#', tt.DecodeByte(ParityByte(0x5F)))
	assert.Equal("Hello, World", tt.Decode(withParity("Hello, World")))
}

func TestSelectGroup(t *testing.T) {
	tests := []struct {
		triplet uint16
		group   LanguageGroup
	}{
		{0x0000, Latin},
		{0x1000, CyrillicOption1},
		{0x1200, CyrillicOption2},
		{0x1280, CyrillicOption3},
		{0x1080, Latin},
		{0x1380, Latin},
		{0x0C00, Latin},
		{0x3C00, Latin},
		{0x1007, CyrillicOption1},
	}
	for _, tc := range tests {
		tt := NewTeletext()
		tt.SelectGroup(tc.triplet)
		assert.Equal(t, tc.group, tt.Group(), "triplet 0x%04X", tc.triplet)
	}
}

func TestDecodeByteCyrillic(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.SelectGroup(0x1200)
	assert.Equal(rune(0x0410), tt.DecodeByte(ParityByte('A')))
	assert.Equal(rune(0x042E), tt.DecodeByte(0x40))
	assert.Equal('7', tt.DecodeByte(ParityByte('7')))

	// national options do not apply outside the latin set
	tt.SetMagazineOverride(4)
	tt.SetPageOverride(1)
	assert.Equal(byte(0), tt.Designation())
	assert.Equal(rune(0x042E), tt.DecodeByte(0x40))

	tt.SelectGroup(0x0000)
	assert.Equal('@', tt.DecodeByte(0x40))
}

func TestDecodeSupplementary(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()

	r, ok := tt.DecodeSupplementary(0x20)
	assert.True(ok)
	assert.Equal(' ', r)
	r, ok = tt.DecodeSupplementary(0x21)
	assert.True(ok)
	assert.Equal('¡', r)
	r, ok = tt.DecodeSupplementary(0x66)
	assert.True(ok)
	assert.Equal(rune(0x0132), r)
	r, ok = tt.DecodeSupplementary(0x7F)
	assert.True(ok)
	assert.Equal(' ', r)

	for _, b := range []byte{0x00, 0x1F, 0x49, 0x59, 0x65, 0x80, 0xFF} {
		_, ok = tt.DecodeSupplementary(b)
		assert.False(ok, "byte 0x%02X", b)
	}

	// the latin G2 set is used whatever the active group
	tt.SelectGroup(0x1000)
	r, ok = tt.DecodeSupplementary(0x79)
	assert.True(ok)
	assert.Equal(rune(0x00F8), r)
}

func TestDecodeAccented(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()

	r, ok := tt.DecodeAccented('A', 1)
	assert.True(ok)
	assert.Equal(rune(0x00C1), r)
	r, ok = tt.DecodeAccented('a', 1)
	assert.True(ok)
	assert.Equal(rune(0x00E1), r)
	r, ok = tt.DecodeAccented('c', 10)
	assert.True(ok)
	assert.Equal('ç', r)
	r, ok = tt.DecodeAccented('z', 14)
	assert.True(ok)
	assert.Equal('ž', r)
	r, ok = tt.DecodeAccented('O', 12)
	assert.True(ok)
	assert.Equal('Ő', r)

	// no precomposed form
	_, ok = tt.DecodeAccented('B', 0)
	assert.False(ok)
	_, ok = tt.DecodeAccented('A', 8)
	assert.False(ok)
	_, ok = tt.DecodeAccented('e', 11)
	assert.False(ok)

	// not a letter, or no such accent
	r, ok = tt.DecodeAccented('9', 1)
	assert.True(ok)
	assert.Equal(tt.DecodeByte('9'), r)
	r, ok = tt.DecodeAccented(ParityByte('%'), 3)
	assert.True(ok)
	assert.Equal('%', r)
	r, ok = tt.DecodeAccented('A', accentCount)
	assert.True(ok)
	assert.Equal(tt.DecodeByte('A'), r)
}

func TestRemapIdempotent(t *testing.T) {
	assert := assert.New(t)
	once, twice := NewTeletext(), NewTeletext()
	once.remap(4)
	twice.remap(4)
	twice.remap(4)
	assert.Equal(once.latin, twice.latin)
	assert.Equal(byte(4), twice.Designation())
}

func TestRemapUndefined(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.remap(1)
	before := tt.latin

	tt.remap(13) // no sub-set
	assert.Equal(before, tt.latin)
	assert.Equal(byte(1), tt.Designation())

	tt.remap(designationCount)
	tt.remap(0xFF)
	assert.Equal(before, tt.latin)
	assert.Equal(byte(1), tt.Designation())
}

func TestRemapOnlyTouchesNationalCells(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.remap(8)
	national := map[int]bool{}
	for _, pos := range nationalPositions {
		national[int(pos)] = true
	}
	for i := range tt.latin {
		if !national[i] {
			assert.Equal(g0Base[Latin][i], tt.latin[i], "cell 0x%02X", i)
		}
	}
	assert.Equal(rune(0x0105), tt.latin[0x20])
}

func TestRemapBackToEnglish(t *testing.T) {
	tt := NewTeletext()
	tt.SetPageOverride(10)
	tt.SetPageOverride(16)
	assert.Equal(t, g0Base[Latin], tt.latin)
}

func TestPageOverridePrecedence(t *testing.T) {
	assert := assert.New(t)
	expected := NewTeletext()
	expected.remap(4)

	tt := NewTeletext()
	tt.SetMagazineOverride(4)
	tt.SetPageOverride(1)
	assert.Equal(byte(1), tt.Designation())
	assert.Equal('à', tt.DecodeByte(0x40))

	// a magazine update does not clobber the page level option
	tt.SetMagazineOverride(4)
	assert.Equal(byte(1), tt.Designation())

	tt.ClearPageOverride(2)
	assert.Equal(byte(4), tt.Designation())
	assert.Equal(expected.latin, tt.latin)
}

func TestClearPageOverrideFallback(t *testing.T) {
	assert := assert.New(t)
	expected := NewTeletext()
	expected.remap(8)

	tt := NewTeletext()
	tt.SetPageOverride(1)
	tt.ClearPageOverride(8)
	assert.Equal(byte(8), tt.Designation())
	assert.Equal(expected.latin, tt.latin)
}

func TestGermanMagazineOverride(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.SetMagazineOverride(4)
	assert.Equal(rune(0x00A7), tt.DecodeByte(0x40))
	assert.Equal("Straße", tt.Decode(withParity("Stra\x7Ee")))
}

func TestTeletextEncode(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.SetMagazineOverride(4)

	buf := make([]byte, 16)
	nChars, nBytes := tt.Encode(buf, "Grüße")
	assert.Equal(5, nChars)
	assert.Equal(5, nBytes)
	assert.Equal(withParity("Gr\x7D\x7Ee"), buf[:nBytes])
	assert.Equal("Grüße", tt.Decode(buf[:nBytes]))
	assert.True(tt.CanEncode("Grüße"))

	// buffer exhausted
	nChars, nBytes = tt.Encode(buf[:3], "Grüße")
	assert.Equal(3, nChars)
	assert.Equal(3, nBytes)

	// english has no ü
	en := NewTeletext()
	nChars, nBytes = en.Encode(buf, "Grüße")
	assert.Equal(2, nChars)
	assert.Equal(2, nBytes)
	assert.False(en.CanEncode("Grüße"))
	assert.True(en.CanEncode(""))
	assert.True(en.CanEncode("\x0dHello #1"))

	nChars, nBytes = en.Encode(nil, "Hello")
	assert.Equal(0, nChars)
	assert.Equal(0, nBytes)
	assert.Equal("", en.Decode(nil))
}

func TestTeletextCyrillicEncode(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.SelectGroup(0x1200)
	buf := make([]byte, 8)
	nChars, nBytes := tt.Encode(buf, "Привет")
	assert.Equal(6, nChars)
	assert.Equal(6, nBytes)
	assert.Equal("Привет", tt.Decode(buf[:nBytes]))
	assert.False(tt.CanEncode("Hello"))
}

func TestTeletextLogger(t *testing.T) {
	assert := assert.New(t)
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	tt := NewTeletext(WithLogger(log))
	tt.SetPageOverride(4)
	tt.SetPageOverride(13)
	tt.SelectGroup(0x1000)

	entries := hook.AllEntries()
	assert.Len(entries, 3)
	assert.Equal("teletext: national option applied", entries[0].Message)
	assert.Equal("German", entries[0].Data["subset"])
	assert.Equal("teletext: undefined national option ignored", entries[1].Message)
	assert.Equal("teletext: G0 set changed", entries[2].Message)
}
