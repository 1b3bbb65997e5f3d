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

/*
Teletext character decoder.

References: ETSI EN 300 706 (Enhanced Teletext).
*/

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Teletext decodes Teletext characters into Unicode. It follows the G0 set
// and national option sub-set signalled by one Teletext stream, so each
// stream needs its own Teletext. A Teletext is not safe for concurrent use.
type Teletext struct {
	log logrus.FieldLogger

	group   LanguageGroup
	x28     byte // page level designation (X/28), undefinedDesignation if unset
	m29     byte // magazine level designation (M/29), undefinedDesignation if unset
	current byte // designation currently applied to latin
	latin   [charCount]rune
}

var _ Charset = (*Teletext)(nil)

func init() {
	Register("TELETEXT", func() Charset { return NewTeletext() })
}

// TeletextOption configures a Teletext.
type TeletextOption func(*Teletext)

// WithLogger sets the logger receiving debug traces of character set changes.
func WithLogger(log logrus.FieldLogger) TeletextOption {
	return func(t *Teletext) { t.SetLogger(log) }
}

// SetLogger replaces the logger, e.g. on an instance obtained from New.
func (t *Teletext) SetLogger(log logrus.FieldLogger) {
	t.log = log
}

// NewTeletext returns a decoder for the Latin set with the English
// national option sub-set.
func NewTeletext(opts ...TeletextOption) *Teletext {
	t := &Teletext{
		log:     logrus.StandardLogger(),
		group:   Latin,
		x28:     undefinedDesignation,
		m29:     undefinedDesignation,
		current: 0,
		latin:   g0Base[Latin],
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Group returns the active primary set.
func (t *Teletext) Group() LanguageGroup { return t.group }

// Designation returns the national option designation code applied to the
// Latin set.
func (t *Teletext) Designation() byte { return t.current }

// DecodeByte converts one Teletext byte, parity bit included. Bytes failing
// the parity check decode as a space and control codes are returned as is.
func (t *Teletext) DecodeByte(chr byte) rune {
	if !ParityOK(chr) {
		// Unrecoverable parity error.
		return 0x20
	}
	code := chr & 0x7F
	if code < 0x20 {
		return rune(code)
	}
	return t.active()[code-0x20]
}

// DecodeSupplementary converts a character of the Latin G2 supplementary
// set. It reports false outside 0x20-0x7F and for cells without a Unicode
// equivalent. The active group is not taken into account.
func (t *Teletext) DecodeSupplementary(chr byte) (rune, bool) {
	return lookup(g2Sets[Latin][:], int(chr)-0x20)
}

// DecodeAccented composes letter with diacritical mark accent, an index in
// 0-14 (G2 column 4 minus 0x41). It reports false when the letter has no
// precomposed form with this mark. Any byte other than an ASCII letter, or
// an accent out of range, is decoded by DecodeByte as if no mark had been
// signalled.
func (t *Teletext) DecodeAccented(letter, accent byte) (rune, bool) {
	switch {
	case letter >= 'A' && letter <= 'Z' && accent < accentCount:
		return lookup(accents[accent][:], int(letter-'A'))
	case letter >= 'a' && letter <= 'z' && accent < accentCount:
		return lookup(accents[accent][:], 26+int(letter-'a'))
	}
	return t.DecodeByte(letter), true
}

// SelectGroup sets the default G0 set from the character set designation
// bits of a X/28/0, X/28/4, M/29/0 or M/29/4 triplet (EN 300 706, table 32).
func (t *Teletext) SelectGroup(triplet uint16) {
	group := Latin
	if triplet&0x3C00 == 0x1000 {
		switch triplet & 0x0380 {
		case 0x0000:
			group = CyrillicOption1
		case 0x0200:
			group = CyrillicOption2
		case 0x0280:
			group = CyrillicOption3
		}
	}
	if group != t.group {
		t.log.WithFields(logrus.Fields{"from": t.group, "to": group}).Debug("teletext: G0 set changed")
	}
	t.group = group
}

// SetPageOverride applies the national option of a X/28 packet. It takes
// precedence over the magazine level until ClearPageOverride.
func (t *Teletext) SetPageOverride(code byte) {
	if t.group == Latin {
		t.x28 = code
		t.remap(code)
	}
}

// SetMagazineOverride records the national option of a M/29 packet. It is
// applied at once unless a page level option is active.
func (t *Teletext) SetMagazineOverride(code byte) {
	if t.group == Latin {
		t.m29 = code
		if t.x28 == undefinedDesignation {
			t.remap(code)
		}
	}
}

// ClearPageOverride drops the page level option and restores the magazine
// level option, or fallback when there is none.
func (t *Teletext) ClearPageOverride(fallback byte) {
	if t.group == Latin {
		t.x28 = undefinedDesignation
		if t.m29 != undefinedDesignation {
			t.remap(t.m29)
		} else {
			t.remap(fallback)
		}
	}
}

// remap loads the national option sub-set designated by code into the
// working Latin set. Unknown designations leave the set unchanged.
func (t *Teletext) remap(code byte) {
	if code == t.current || int(code) >= len(designations) {
		return
	}
	subset := designations[code]
	if subset == noSubset {
		t.log.WithField("designation", code).Debug("teletext: undefined national option ignored")
		return
	}
	for n, pos := range nationalPositions {
		t.latin[pos] = nationalSubsets[subset].chars[n]
	}
	t.current = code
	t.log.WithFields(logrus.Fields{
		"designation": code,
		"subset":      nationalSubsets[subset].name,
	}).Debug("teletext: national option applied")
}

// active returns the G0 set used by DecodeByte.
func (t *Teletext) active() *[charCount]rune {
	if t.group == Latin || int(t.group) >= len(g0Base) {
		return &t.latin
	}
	return &g0Base[t.group]
}

// encodeRune returns the Teletext byte for r in the active set, parity
// included.
func (t *Teletext) encodeRune(r rune) (byte, bool) {
	if r >= 0 && r < 0x20 {
		return ParityByte(byte(r)), true
	}
	for i, c := range t.active() {
		if c == r {
			return ParityByte(byte(i + 0x20)), true
		}
	}
	return 0, false
}

func (t *Teletext) Name() string { return "TELETEXT" }

// Decode converts each byte with DecodeByte.
func (t *Teletext) Decode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(t.DecodeByte(b))
	}
	return sb.String()
}

// Encode writes one byte with odd parity per character of s, using the
// active G0 set. It stops before the first character missing from the set.
func (t *Teletext) Encode(dst []byte, s string) (nChars, nBytes int) {
	for _, r := range s {
		if nBytes >= len(dst) {
			break
		}
		b, ok := t.encodeRune(r)
		if !ok {
			break
		}
		dst[nBytes] = b
		nBytes++
		nChars++
	}
	return nChars, nBytes
}

func (t *Teletext) CanEncode(s string) bool {
	for _, r := range s {
		if _, ok := t.encodeRune(r); !ok {
			return false
		}
	}
	return true
}
