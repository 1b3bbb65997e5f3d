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
)

// Row 0 is the page header.
const (
	PageRows = 25
	PageCols = 40
)

// X/26 column address triplet modes (EN 300 706, 12.3.4, table 29).
const (
	x26ModeG2Char       = 0x0F
	x26ModeG0NoDiacrit  = 0x10
	x26ModeG0Diacritic0 = 0x11
	x26ModeG0Diacritic1 = 0x1F
)

type pageRow [PageCols]rune

// Page is the text content of one Teletext page, decoded through the
// Teletext of the stream the page belongs to.
type Page struct {
	charset *Teletext
	data    [PageRows]pageRow
}

// NewPage returns an empty page decoded with charset.
func NewPage(charset *Teletext) *Page {
	p := &Page{charset: charset}
	p.Clear()
	return p
}

// Clear blanks every cell.
func (p *Page) Clear() {
	for r := range p.data {
		p.clearRow(r)
	}
}

func (p *Page) clearRow(r int) {
	for c := range p.data[r] {
		p.data[r][c] = ' '
	}
}

func (p *Page) getChar(r, c int) *rune {
	if r < 0 || r >= PageRows || c < 0 || c >= PageCols {
		return nil
	}
	return &p.data[r][c]
}

// returns true if the page changed
func (p *Page) setChar(r, c int, char rune) bool {
	val := p.getChar(r, c)
	if val != nil && *val != char {
		*val = char
		return true
	}
	return false
}

// SetRow decodes the display bytes of a row packet, at most PageCols of them.
// Spacing attributes (codes below 0x20) occupy their cell as a space.
// Returns true if the page changed.
func (p *Page) SetRow(row int, raw []byte) bool {
	if row < 0 || row >= PageRows {
		return false
	}
	changed := false
	for c := 0; c < PageCols; c++ {
		char := rune(' ')
		if c < len(raw) {
			if ch := p.charset.DecodeByte(raw[c]); ch >= 0x20 {
				char = ch
			}
		}
		if p.setChar(row, c, char) {
			changed = true
		}
	}
	return changed
}

// ApplyEnhancement applies one X/26 column address triplet to the cell at
// row, col. data is the 7-bit data field of the triplet. Modes other than
// character placement are ignored. Returns true if the page changed.
func (p *Page) ApplyEnhancement(row, col int, mode, data byte) bool {
	switch {
	case mode == x26ModeG2Char:
		if data < 0x20 {
			return false
		}
		if char, ok := p.charset.DecodeSupplementary(data); ok {
			return p.setChar(row, col, char)
		}
		return false

	case mode == x26ModeG0NoDiacrit:
		// '@' is only reachable this way with some national options.
		if data == 0x40 {
			return p.setChar(row, col, '@')
		}
		return false

	case mode >= x26ModeG0Diacritic0 && mode <= x26ModeG0Diacritic1:
		if data < 0x20 {
			return false
		}
		if isLetter(data) {
			if char, ok := p.charset.DecodeAccented(data, mode-x26ModeG0Diacritic0); ok {
				return p.setChar(row, col, char)
			}
		}
		// Triplet data has no parity bit, add one for DecodeByte.
		return p.setChar(row, col, p.charset.DecodeByte(ParityByte(data)))
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Row returns one row without trailing spaces.
func (p *Page) Row(row int) string {
	if row < 0 || row >= PageRows {
		return ""
	}
	return strings.TrimRight(string(p.data[row][:]), " ")
}

// String returns the non-blank rows of the page, top first.
func (p *Page) String() string {
	var s []string
	for r := range p.data {
		if row := p.Row(r); row != "" {
			s = append(s, row)
		}
	}
	return strings.Join(s, "\n")
}
