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
Parser for DVB teletext descriptors.

References: ETSI EN 300 468, 6.2.43 teletext_descriptor and 6.2.47 VBI_teletext_descriptor.
*/

import (
	"errors"
	"fmt"
)

// Descriptor tags carrying teletext entries.
const (
	DescriptorTagVBITeletext = 0x46
	DescriptorTagTeletext    = 0x56
)

// Teletext types.
const (
	TeletextTypeInitialPage        = 0x1
	TeletextTypeSubtitlePage       = 0x2
	TeletextTypeAdditionalInfoPage = 0x3
	TeletextTypeProgramSchedule    = 0x4
	TeletextTypeHearingImpaired    = 0x5
)

const teletextEntrySize = 5

// ErrShortDescriptor is returned when a descriptor is truncated.
var ErrShortDescriptor = errors.New("charset: insufficient descriptor data")

// TeletextEntry describes one page announced by a teletext descriptor.
type TeletextEntry struct {
	Language string // ISO 639-2 code
	Type     byte
	Magazine byte // 1 to 8
	Page     byte // page number, units and tens (BCD decoded)
}

// PageNumber returns the conventional three digit page number, e.g. 888.
func (e TeletextEntry) PageNumber() int {
	return int(e.Magazine)*100 + int(e.Page)
}

// Designation returns the national option designation code matching the
// entry language, usable as the fallback of Teletext.ClearPageOverride.
func (e TeletextEntry) Designation() (byte, bool) {
	return DesignationForLanguage(e.Language)
}

// ParseDescriptor parses a complete descriptor (tag, length and payload).
func ParseDescriptor(data []byte) ([]TeletextEntry, error) {
	if len(data) < 2 {
		return nil, ErrShortDescriptor
	}
	tag, size := data[0], int(data[1])
	if tag != DescriptorTagTeletext && tag != DescriptorTagVBITeletext {
		return nil, fmt.Errorf("charset: not a teletext descriptor, tag 0x%02X", tag)
	}
	if len(data)-2 < size {
		return nil, ErrShortDescriptor
	}
	return ParseTeletextDescriptor(data[2 : 2+size])
}

// ParseTeletextDescriptor parses the payload of a teletext descriptor.
func ParseTeletextDescriptor(payload []byte) ([]TeletextEntry, error) {
	if len(payload)%teletextEntrySize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShortDescriptor, len(payload), teletextEntrySize)
	}
	entries := make([]TeletextEntry, 0, len(payload)/teletextEntrySize)
	for i := 0; i+teletextEntrySize <= len(payload); i += teletextEntrySize {
		d := payload[i : i+teletextEntrySize]
		page, err := bcdByte(d[4])
		if err != nil {
			return nil, err
		}
		e := TeletextEntry{
			Language: string(d[0:3]),
			Type:     d[3] >> 3,
			Magazine: d[3] & 0x07,
			Page:     page,
		}
		if e.Magazine == 0 {
			e.Magazine = 8
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func bcdByte(b byte) (byte, error) {
	hi, lo := b>>4, b&0x0F
	if hi > 9 || lo > 9 {
		return 0, fmt.Errorf("charset: invalid BCD page number 0x%02X", b)
	}
	return hi*10 + lo, nil
}
