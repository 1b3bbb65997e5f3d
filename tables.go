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
Teletext character tables.

References: ETSI EN 300 706 (Enhanced Teletext), sections 15 and 15.6.
*/

// LanguageGroup selects the primary (G0) character set.
type LanguageGroup int

const (
	Latin LanguageGroup = iota
	CyrillicOption1
	CyrillicOption2
	CyrillicOption3
	Greek
	// Arabic and Hebrew are reserved; no triplet selects them.
	Arabic
	Hebrew
)

func (g LanguageGroup) String() string {
	switch g {
	case Latin:
		return "latin"
	case CyrillicOption1:
		return "cyrillic-1"
	case CyrillicOption2:
		return "cyrillic-2"
	case CyrillicOption3:
		return "cyrillic-3"
	case Greek:
		return "greek"
	case Arabic:
		return "arabic"
	case Hebrew:
		return "hebrew"
	}
	return "unknown"
}

const (
	charCount        = 96 // characters 0x20 to 0x7F
	nationalCount    = 13 // cells replaced by a national option sub-set
	designationCount = 56
	accentCount      = 15 // diacritical marks 0x41 to 0x4F
	letterCount      = 52 // A-Z then a-z

	// absent marks a table cell without a Unicode equivalent.
	absent rune = -1

	noSubset byte = 0xFF
	// undefinedDesignation is the "unset" value of the override fields.
	undefinedDesignation byte = 0xFF
)

type nationalSubset struct {
	name  string
	chars [nationalCount]rune
}

var unusedAccent = func() [letterCount]rune {
	var row [letterCount]rune
	for i := range row {
		row[i] = absent
	}
	return row
}()

// g0Base holds the primary sets of the implemented groups, indexed by
// LanguageGroup. Arabic and Hebrew have no table.
var g0Base = [...][charCount]rune{
	{
		// Latin
		0x0020, 0x0021, 0x0022, 0x00A3, 0x0024, 0x0025, 0x0026, 0x0027, 0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
		0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, 0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
		0x0040, 0x0041, 0x0042, 0x0043, 0x0044, 0x0045, 0x0046, 0x0047, 0x0048, 0x0049, 0x004A, 0x004B, 0x004C, 0x004D, 0x004E, 0x004F,
		0x0050, 0x0051, 0x0052, 0x0053, 0x0054, 0x0055, 0x0056, 0x0057, 0x0058, 0x0059, 0x005A, 0x00AB, 0x00BD, 0x00BB, 0x005E, 0x0023,
		0x002D, 0x0061, 0x0062, 0x0063, 0x0064, 0x0065, 0x0066, 0x0067, 0x0068, 0x0069, 0x006A, 0x006B, 0x006C, 0x006D, 0x006E, 0x006F,
		0x0070, 0x0071, 0x0072, 0x0073, 0x0074, 0x0075, 0x0076, 0x0077, 0x0078, 0x0079, 0x007A, 0x00BC, 0x00A6, 0x00BE, 0x00F7, 0x007F,
	},
	{
		// Cyrillic option 1, Serbian/Croatian
		0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x044B, 0x0027, 0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
		0x0030, 0x0031, 0x3200, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, 0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
		0x0427, 0x0410, 0x0411, 0x0426, 0x0414, 0x0415, 0x0424, 0x0413, 0x0425, 0x0418, 0x0408, 0x041A, 0x041B, 0x041C, 0x041D, 0x041E,
		0x041F, 0x040C, 0x0420, 0x0421, 0x0422, 0x0423, 0x0412, 0x0403, 0x0409, 0x040A, 0x0417, 0x040B, 0x0416, 0x0402, 0x0428, 0x040F,
		0x0447, 0x0430, 0x0431, 0x0446, 0x0434, 0x0435, 0x0444, 0x0433, 0x0445, 0x0438, 0x0428, 0x043A, 0x043B, 0x043C, 0x043D, 0x043E,
		0x043F, 0x042C, 0x0440, 0x0441, 0x0442, 0x0443, 0x0432, 0x0423, 0x0429, 0x042A, 0x0437, 0x042B, 0x0436, 0x0422, 0x0448, 0x042F,
	},
	{
		// Cyrillic option 2, Russian/Bulgarian
		0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x044B, 0x0027, 0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
		0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, 0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
		0x042E, 0x0410, 0x0411, 0x0426, 0x0414, 0x0415, 0x0424, 0x0413, 0x0425, 0x0418, 0x0419, 0x041A, 0x041B, 0x041C, 0x041D, 0x041E,
		0x041F, 0x042F, 0x0420, 0x0421, 0x0422, 0x0423, 0x0416, 0x0412, 0x042C, 0x042A, 0x0417, 0x0428, 0x042D, 0x0429, 0x0427, 0x042B,
		0x044E, 0x0430, 0x0431, 0x0446, 0x0434, 0x0435, 0x0444, 0x0433, 0x0445, 0x0438, 0x0439, 0x043A, 0x043B, 0x043C, 0x043D, 0x043E,
		0x043F, 0x044F, 0x0440, 0x0441, 0x0442, 0x0443, 0x0436, 0x0432, 0x044C, 0x044A, 0x0437, 0x0448, 0x044D, 0x0449, 0x0447, 0x044B,
	},
	{
		// Cyrillic option 3, Ukrainian
		0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x00EF, 0x0027, 0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
		0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, 0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
		0x042E, 0x0410, 0x0411, 0x0426, 0x0414, 0x0415, 0x0424, 0x0413, 0x0425, 0x0418, 0x0419, 0x041A, 0x041B, 0x041C, 0x041D, 0x041E,
		0x041F, 0x042F, 0x0420, 0x0421, 0x0422, 0x0423, 0x0416, 0x0412, 0x042C, 0x0049, 0x0417, 0x0428, 0x042D, 0x0429, 0x0427, 0x00CF,
		0x044E, 0x0430, 0x0431, 0x0446, 0x0434, 0x0435, 0x0444, 0x0433, 0x0445, 0x0438, 0x0439, 0x043A, 0x043B, 0x043C, 0x043D, 0x043E,
		0x043F, 0x044F, 0x0440, 0x0441, 0x0442, 0x0443, 0x0436, 0x0432, 0x044C, 0x0069, 0x0437, 0x0448, 0x044D, 0x0449, 0x0447, 0x00FF,
	},
	{
		// Greek
		0x0020, 0x0021, 0x0022, 0x0023, 0x0024, 0x0025, 0x0026, 0x0027, 0x0028, 0x0029, 0x002A, 0x002B, 0x002C, 0x002D, 0x002E, 0x002F,
		0x0030, 0x0031, 0x0032, 0x0033, 0x0034, 0x0035, 0x0036, 0x0037, 0x0038, 0x0039, 0x003A, 0x003B, 0x003C, 0x003D, 0x003E, 0x003F,
		0x0390, 0x0391, 0x0392, 0x0393, 0x0394, 0x0395, 0x0396, 0x0397, 0x0398, 0x0399, 0x039A, 0x039B, 0x039C, 0x039D, 0x039E, 0x039F,
		0x03A0, 0x03A1, 0x03A2, 0x03A3, 0x03A4, 0x03A5, 0x03A6, 0x03A7, 0x03A8, 0x03A9, 0x03AA, 0x03AB, 0x03AC, 0x03AD, 0x03AE, 0x03AF,
		0x03B0, 0x03B1, 0x03B2, 0x03B3, 0x03B4, 0x03B5, 0x03B6, 0x03B7, 0x03B8, 0x03B9, 0x03BA, 0x03BB, 0x03BC, 0x03BD, 0x03BE, 0x03BF,
		0x03C0, 0x03C1, 0x03C2, 0x03C3, 0x03C4, 0x03C5, 0x03C6, 0x03C7, 0x03C8, 0x03C9, 0x03CA, 0x03CB, 0x03CC, 0x03CD, 0x03CE, 0x03CF,
	},
}

// Cells of the Latin G0 set overwritten by a national option sub-set.
var nationalPositions = [nationalCount]byte{
	0x03, 0x04, 0x20, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F, 0x40, 0x5B, 0x5C, 0x5D, 0x5E,
}

// ETSI EN 300 706, 15.2, table 32.
var nationalSubsets = [...]nationalSubset{
	{"English", [nationalCount]rune{0x00A3, 0x0024, 0x0040, 0x00AB, 0x00BD, 0x00BB, 0x005E, 0x0023, 0x002D, 0x00BC, 0x00A6, 0x00BE, 0x00F7}},
	{"French", [nationalCount]rune{0x00E9, 0x00EF, 0x00E0, 0x00EB, 0x00EA, 0x00F9, 0x00EE, 0x0023, 0x00E8, 0x00E2, 0x00F4, 0x00FB, 0x00E7}},
	{"Swedish, Finnish, Hungarian", [nationalCount]rune{0x0023, 0x00A4, 0x00C9, 0x00C4, 0x00D6, 0x00C5, 0x00DC, 0x005F, 0x00E9, 0x00E4, 0x00F6, 0x00E5, 0x00FC}},
	{"Czech, Slovak", [nationalCount]rune{0x0023, 0x016F, 0x010D, 0x0165, 0x017E, 0x00FD, 0x00ED, 0x0159, 0x00E9, 0x00E1, 0x011B, 0x00FA, 0x0161}},
	{"German", [nationalCount]rune{0x0023, 0x0024, 0x00A7, 0x00C4, 0x00D6, 0x00DC, 0x005E, 0x005F, 0x00B0, 0x00E4, 0x00F6, 0x00FC, 0x00DF}},
	{"Portuguese, Spanish", [nationalCount]rune{0x00E7, 0x0024, 0x00A1, 0x00E1, 0x00E9, 0x00ED, 0x00F3, 0x00FA, 0x00BF, 0x00FC, 0x00F1, 0x00E8, 0x00E0}},
	{"Italian", [nationalCount]rune{0x00A3, 0x0024, 0x00E9, 0x00B0, 0x00E7, 0x00BB, 0x005E, 0x0023, 0x00F9, 0x00E0, 0x00F2, 0x00E8, 0x00EC}},
	{"Romanian", [nationalCount]rune{0x0023, 0x00A4, 0x0162, 0x00C2, 0x015E, 0x0102, 0x00CE, 0x0131, 0x0163, 0x00E2, 0x015F, 0x0103, 0x00EE}},
	{"Polish", [nationalCount]rune{0x0023, 0x0144, 0x0105, 0x017B, 0x015A, 0x0141, 0x0107, 0x00F3, 0x0119, 0x017C, 0x015B, 0x0142, 0x017A}},
	{"Turkish", [nationalCount]rune{0x0054, 0x011F, 0x0130, 0x015E, 0x00D6, 0x00C7, 0x00DC, 0x011E, 0x0131, 0x015F, 0x00F6, 0x00E7, 0x00FC}},
	{"Serbian, Croatian, Slovenian", [nationalCount]rune{0x0023, 0x00CB, 0x010C, 0x0106, 0x017D, 0x0110, 0x0160, 0x00EB, 0x010D, 0x0107, 0x017E, 0x0111, 0x0161}},
	{"Estonian", [nationalCount]rune{0x0023, 0x00F5, 0x0160, 0x00C4, 0x00D6, 0x017E, 0x00DC, 0x00D5, 0x0161, 0x00E4, 0x00F6, 0x017E, 0x00FC}},
	{"Lettish, Lithuanian", [nationalCount]rune{0x0023, 0x0024, 0x0160, 0x0117, 0x0119, 0x017D, 0x010D, 0x016B, 0x0161, 0x0105, 0x0173, 0x017E, 0x012F}},
}

// designations maps a designation code to an index in nationalSubsets.
var designations = [designationCount]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x01, 0x02, 0x03, 0x04, noSubset, 0x06, noSubset,
	0x00, 0x01, 0x02, 0x09, 0x04, 0x05, 0x06, noSubset, noSubset, noSubset, noSubset, noSubset, noSubset, 0x0A, noSubset, 0x07,
	noSubset, noSubset, 0x0B, 0x03, 0x04, noSubset, 0x0C, noSubset, noSubset, noSubset, noSubset, noSubset, noSubset, noSubset, noSubset, noSubset,
	noSubset, noSubset, noSubset, 0x09, noSubset, noSubset, noSubset, noSubset,
}

// g2Sets holds the supplementary sets. Only the Latin set is reachable
// from DecodeSupplementary.
var g2Sets = [...][charCount]rune{
	{
		// Latin G2 Supplementary Set
		0x0020, 0x00A1, 0x00A2, 0x00A3, 0x0024, 0x00A5, 0x0023, 0x00A7, 0x00A4, 0x2018, 0x201C, 0x00AB, 0x2190, 0x2191, 0x2192, 0x2193,
		0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00D7, 0x00B5, 0x00B6, 0x00B7, 0x00F7, 0x2019, 0x201D, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF,
		0x0020, 0x0300, 0x0301, 0x0302, 0x0303, 0x0304, 0x0306, 0x0307, 0x0308, absent, 0x030A, 0x0327, 0x005F, 0x030B, 0x0328, 0x030C,
		0x2015, 0x00B9, 0x00AE, 0x00A9, 0x2122, 0x266A, 0x20AC, 0x2030, 0x03B1, absent, absent, absent, 0x215B, 0x215C, 0x215D, 0x215E,
		0x03A9, 0x00C6, 0x0110, 0x00AA, 0x0126, absent, 0x0132, 0x013F, 0x0141, 0x00D8, 0x0152, 0x00BA, 0x00DE, 0x0166, 0x014A, 0x0149,
		0x0138, 0x00E6, 0x0111, 0x00F0, 0x0127, 0x0131, 0x0133, 0x0140, 0x0142, 0x00F8, 0x0153, 0x00DF, 0x00FE, 0x0167, 0x014B, 0x0020,
	},
	{
		// Cyrillic G2 Supplementary Set
		0x00A0, 0x00A1, 0x00A2, 0x00A3, 0x0020, 0x00A5, 0x0023, 0x00A7, 0x0020, 0x2018, 0x201C, 0x00AB, 0x2190, 0x2191, 0x2192, 0x2193,
		0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00D7, 0x00B5, 0x00B6, 0x00B7, 0x00F7, 0x2019, 0x201D, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x00BF,
		0x0020, 0x02CB, 0x02CA, 0x02C6, 0x02DC, 0x02C9, 0x02D8, 0x02D9, 0x00A8, 0x002E, 0x02DA, 0x02CF, 0x02CD, 0x02DD, 0x02DB, 0x02C7,
		0x2014, 0x00B9, 0x00AE, 0x00A9, 0x2122, 0x266A, 0x20A0, 0x2030, 0x0251, 0x0141, 0x0142, 0x00DF, 0x215B, 0x215C, 0x215D, 0x215E,
		0x0044, 0x0045, 0x0046, 0x0047, 0x0049, 0x004A, 0x004B, 0x004C, 0x004E, 0x0051, 0x0052, 0x0053, 0x0055, 0x0056, 0x0057, 0x005A,
		0x0064, 0x0065, 0x0066, 0x0067, 0x0069, 0x006A, 0x006B, 0x006C, 0x006E, 0x0071, 0x0072, 0x0073, 0x0075, 0x0076, 0x0077, 0x007A,
	},
	{
		// Greek G2 Supplementary Set
		0x00A0, 0x0061, 0x0062, 0x00A3, 0x0065, 0x0068, 0x0069, 0x00A7, 0x003A, 0x2018, 0x201C, 0x006B, 0x2190, 0x2191, 0x2192, 0x2193,
		0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x0078, 0x006D, 0x006E, 0x0070, 0x00F7, 0x2019, 0x201D, 0x0074, 0x00BC, 0x00BD, 0x00BE, 0x0078,
		0x0020, 0x02CB, 0x02CA, 0x02C6, 0x02DC, 0x02C9, 0x02D8, 0x02D9, 0x00A8, 0x002E, 0x02DA, 0x02CF, 0x02CD, 0x02DD, 0x02DB, 0x02C7,
		0x003F, 0x00B9, 0x00AE, 0x00A9, 0x2122, 0x266A, 0x20A0, 0x2030, 0x0251, 0x038A, 0x038E, 0x038F, 0x215B, 0x215C, 0x215D, 0x215E,
		0x0043, 0x0044, 0x0046, 0x0047, 0x004A, 0x004C, 0x0051, 0x0052, 0x0053, 0x0055, 0x0056, 0x0057, 0x0059, 0x005A, 0x0386, 0x0389,
		0x0063, 0x0064, 0x0066, 0x0067, 0x006A, 0x006C, 0x0071, 0x0072, 0x0073, 0x0075, 0x0076, 0x0077, 0x0079, 0x007A, 0x0388, 0x25A0,
	},
}

// accents[mark][letter] composes A-Z then a-z with the diacritical marks of
// G2 column 4, 0x41 to 0x4F.
var accents = [accentCount][letterCount]rune{
	{
		// grave
		0x00C0, absent, absent, absent, 0x00C8, absent, absent, absent, 0x00CC, absent, absent, absent, absent, absent, 0x00D2, absent,
		absent, absent, absent, absent, 0x00D9, absent, absent, absent, absent, absent, 0x00E0, absent, absent, absent, 0x00E8, absent,
		absent, absent, 0x00EC, absent, absent, absent, absent, absent, 0x00F2, absent, absent, absent, absent, absent, 0x00F9, absent,
		absent, absent, absent, absent,
	},
	{
		// acute
		0x00C1, absent, 0x0106, absent, 0x00C9, absent, absent, absent, 0x00CD, absent, absent, 0x0139, absent, 0x0143, 0x00D3, absent,
		absent, 0x0154, 0x015A, absent, 0x00DA, absent, absent, absent, 0x00DD, 0x0179, 0x00E1, absent, 0x0107, absent, 0x00E9, absent,
		0x0123, absent, 0x00ED, absent, absent, 0x013A, absent, 0x0144, 0x00F3, absent, absent, 0x0155, 0x015B, absent, 0x00FA, absent,
		absent, absent, 0x00FD, 0x017A,
	},
	{
		// circumflex
		0x00C2, absent, 0x0108, absent, 0x00CA, absent, 0x011C, 0x0124, 0x00CE, 0x0134, absent, absent, absent, absent, 0x00D4, absent,
		absent, absent, 0x015C, absent, 0x00DB, absent, 0x0174, absent, 0x0176, absent, 0x00E2, absent, 0x0109, absent, 0x00EA, absent,
		0x011D, 0x0125, 0x00EE, 0x0135, absent, absent, absent, absent, 0x00F4, absent, absent, absent, 0x015D, absent, 0x00FB, absent,
		0x0175, absent, 0x0177, absent,
	},
	{
		// tilde
		0x00C3, absent, absent, absent, absent, absent, absent, absent, 0x0128, absent, absent, absent, absent, 0x00D1, 0x00D5, absent,
		absent, absent, absent, absent, 0x0168, absent, absent, absent, absent, absent, 0x00E3, absent, absent, absent, absent, absent,
		absent, absent, 0x0129, absent, absent, absent, absent, 0x00F1, 0x00F5, absent, absent, absent, absent, absent, 0x0169, absent,
		absent, absent, absent, absent,
	},
	{
		// macron
		0x0100, absent, absent, absent, 0x0112, absent, absent, absent, 0x012A, absent, absent, absent, absent, absent, 0x014C, absent,
		absent, absent, absent, absent, 0x016A, absent, absent, absent, absent, absent, 0x0101, absent, absent, absent, 0x0113, absent,
		absent, absent, 0x012B, absent, absent, absent, absent, absent, 0x014D, absent, absent, absent, absent, absent, 0x016B, absent,
		absent, absent, absent, absent,
	},
	{
		// breve
		0x0102, absent, absent, absent, absent, absent, 0x011E, absent, absent, absent, absent, absent, absent, absent, absent, absent,
		absent, absent, absent, absent, 0x016C, absent, absent, absent, absent, absent, 0x0103, absent, absent, absent, absent, absent,
		0x011F, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, 0x016D, absent,
		absent, absent, absent, absent,
	},
	{
		// dot
		absent, absent, 0x010A, absent, 0x0116, absent, 0x0120, absent, 0x0130, absent, absent, absent, absent, absent, absent, absent,
		absent, absent, absent, absent, absent, absent, absent, absent, absent, 0x017B, absent, absent, 0x010B, absent, 0x0117, absent,
		0x0121, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent,
		absent, absent, absent, 0x017C,
	},
	{
		// umlaut
		0x00C4, absent, absent, absent, 0x00CB, absent, absent, absent, 0x00CF, absent, absent, absent, absent, absent, 0x00D6, absent,
		absent, absent, absent, absent, 0x00DC, absent, absent, absent, 0x0178, absent, 0x00E4, absent, absent, absent, 0x00EB, absent,
		absent, absent, 0x00EF, absent, absent, absent, absent, absent, 0x00F6, absent, absent, absent, absent, absent, 0x00FC, absent,
		absent, absent, 0x00FF, absent,
	},
	// unused
	unusedAccent,
	{
		// ring
		0x00C5, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent,
		absent, absent, absent, absent, 0x016E, absent, absent, absent, absent, absent, 0x00E5, absent, absent, absent, absent, absent,
		absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, 0x016F, absent,
		absent, absent, absent, absent,
	},
	{
		// cedilla
		absent, absent, 0x00C7, absent, absent, absent, 0x0122, absent, absent, absent, 0x0136, 0x013B, absent, 0x0145, absent, absent,
		absent, 0x0156, 0x015E, 0x0162, absent, absent, absent, absent, absent, absent, absent, absent, 0x00E7, absent, absent, absent,
		absent, absent, absent, absent, 0x0137, 0x013C, absent, 0x0146, absent, absent, absent, 0x0157, 0x015F, 0x0163, absent, absent,
		absent, absent, absent, absent,
	},
	// unused
	unusedAccent,
	{
		// double acute
		absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, 0x0150, absent,
		absent, absent, absent, absent, 0x0170, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent,
		absent, absent, absent, absent, absent, absent, absent, absent, 0x0151, absent, absent, absent, absent, absent, 0x0171, absent,
		absent, absent, absent, absent,
	},
	{
		// ogonek
		0x0104, absent, absent, absent, 0x0118, absent, absent, absent, 0x012E, absent, absent, absent, absent, absent, absent, absent,
		absent, absent, absent, absent, 0x0172, absent, absent, absent, absent, absent, 0x0105, absent, absent, absent, 0x0119, absent,
		absent, absent, 0x012F, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, absent, 0x0173, absent,
		absent, absent, absent, absent,
	},
	{
		// caron
		absent, absent, 0x010C, 0x010E, 0x011A, absent, absent, absent, absent, absent, absent, 0x013D, absent, 0x0147, absent, absent,
		absent, 0x0158, 0x0160, 0x0164, absent, absent, absent, absent, absent, 0x017D, absent, absent, 0x010D, 0x010F, 0x011B, absent,
		absent, absent, absent, absent, absent, 0x013E, absent, 0x0148, absent, absent, absent, 0x0159, 0x0161, 0x0165, absent, absent,
		absent, absent, absent, 0x017E,
	},
}

// lookup returns table[i] unless i is out of range or the cell is absent.
func lookup(table []rune, i int) (rune, bool) {
	if i < 0 || i >= len(table) || table[i] == absent {
		return 0, false
	}
	return table[i], true
}
