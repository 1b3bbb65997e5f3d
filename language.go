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

	"golang.org/x/text/language"
)

// ISO 639-2/B codes, as found in DVB descriptors, and their 639-2/T form.
var bibliographic = map[string]string{
	"cze": "ces",
	"fre": "fra",
	"ger": "deu",
	"rum": "ron",
	"slo": "slk",
	"scc": "srp",
	"scr": "hrv",
}

// subsetLanguages maps ISO 639-1 codes to an index in nationalSubsets.
var subsetLanguages = map[string]byte{
	"en": 0,
	"fr": 1,
	"sv": 2, "fi": 2, "hu": 2,
	"cs": 3, "sk": 3,
	"de": 4,
	"pt": 5, "es": 5,
	"it": 6,
	"ro": 7,
	"pl": 8,
	"tr": 9,
	"sr": 10, "hr": 10, "sl": 10,
	"et": 11,
	"lv": 12, "lt": 12,
}

// DesignationForLanguage returns the first designation code selecting the
// national option sub-set of an ISO 639-1 or 639-2 language code. It reports
// false for languages without a Latin national option.
func DesignationForLanguage(code string) (byte, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if t, ok := bibliographic[code]; ok {
		code = t
	}
	tag, err := language.Parse(code)
	if err != nil {
		return 0, false
	}
	base, _ := tag.Base()
	subset, ok := subsetLanguages[base.String()]
	if !ok {
		return 0, false
	}
	for d, s := range designations {
		if s == subset {
			return byte(d), true
		}
	}
	return 0, false
}
