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
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestDesignationForLanguage(t *testing.T) {
	tests := []struct {
		code        string
		designation byte
		ok          bool
	}{
		{"en", 0, true},
		{"fr-FR", 1, true},
		{"fre", 1, true},
		{"de", 4, true},
		{"GER", 4, true},
		{"deu", 4, true},
		{"cze", 3, true},
		{"es", 5, true},
		{"pt-BR", 5, true},
		{"ro", 7, true},
		{"pl", 8, true},
		{"tr", 19, true},
		{"hr", 29, true},
		{"et", 34, true},
		{"lt", 38, true},
		{"ru", 0, false},
		{"el", 0, false},
		{"", 0, false},
		{"x!", 0, false},
	}
	for _, tc := range tests {
		d, ok := DesignationForLanguage(tc.code)
		assert.Equal(t, tc.ok, ok, "language %q", tc.code)
		if tc.ok {
			assert.Equal(t, tc.designation, d, "language %q", tc.code)
		}
	}
}

func TestDesignationSelectsLanguageSubset(t *testing.T) {
	assert := assert.New(t)
	d, ok := DesignationForLanguage("pl")
	assert.True(ok)

	tt := NewTeletext()
	tt.SetPageOverride(1)
	tt.ClearPageOverride(d)
	assert.Equal(rune(0x0105), tt.DecodeByte(0x40))
}
