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
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func TestEncodingDecoder(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	enc := tt.Encoding()
	assert.Equal("TELETEXT", enc.(interface{ String() string }).String())

	out, err := enc.NewDecoder().Bytes(withParity("Price: #5"))
	assert.NoError(err)
	assert.Equal("Price: £5", string(out))

	// signalling applied after the encoding was created is honoured
	tt.SetMagazineOverride(4)
	out, err = enc.NewDecoder().Bytes(withParity("\x5B\x7E"))
	assert.NoError(err)
	assert.Equal("Äß", string(out))
}

func TestEncodingEncoder(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.SetPageOverride(1)

	out, err := tt.Encoding().NewEncoder().String("Été à Noël")
	assert.Error(err) // no capital E acute in the french sub-set
	assert.ErrorIs(err, ErrUnrepresentable)

	out, err = tt.Encoding().NewEncoder().String("été à Noël")
	assert.NoError(err)
	assert.Equal("été à Noël", tt.Decode([]byte(out)))

	_, err = tt.Encoding().NewEncoder().String("€")
	assert.ErrorIs(err, ErrUnrepresentable)

	_, err = tt.Encoding().NewEncoder().Bytes([]byte{'a', 0xFF})
	assert.ErrorIs(err, encoding.ErrInvalidUTF8)
}

func TestEncodingShortBuffers(t *testing.T) {
	assert := assert.New(t)
	tt := NewTeletext()
	tt.SetPageOverride(4)

	src := withParity("\x5B\x5C\x5D")
	dst := make([]byte, 3)
	nDst, nSrc, err := tt.Encoding().NewDecoder().Transform(dst, src, true)
	assert.ErrorIs(err, transform.ErrShortDst)
	assert.Equal(2, nDst)
	assert.Equal(1, nSrc)
	assert.Equal("Ä", string(dst[:nDst]))

	// incomplete rune at the end of a chunk
	nDst, nSrc, err = tt.Encoding().NewEncoder().Transform(make([]byte, 4), []byte("a\xC3"), false)
	assert.ErrorIs(err, transform.ErrShortSrc)
	assert.Equal(1, nDst)
	assert.Equal(1, nSrc)
}
