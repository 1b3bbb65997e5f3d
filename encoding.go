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
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrUnrepresentable is returned by the encoder of Teletext.Encoding for a
// rune missing from the active G0 set.
var ErrUnrepresentable = errors.New("charset: rune not representable in teletext")

// Encoding exposes t as an encoding.Encoding. Decoders and encoders read the
// state of t when they run, so signalling applied to t between two
// transforms is honoured.
func (t *Teletext) Encoding() encoding.Encoding {
	return teletextEncoding{t}
}

type teletextEncoding struct {
	t *Teletext
}

func (e teletextEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: teletextDecoder{t: e.t}}
}

func (e teletextEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: teletextEncoder{t: e.t}}
}

func (e teletextEncoding) String() string {
	return e.t.Name()
}

// teletextDecoder implements transform.Transformer by decoding to UTF-8.
type teletextDecoder struct {
	transform.NopResetter
	t *Teletext
}

func (d teletextDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [utf8.UTFMax]byte
	for i, c := range src {
		n := utf8.EncodeRune(buf[:], d.t.DecodeByte(c))
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], buf[:n])
		nSrc = i + 1
	}
	return nDst, nSrc, err
}

// teletextEncoder implements transform.Transformer by encoding from UTF-8.
type teletextEncoder struct {
	transform.NopResetter
	t *Teletext
}

func (e teletextEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 {
				// Invalid UTF-8 or an incomplete rune at the end of src.
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					err = transform.ErrShortSrc
				} else {
					err = encoding.ErrInvalidUTF8
				}
				break
			}
		}
		b, ok := e.t.encodeRune(r)
		if !ok {
			err = ErrUnrepresentable
			break
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, err
}
