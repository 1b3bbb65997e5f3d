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
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Charset converts between an encoded byte representation and text.
//
// No method fails on malformed input. Undecodable bytes become a fallback
// character and encoding stops at the first character that cannot be
// represented.
type Charset interface {
	// Name returns the canonical name of the charset.
	Name() string

	// Decode returns the text encoded in data. A nil or empty slice
	// decodes to the empty string.
	Decode(data []byte) string

	// Encode writes the encoding of s into dst. It never writes past
	// len(dst). nChars is the number of characters of s consumed and
	// nBytes the number of bytes written.
	Encode(dst []byte, s string) (nChars, nBytes int)

	// CanEncode reports whether all of s can be encoded without loss.
	CanEncode(s string) bool
}

// ErrUnknownCharset is returned by New for an unregistered name.
var ErrUnknownCharset = errors.New("charset: unknown charset")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registration)
)

type registration struct {
	name    string
	factory func() Charset
}

// simplifyName lowercases name and drops everything but letters and digits.
func simplifyName(name string) string {
	var sb strings.Builder
	for _, c := range name {
		switch {
		case unicode.IsDigit(c):
			sb.WriteRune(c)
		case unicode.IsLetter(c):
			sb.WriteRune(unicode.ToLower(c))
		}
	}
	return sb.String()
}

// Register makes a charset available to New. The factory is called once per
// New so stateful charsets are never shared. Registering a name twice panics.
func Register(name string, factory func() Charset) {
	key := simplifyName(name)
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[key]; dup {
		panic("charset: Register called twice for " + name)
	}
	registry[key] = registration{name: name, factory: factory}
}

// New returns a new instance of the named charset. Names are matched
// ignoring case and punctuation.
func New(name string) (Charset, error) {
	registryMu.RLock()
	reg, ok := registry[simplifyName(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return reg.factory(), nil
}

// Names returns the registered charset names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, reg := range registry {
		names = append(names, reg.name)
	}
	sort.Strings(names)
	return names
}
