package main

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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/szatmary/gocharset"
)

// decoder turns fixed size row records into text lines.
type decoder struct {
	cfg     *Config
	log     logrus.FieldLogger
	metrics *metrics

	cs       charset.Charset
	teletext *charset.Teletext // nil unless cs is a teletext charset
	page     *charset.Page
}

func newDecoder(cfg *Config, log logrus.FieldLogger, m *metrics) (*decoder, error) {
	cs, err := charset.New(cfg.Charset)
	if err != nil {
		return nil, err
	}
	d := &decoder{cfg: cfg, log: log, metrics: m, cs: cs}
	if t, ok := cs.(*charset.Teletext); ok {
		// Apply the configured signalling the way a stream would: group
		// first, then the magazine option, then the page default.
		t.SetLogger(log)
		t.SelectGroup(cfg.Triplet)
		if cfg.MagazineNational != unset {
			t.SetMagazineOverride(byte(cfg.MagazineNational))
		}
		t.ClearPageOverride(cfg.fallback())
		d.teletext = t
		d.page = charset.NewPage(t)
		log.WithFields(logrus.Fields{
			"group":       t.Group(),
			"designation": t.Designation(),
		}).Debug("teletext charset ready")
	}
	return d, nil
}

// line decodes one record.
func (d *decoder) line(row []byte) string {
	d.metrics.rows.Inc()
	d.metrics.bytes.Add(float64(len(row)))
	if d.teletext == nil {
		return d.cs.Decode(row)
	}
	for _, b := range row {
		if !charset.ParityOK(b) {
			d.metrics.parityErrors.Inc()
		}
	}
	d.page.SetRow(1, row)
	return d.page.Row(1)
}

// run decodes r until EOF or ctx is done. A truncated last record is
// decoded as is.
func (d *decoder) run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	row := make([]byte, d.cfg.RowSize)
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		size, err := io.ReadFull(r, row)
		if size > 0 {
			if _, werr := fmt.Fprintln(bw, d.line(row[:size])); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			d.log.WithField("rows", n).Debug("end of input")
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			d.log.WithField("bytes", size).Warn("truncated last row")
			return nil
		default:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}
