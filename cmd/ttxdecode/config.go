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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/szatmary/gocharset"
)

const (
	// unset marks a designation that was not configured.
	unset = -1

	// designation codes are 6-bit values below 56
	designationCodes = 56
)

// Config holds the ttxdecode settings. Values come from defaults, then the
// YAML file, then TTXDECODE_* environment variables, then flags.
type Config struct {
	Charset string `yaml:"charset"`
	Input   string `yaml:"input"`
	RowSize int    `yaml:"row_size"`

	// Teletext signalling
	Triplet          uint16 `yaml:"triplet"`
	National         int    `yaml:"national"`
	MagazineNational int    `yaml:"magazine_national"`
	Language         string `yaml:"language"`

	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	MetricsListen string `yaml:"metrics_listen"`
}

func defaultConfig() Config {
	return Config{
		Charset:          "TELETEXT",
		Input:            "-",
		RowSize:          charset.PageCols,
		National:         unset,
		MagazineNational: unset,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// applyEnv overrides cfg from the environment. lookup is os.LookupEnv
// outside of tests.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup("TTXDECODE_" + key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup("TTXDECODE_" + key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TTXDECODE_%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("CHARSET", &cfg.Charset)
	str("INPUT", &cfg.Input)
	str("LANGUAGE", &cfg.Language)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("METRICS_LISTEN", &cfg.MetricsListen)
	if err := num("ROW_SIZE", &cfg.RowSize); err != nil {
		return err
	}
	if err := num("NATIONAL", &cfg.National); err != nil {
		return err
	}
	if err := num("MAGAZINE_NATIONAL", &cfg.MagazineNational); err != nil {
		return err
	}
	if v, ok := lookup("TTXDECODE_TRIPLET"); ok && v != "" {
		n, err := strconv.ParseUint(v, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid TTXDECODE_TRIPLET: %w", err)
		}
		cfg.Triplet = uint16(n)
	}
	return nil
}

// parseConfig builds the configuration from the command line arguments
// (without the program name).
func parseConfig(args []string, lookup func(string) (string, bool)) (*Config, error) {
	fs := pflag.NewFlagSet("ttxdecode", pflag.ContinueOnError)
	var (
		configFile       = fs.StringP("config", "c", "", "YAML configuration file")
		envFile          = fs.String("env-file", ".env", "Environment file, ignored when missing")
		charsetName      = fs.String("charset", "", "Charset ("+strings.Join(charset.Names(), ", ")+")")
		rowSize          = fs.Int("row-size", 0, "Bytes per row record")
		triplet          = fs.Uint16("triplet", 0, "Character set designation triplet (X/28 or M/29)")
		national         = fs.IntP("national", "n", unset, "Default national option designation")
		magazineNational = fs.IntP("magazine-national", "m", unset, "Magazine level (M/29) national option designation")
		lang             = fs.StringP("language", "l", "", "ISO 639 language giving the default national option")
		logLevel         = fs.String("log-level", "", "Log level (debug, info, warn, error)")
		logFormat        = fs.String("log-format", "", "Log format (text, json)")
		metricsListen    = fs.String("metrics-listen", "", "Address serving Prometheus metrics, e.g. :9110")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if *configFile != "" {
		if err := loadConfigFile(&cfg, *configFile); err != nil {
			return nil, err
		}
	}
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", *envFile, err)
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, err
	}

	if fs.Changed("charset") {
		cfg.Charset = *charsetName
	}
	if fs.Changed("row-size") {
		cfg.RowSize = *rowSize
	}
	if fs.Changed("triplet") {
		cfg.Triplet = *triplet
	}
	if fs.Changed("national") {
		cfg.National = *national
	}
	if fs.Changed("magazine-national") {
		cfg.MagazineNational = *magazineNational
	}
	if fs.Changed("language") {
		cfg.Language = *lang
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = *logFormat
	}
	if fs.Changed("metrics-listen") {
		cfg.MetricsListen = *metricsListen
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := charset.New(c.Charset); err != nil {
		return err
	}
	if c.RowSize <= 0 {
		return fmt.Errorf("row size must be positive, got %d", c.RowSize)
	}
	for name, d := range map[string]int{"national": c.National, "magazine national": c.MagazineNational} {
		if d != unset && (d < 0 || d >= designationCodes) {
			return fmt.Errorf("%s designation out of range: %d", name, d)
		}
	}
	if c.Language != "" {
		if _, ok := charset.DesignationForLanguage(c.Language); !ok {
			return fmt.Errorf("no national option for language %q", c.Language)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// fallback returns the designation restored when no page level option is
// active: the explicit national option, else the language one, else English.
func (c *Config) fallback() byte {
	if c.National != unset {
		return byte(c.National)
	}
	if d, ok := charset.DesignationForLanguage(c.Language); ok {
		return d
	}
	return 0
}
