// go-vc0706
// Copyright (c) 2026 The go-vc0706 Authors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-vc0706.
//
// go-vc0706 is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-vc0706 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-vc0706; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	vc0706 "github.com/camworks/go-vc0706"
)

// config is the resolved CLI configuration: defaults, then the optional
// TOML file, then flags, each layer overriding the previous one.
type config struct {
	Device    string
	Output    string
	ImageSize *vc0706.ImageSize
	Baud      int
	ChunkSize int
	Count     int
	Timeout   time.Duration
	Interval  time.Duration
	Debug     bool
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Device    string `toml:"device"`
	Output    string `toml:"output"`
	ImageSize string `toml:"image_size"`
	Baud      int    `toml:"baud"`
	ChunkSize int    `toml:"chunk_size"`
	Timeout   string `toml:"timeout"`
}

func defaultConfig() *config {
	return &config{
		Output:  "snapshot.jpg",
		Count:   1,
		Timeout: 500 * time.Millisecond,
	}
}

func resolveConfig() (*config, error) {
	cfg := defaultConfig()

	configPath := flag.String("config", "", "Path to a TOML config file")
	device := flag.String("device", "", "Serial device path (e.g. /dev/ttyUSB0 or COM3). Leave empty for auto-detection.")
	output := flag.String("output", "", "Output JPEG path (numbered when -count > 1)")
	size := flag.String("size", "", "Image size: 640x480, 320x240 or 160x120 (default: camera setting)")
	baud := flag.Int("baud", 0, "Switch the camera to this baud rate after the handshake")
	count := flag.Int("count", 0, "Number of snapshots to take")
	interval := flag.Duration("interval", 0, "Delay between snapshots when -count > 1")
	timeout := flag.Duration("timeout", 0, "Per-exchange read timeout")
	debug := flag.Bool("debug", false, "Enable protocol debug output")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if *device != "" {
		cfg.Device = *device
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *size != "" {
		imageSize, err := parseImageSize(*size)
		if err != nil {
			return nil, err
		}
		cfg.ImageSize = &imageSize
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}
	if *count != 0 {
		cfg.Count = *count
	}
	if *interval != 0 {
		cfg.Interval = *interval
	}
	if *timeout != 0 {
		cfg.Timeout = *timeout
	}
	cfg.Debug = *debug

	if cfg.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}
	return cfg, nil
}

func (c *config) loadFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("device") {
		c.Device = strings.TrimSpace(raw.Device)
	}
	if meta.IsDefined("output") {
		c.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("image_size") {
		size, err := parseImageSize(raw.ImageSize)
		if err != nil {
			return fmt.Errorf("config image_size: %w", err)
		}
		c.ImageSize = &size
	}
	if meta.IsDefined("baud") {
		c.Baud = raw.Baud
	}
	if meta.IsDefined("chunk_size") {
		c.ChunkSize = raw.ChunkSize
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

func parseImageSize(s string) (vc0706.ImageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "640x480", "640":
		return vc0706.ImageSize640x480, nil
	case "320x240", "320":
		return vc0706.ImageSize320x240, nil
	case "160x120", "160":
		return vc0706.ImageSize160x120, nil
	default:
		return 0, fmt.Errorf("unknown image size %q", s)
	}
}

// outputName numbers the output file when more than one snapshot is taken:
// snapshot.jpg, snapshot-001.jpg, snapshot-002.jpg, ...
func (c *config) outputName(i int) string {
	if c.Count == 1 {
		return c.Output
	}
	ext := ""
	base := c.Output
	if dot := strings.LastIndex(c.Output, "."); dot > 0 {
		base, ext = c.Output[:dot], c.Output[dot:]
	}
	return fmt.Sprintf("%s-%03d%s", base, i, ext)
}
