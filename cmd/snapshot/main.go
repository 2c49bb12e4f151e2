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

// Command snapshot captures stills from a VC0706 camera and writes the
// JPEG frames to disk.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	vc0706 "github.com/camworks/go-vc0706"
	"github.com/camworks/go-vc0706/detection"
	"github.com/camworks/go-vc0706/transport/uart"
)

func main() {
	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if cfg.Debug {
		vc0706.SetDebugEnabled(true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("capture failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, log zerolog.Logger) error {
	path := cfg.Device
	if path == "" {
		devices, err := detection.DetectAll()
		if err != nil {
			return fmt.Errorf("device detection failed: %w", err)
		}
		if len(devices) == 0 {
			return errors.New("no serial ports found; pass -device explicitly")
		}
		path = devices[0].Path
		log.Info().Str("port", path).Msg("auto-detected serial port")
	}

	transport, err := uart.New(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := transport.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close transport")
		}
	}()

	opts := []vc0706.Option{vc0706.WithTimeout(cfg.Timeout)}
	if cfg.ChunkSize > 0 {
		opts = append(opts, vc0706.WithChunkSize(cfg.ChunkSize))
	}
	device, err := vc0706.New(transport, opts...)
	if err != nil {
		return err
	}

	log.Info().Str("port", path).Msg("probing camera")
	if err := device.InitContext(ctx); err != nil {
		return err
	}
	log.Info().Int("baud", device.BaudRate()).Msg("camera found")

	if version, err := device.Version(); err == nil {
		log.Info().Str("version", version).Msg("camera firmware")
	} else {
		log.Warn().Err(err).Msg("version query failed")
	}

	if cfg.ImageSize != nil {
		if err := device.SetImageSize(*cfg.ImageSize); err != nil {
			return err
		}
		// The new size only applies after a reset.
		if err := device.InitContext(ctx); err != nil {
			return err
		}
		log.Info().Stringer("size", *cfg.ImageSize).Msg("image size set")
	}

	if cfg.Baud != 0 && cfg.Baud != device.BaudRate() {
		if err := device.SetBaudRate(cfg.Baud); err != nil {
			return err
		}
		log.Info().Int("baud", cfg.Baud).Msg("switched line speed")
	}

	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := cfg.outputName(i)
		if err := captureToFile(ctx, device, name); err != nil {
			return fmt.Errorf("capture %d: %w", i+1, err)
		}
		log.Info().Str("file", name).Msg("snapshot saved")
		if i+1 < cfg.Count && cfg.Interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Interval):
			}
		}
	}
	return nil
}

// captureToFile streams one still straight to disk so large frames never
// sit fully in memory.
func captureToFile(ctx context.Context, device *vc0706.Device, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	n, err := device.CaptureToContext(ctx, f)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(name)
		return err
	}
	if n == 0 {
		_ = os.Remove(name)
		return errors.New("camera reported an empty frame")
	}
	return nil
}
