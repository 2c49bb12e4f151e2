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

package vc0706

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithTimeout sets the read timeout used for every exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Device) error {
		return d.SetTimeout(timeout)
	}
}

// WithBufferSize sets the scratch receive buffer size. The protocol needs
// at least DefaultBufferSize bytes; a larger buffer permits larger frame
// buffer chunks (up to MaxChunkSize plus the chunk envelope).
func WithBufferSize(size int) Option {
	return func(d *Device) error {
		if size < DefaultBufferSize {
			return fmt.Errorf("buffer size %d too small, need at least %d", size, DefaultBufferSize)
		}
		d.config.BufferSize = size
		d.buf = make([]byte, size)
		return nil
	}
}

// WithBaudRates overrides the candidate ladder probed by Init. Rates are
// tried in the order given and must all be supported by the firmware.
func WithBaudRates(rates ...int) Option {
	return func(d *Device) error {
		if len(rates) == 0 {
			return errors.New("empty baud rate ladder")
		}
		for _, rate := range rates {
			if _, ok := baudDividers[rate]; !ok {
				return fmt.Errorf("%w: %d", ErrUnsupportedBaudRate, rate)
			}
		}
		d.config.BaudRates = append([]int(nil), rates...)
		return nil
	}
}

// WithChunkSize sets the frame buffer chunk size used by the capture
// facades. It must be a positive multiple of 4 no larger than
// MaxChunkSize.
func WithChunkSize(size int) Option {
	return func(d *Device) error {
		if size <= 0 || size > MaxChunkSize || size%4 != 0 {
			return fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
		}
		d.config.ChunkSize = size
		return nil
	}
}
