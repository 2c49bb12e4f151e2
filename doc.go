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

/*
Package vc0706 provides a pure Go driver for the VC0706 serial TTL JPEG
camera module.

The VC0706 is a composite-video camera chip with a JPEG compression engine,
controlled over a UART with a fixed binary command/response protocol. This
library implements that protocol: command framing, response verification,
the multi-baud reset handshake, and the chunked frame buffer read used to
download captured stills.

Features:
  - Automatic baud rate discovery during Init (9600..115200 ladder)
  - Still capture with streaming JPEG download (io.Reader or io.Writer)
  - Image size selection (640x480, 320x240, 160x120)
  - Camera-side baud rate reconfiguration
  - Motion detection pass-through commands
  - Mock transport for hardware-free testing

Basic Usage:

	import (
	    "github.com/camworks/go-vc0706"
	    "github.com/camworks/go-vc0706/transport/uart"
	)

	// Open the serial port the camera is wired to
	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	// Create the device and run the reset/baud handshake
	device, err := vc0706.New(transport)
	if err != nil {
	    log.Fatal(err)
	}
	if err := device.Init(); err != nil {
	    log.Fatal(err)
	}

	// Capture a still and write the JPEG to a file
	f, err := os.Create("snapshot.jpg")
	if err != nil {
	    log.Fatal(err)
	}
	defer f.Close()

	if _, err := device.CaptureTo(f); err != nil {
	    log.Fatal(err)
	}

Protocol Notes:

The wire protocol has no checksum or CRC. Every response is gated on an
exact-length read and a 4-byte prefix check; anything else discards the
whole exchange. Frame buffer downloads page through the frozen frame in
chunks of at most 100 bytes, multiples of 4, tracked by a read cursor owned
by the Device.

Two query operations follow the camera's lenient failure convention:
FrameLength and ReadFrameBuffer return a zero value with a nil error when
the camera simply does not answer, and reserve hard errors for malformed or
desynchronized responses.

Error Handling:

All operations return meaningful errors that can be inspected:

	if errors.Is(err, vc0706.ErrDeviceUnresponsive) {
	    // Camera never answered the reset ladder - check wiring
	}

Thread Safety:

Device operations are not thread-safe. The protocol is strictly half-duplex
with a single shared receive buffer, so commands must never be interleaved.
If you need concurrent access, guard the Device with a mutex - one camera,
one lock.
*/
package vc0706
