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

// VC0706 command opcodes
const (
	cmdReset              = 0x26
	cmdGetVersion         = 0x11
	cmdSetPort            = 0x24
	cmdReadData           = 0x30
	cmdWriteData          = 0x31
	cmdReadFrameBuffer    = 0x32
	cmdGetFrameBufferLen  = 0x34
	cmdFrameBufferCtrl    = 0x36
	cmdCommMotionCtrl     = 0x37
	cmdCommMotionStatus   = 0x38
	cmdCommMotionDetected = 0x39
)

// Frame buffer control sub-commands (first argument of cmdFrameBufferCtrl)
const (
	fbufStopCurrentFrame byte = 0x00
	fbufStopNextFrame    byte = 0x01
	fbufStepFrame        byte = 0x02
	fbufResumeFrame      byte = 0x03
)

// ImageSize selects the camera's JPEG capture resolution. The firmware
// encodes it as a single byte; only the three values below are legal.
type ImageSize byte

// Supported capture resolutions
const (
	ImageSize640x480 ImageSize = 0x00
	ImageSize320x240 ImageSize = 0x11
	ImageSize160x120 ImageSize = 0x22
)

func (s ImageSize) valid() bool {
	switch s {
	case ImageSize640x480, ImageSize320x240, ImageSize160x120:
		return true
	default:
		return false
	}
}

// String returns the resolution as "WxH".
func (s ImageSize) String() string {
	switch s {
	case ImageSize640x480:
		return "640x480"
	case ImageSize320x240:
		return "320x240"
	case ImageSize160x120:
		return "160x120"
	default:
		return "unknown"
	}
}

// baudDividers maps a host baud rate to the internal divisor the camera
// expects in a SET_PORT command. These five rates are the only speeds the
// firmware supports.
var baudDividers = map[int]uint16{
	9600:   0xAEC8,
	19200:  0x56E4,
	38400:  0x2AF2,
	57600:  0x1C1C,
	115200: 0x0DA6,
}

// DefaultBaudRates is the candidate ladder probed by Init, slowest first.
// The camera answers the reset only at its current line speed, so the
// ladder is walked until one speed produces a valid response.
var DefaultBaudRates = []int{9600, 19200, 38400, 57600, 115200}

// cameraDelay is the inter-byte delay parameter sent with every frame
// buffer read. The firmware needs it to pace the transfer.
const cameraDelay = 10
