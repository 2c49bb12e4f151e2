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

// Package testing provides canned VC0706 wire responses for driver tests.
package testing

import "encoding/binary"

// Command opcodes duplicated here so tests can script mocks without
// reaching into the driver's unexported constants.
const (
	CmdReset             = 0x26
	CmdGetVersion        = 0x11
	CmdSetPort           = 0x24
	CmdReadData          = 0x30
	CmdWriteData         = 0x31
	CmdReadFrameBuffer   = 0x32
	CmdGetFrameBufferLen = 0x34
	CmdFrameBufferCtrl   = 0x36
	CmdMotionCtrl        = 0x37
	CmdMotionStatus      = 0x38
	CmdMotionDetected    = 0x39
)

// BuildAckResponse returns the minimal 5-byte success envelope for cmd.
func BuildAckResponse(cmd byte) []byte {
	return []byte{0x76, 0x00, cmd, 0x00, 0x00}
}

// BuildSetPortResponse returns the 7-byte SET_PORT acknowledgement.
func BuildSetPortResponse() []byte {
	return []byte{0x76, 0x00, CmdSetPort, 0x00, 0x00, 0x00, 0x00}
}

// BuildVersionResponse wraps a firmware version string, e.g. "VC0703 1.00".
func BuildVersionResponse(version string) []byte {
	resp := []byte{0x76, 0x00, CmdGetVersion, 0x00, byte(len(version))}
	return append(resp, version...)
}

// BuildFrameLengthResponse returns a GET_FBUF_LEN response carrying length
// as a big-endian 32-bit payload.
func BuildFrameLengthResponse(length uint32) []byte {
	resp := []byte{0x76, 0x00, CmdGetFrameBufferLen, 0x00, 0x04}
	return binary.BigEndian.AppendUint32(resp, length)
}

// BuildImageSizeResponse returns a READ_DATA response carrying the image
// size status byte.
func BuildImageSizeResponse(size byte) []byte {
	return []byte{0x76, 0x00, CmdReadData, 0x00, 0x01, size}
}

// BuildMotionStatusResponse returns a motion detection status response.
func BuildMotionStatusResponse(enabled bool) []byte {
	flag := byte(0x00)
	if enabled {
		flag = 0x01
	}
	return []byte{0x76, 0x00, CmdMotionStatus, 0x00, 0x01, flag}
}

// BuildChunkResponse wraps one frame buffer chunk in its wire envelope:
// the 5-byte acknowledgement, the payload, and the 5 trailing footer
// bytes the driver strips.
func BuildChunkResponse(data []byte) []byte {
	resp := BuildAckResponse(CmdReadFrameBuffer)
	resp = append(resp, data...)
	return append(resp, 0x76, 0x00, CmdReadFrameBuffer, 0x00, 0x00)
}

// BuildErrorResponse returns a response whose status byte carries the
// given firmware error code, which fails the driver's prefix check.
func BuildErrorResponse(cmd, code byte) []byte {
	return []byte{0x76, 0x00, cmd, code, 0x00}
}
