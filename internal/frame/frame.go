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

// Package frame provides wire-level frame construction and response
// verification for the VC0706 command protocol.
package frame

// Frame direction markers - these indicate the direction of data flow
const (
	CommandSync = 0x56 // Commands from host to camera
	ResponseAck = 0x76 // Responses from camera to host
)

// Fixed frame fields
const (
	SerialID = 0x00 // Camera serial number, always zero on this module
	StatusOK = 0x00 // Success status byte
)

// HeaderLen is the length of the mandatory 4-byte response prefix
// (ack, serial id, opcode echo, status).
const HeaderLen = 4

// EnvelopeLen is the response prefix plus the payload length byte. Every
// fixed-length response the camera sends is at least this long.
const EnvelopeLen = 5

// MaxArgsLen is the longest argument block any opcode carries
// (the 13-byte frame buffer read request).
const MaxArgsLen = 13

// MCUMode selects MCU-paced frame buffer transfer (the alternative, DMA
// mode 0x0F, needs external memory the stock module does not have).
const MCUMode = 0x0A

// Status byte values the camera reports in the response prefix.
// Anything other than StatusSuccess fails the prefix check.
const (
	StatusSuccess     = 0x00 // command executed
	StatusNotReceived = 0x01 // command not received
	StatusLengthError = 0x02 // data length error
	StatusFormatError = 0x03 // data format error
	StatusCannotExec  = 0x04 // command cannot execute now
	StatusExecError   = 0x05 // command received but executed wrong
)

// Command builds the wire frame for cmd with args:
// [sync, serial id, opcode] followed by the raw argument bytes. Argument
// length is constrained by the caller; each opcode has a fixed layout.
func Command(cmd byte, args []byte) []byte {
	buf := make([]byte, 0, 3+len(args))
	buf = append(buf, CommandSync, SerialID, cmd)
	return append(buf, args...)
}

// VerifyResponse reports whether resp starts with a valid prefix echoing
// cmd. This 4-byte check is the protocol's only correctness gate; there is
// no checksum on the wire.
func VerifyResponse(resp []byte, cmd byte) bool {
	if len(resp) < HeaderLen {
		return false
	}
	return resp[0] == ResponseAck &&
		resp[1] == SerialID &&
		resp[2] == cmd &&
		resp[3] == StatusOK
}
