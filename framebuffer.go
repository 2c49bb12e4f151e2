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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/camworks/go-vc0706/internal/frame"
)

const (
	// MaxChunkSize is the largest frame buffer slice the firmware hands
	// back per read.
	MaxChunkSize = 100
	// DefaultChunkSize is the chunk size used by the capture facades.
	DefaultChunkSize = 32

	// chunkFooterLen is the trailing envelope after the chunk payload.
	// The bytes are undocumented; treat them as opaque and discard.
	chunkFooterLen = 5
)

// TakePicture freezes the camera's current frame so it can be downloaded,
// and resets the read cursor to the start of the frame buffer.
func (d *Device) TakePicture() error {
	d.framePtr = 0
	d.frameLen = 0
	if _, err := d.runCommand(cmdFrameBufferCtrl, []byte{0x01, fbufStopCurrentFrame}, ackResponseLen, true); err != nil {
		return fmt.Errorf("failed to stop current frame: %w", err)
	}
	return nil
}

// ResumeVideo returns the camera to live frame updates after a capture.
// Call it whenever a capture sequence completes or fails; resuming twice
// is harmless.
func (d *Device) ResumeVideo() error {
	if _, err := d.runCommand(cmdFrameBufferCtrl, []byte{0x01, fbufResumeFrame}, ackResponseLen, true); err != nil {
		return fmt.Errorf("failed to resume video: %w", err)
	}
	return nil
}

// FrameLength returns the byte length of the frozen frame.
//
// A length of 0 with a nil error means the camera had nothing to report -
// no capture is active or the exchange timed out. Treat it as "nothing to
// read", not a fault; hard errors are reserved for malformed responses.
func (d *Device) FrameLength() (uint32, error) {
	resp, err := d.runCommand(cmdGetFrameBufferLen, []byte{0x01, 0x00}, frameLenResponseLen, true)
	if err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			return 0, err
		}
		debugf("frame length query failed: %v", err)
		return 0, nil
	}
	d.frameLen = binary.BigEndian.Uint32(resp[5:9])
	return d.frameLen, nil
}

// FrameCursor returns the byte offset already consumed from the frozen
// frame. It is meaningful only between TakePicture and ResumeVideo.
func (d *Device) FrameCursor() uint32 {
	return d.framePtr
}

// maxChunk is the largest chunk the current scratch buffer allows.
func (d *Device) maxChunk() int {
	if m := len(d.buf) - chunkFooterLen; m < MaxChunkSize {
		return m
	}
	return MaxChunkSize
}

// ReadFrameBuffer reads the next n bytes of the frozen frame and advances
// the read cursor. n must be a positive multiple of 4, at most
// MaxChunkSize, and leave room for the chunk envelope in the receive
// buffer; anything else fails with ErrInvalidChunkSize before touching the
// wire.
//
// A nil slice with a nil error means the exchange timed out; the caller
// decides whether to retry the same offset or abandon the capture.
func (d *Device) ReadFrameBuffer(n int) ([]byte, error) {
	if n <= 0 || n%4 != 0 || n > d.maxChunk() {
		return nil, fmt.Errorf("%w: %d (want a positive multiple of 4 up to %d)",
			ErrInvalidChunkSize, n, d.maxChunk())
	}

	args := []byte{
		0x0C, 0x00, frame.MCUMode,
		0x00, 0x00, byte(d.framePtr >> 8), byte(d.framePtr),
		0x00, 0x00, 0x00, byte(n),
		byte(cameraDelay >> 8), byte(cameraDelay),
	}
	// No flush here: the camera is mid-transfer and a drain would eat the
	// very bytes being streamed back.
	if _, err := d.runCommand(cmdReadFrameBuffer, args, ackResponseLen, false); err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			return nil, err
		}
		debugf("frame buffer read at cursor %d failed: %v", d.framePtr, err)
		return nil, nil
	}

	want := n + chunkFooterLen
	read, err := d.readResponse(want)
	if err != nil {
		return nil, err
	}
	if read != want {
		debugf("short frame buffer chunk: %d of %d bytes", read, want)
		return nil, nil
	}

	d.advanceCursor(uint32(n))
	payload := make([]byte, n)
	copy(payload, d.buf[:n])
	return payload, nil
}

// advanceCursor moves the read cursor, clamped to the frame length (when
// known) so it never points past the end of the frozen frame.
func (d *Device) advanceCursor(n uint32) {
	d.framePtr += n
	if d.frameLen > 0 && d.framePtr > d.frameLen {
		d.framePtr = d.frameLen
	}
}

// FrameReader streams a frozen frame off the camera as an io.Reader.
// Create one per capture via Device.FrameReader; it shares the device's
// cursor, so do not interleave it with direct ReadFrameBuffer calls.
type FrameReader struct {
	device    *Device
	pending   []byte
	remaining uint32
	chunkSize int
}

// FrameReader returns a reader over the next length bytes of the frozen
// frame, typically the value reported by FrameLength.
func (d *Device) FrameReader(length uint32) *FrameReader {
	chunk := d.config.ChunkSize
	if chunk > d.maxChunk() {
		chunk = d.maxChunk() &^ 3
	}
	return &FrameReader{device: d, remaining: length, chunkSize: chunk}
}

// Read implements io.Reader. Each call pulls at most one chunk off the
// camera. The tail of the frame is requested in a single read rounded up
// to a multiple of 4 (a firmware requirement) and the surplus bytes are
// discarded, so the reader delivers exactly the frame length.
func (r *FrameReader) Read(p []byte) (int, error) {
	if len(r.pending) > 0 {
		n := copy(p, r.pending)
		r.pending = r.pending[n:]
		return n, nil
	}
	if r.remaining == 0 {
		return 0, io.EOF
	}

	request := r.chunkSize
	if tail := (int(r.remaining) + 3) &^ 3; tail < 2*r.chunkSize && tail <= r.device.maxChunk() {
		request = tail
	}

	chunk, err := r.device.ReadFrameBuffer(request)
	if err != nil {
		return 0, err
	}
	if len(chunk) == 0 {
		return 0, fmt.Errorf("frame buffer read stalled at cursor %d: %w",
			r.device.FrameCursor(), ErrResponseTimeout)
	}
	if uint32(len(chunk)) > r.remaining {
		chunk = chunk[:r.remaining]
	}
	r.remaining -= uint32(len(chunk))

	n := copy(p, chunk)
	r.pending = chunk[n:]
	return n, nil
}

// Remaining returns the number of frame bytes not yet delivered.
func (r *FrameReader) Remaining() uint32 {
	return r.remaining + uint32(len(r.pending))
}
