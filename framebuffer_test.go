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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/camworks/go-vc0706/internal/testing"
)

// virtualCamera scripts a mock as a camera holding one frozen frame: it
// acks frame buffer control, reports the frame length, and serves chunk
// reads by the offset and count embedded in the request arguments.
func virtualCamera(frame []byte) func(cmd byte, args []byte) []byte {
	return func(cmd byte, args []byte) []byte {
		switch cmd {
		case testutil.CmdGetFrameBufferLen:
			return testutil.BuildFrameLengthResponse(uint32(len(frame)))
		case testutil.CmdReadFrameBuffer:
			offset := int(args[5])<<8 | int(args[6])
			n := int(args[10])
			// Reads past the frame end return zero padding, like the
			// real firmware.
			chunk := make([]byte, n)
			if offset < len(frame) {
				copy(chunk, frame[offset:])
			}
			return testutil.BuildChunkResponse(chunk)
		default:
			return testutil.BuildAckResponse(cmd)
		}
	}
}

func testFrame(n int) []byte {
	frame := make([]byte, n)
	for i := range frame {
		frame[i] = byte(i * 7)
	}
	return frame
}

func TestFrameLengthDecode(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	// Payload 0x000186A0 big-endian.
	mock.SetResponse(testutil.CmdGetFrameBufferLen,
		[]byte{0x76, 0x00, 0x34, 0x00, 0x04, 0x00, 0x01, 0x86, 0xA0})

	device, err := New(mock)
	require.NoError(t, err)

	length, err := device.FrameLength()
	require.NoError(t, err)
	assert.Equal(t, uint32(100000), length)
}

func TestFrameLengthSoftZero(t *testing.T) {
	t.Parallel()

	// No response scripted: the exchange times out and the camera is
	// treated as having nothing to read, not as faulty.
	mock := NewMockTransport()
	device, err := New(mock)
	require.NoError(t, err)

	length, err := device.FrameLength()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), length)
}

func TestFrameLengthMalformed(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SetResponse(testutil.CmdGetFrameBufferLen,
		testutil.BuildErrorResponse(testutil.CmdGetFrameBufferLen, 0x03))

	device, err := New(mock)
	require.NoError(t, err)

	_, err = device.FrameLength()
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFrameCursorAdvance(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(testFrame(256)))

	device, err := New(mock)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		chunk, err := device.ReadFrameBuffer(32)
		require.NoError(t, err)
		require.Len(t, chunk, 32)
	}
	assert.Equal(t, uint32(96), device.FrameCursor())
}

func TestTakePictureResetsCursor(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(testFrame(256)))

	device, err := New(mock)
	require.NoError(t, err)

	_, err = device.ReadFrameBuffer(64)
	require.NoError(t, err)
	require.Equal(t, uint32(64), device.FrameCursor())

	require.NoError(t, device.TakePicture())
	assert.Equal(t, uint32(0), device.FrameCursor())
}

func TestReadFrameBufferValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
	}{
		{name: "zero", size: 0},
		{name: "negative", size: -4},
		{name: "not a multiple of 4", size: 30},
		{name: "exceeds scratch buffer contract", size: 100},
		{name: "exceeds firmware maximum", size: 104},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := NewMockTransport()
			device, err := New(mock)
			require.NoError(t, err)

			_, err = device.ReadFrameBuffer(tt.size)
			require.ErrorIs(t, err, ErrInvalidChunkSize)
			// Rejected before any I/O.
			assert.Empty(t, mock.Writes())
		})
	}
}

func TestReadFrameBufferLargeChunkWithBiggerBuffer(t *testing.T) {
	t.Parallel()

	// A 100-byte chunk is only rejected when the scratch buffer cannot
	// hold it plus the envelope, not for being non-32.
	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(testFrame(200)))

	device, err := New(mock, WithBufferSize(128))
	require.NoError(t, err)

	chunk, err := device.ReadFrameBuffer(100)
	require.NoError(t, err)
	assert.Len(t, chunk, 100)
	assert.Equal(t, uint32(100), device.FrameCursor())
}

func TestReadFrameBufferSoftZero(t *testing.T) {
	t.Parallel()

	// Command goes unanswered: zero bytes, nil error, cursor unchanged.
	mock := NewMockTransport()
	device, err := New(mock)
	require.NoError(t, err)

	chunk, err := device.ReadFrameBuffer(32)
	require.NoError(t, err)
	assert.Empty(t, chunk)
	assert.Equal(t, uint32(0), device.FrameCursor())
}

func TestReadFrameBufferRequestLayout(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(testFrame(512)))

	device, err := New(mock)
	require.NoError(t, err)

	_, err = device.ReadFrameBuffer(32)
	require.NoError(t, err)
	_, err = device.ReadFrameBuffer(32)
	require.NoError(t, err)

	writes := mock.Writes()
	require.Len(t, writes, 2)
	// Second request reads at cursor 32 with the fixed MCU mode, the
	// chunk size, and the 16-bit transfer delay.
	assert.Equal(t, []byte{
		0x56, 0x00, 0x32,
		0x0C, 0x00, 0x0A,
		0x00, 0x00, 0x00, 0x20,
		0x00, 0x00, 0x00, 0x20,
		0x00, 0x0A,
	}, writes[1].Data)
}

func TestCaptureRoundTrip(t *testing.T) {
	t.Parallel()

	// A 130-byte frame drains as 32+32+32 plus one rounded-up tail read,
	// reconstructing the frame in order with no gaps or duplicates.
	frame := testFrame(130)
	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(frame))

	device, err := New(mock)
	require.NoError(t, err)

	picture, err := device.CapturePicture()
	require.NoError(t, err)
	assert.Equal(t, frame, picture)

	// 3 full chunks and one 36-byte tail request clipped to 34 payload
	// bytes.
	var chunkSizes []int
	for _, w := range mock.Writes() {
		if w.Data[2] == testutil.CmdReadFrameBuffer {
			chunkSizes = append(chunkSizes, int(w.Data[13]))
		}
	}
	assert.Equal(t, []int{32, 32, 32, 36}, chunkSizes)

	// Cursor is clamped to the frame length despite the rounded tail.
	assert.Equal(t, uint32(130), device.FrameCursor())

	// Stop, then resume: the camera is always returned to live video.
	assert.Equal(t, 2, mock.GetCallCount(testutil.CmdFrameBufferCtrl))
}

func TestCaptureEmptyFrame(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(nil))

	device, err := New(mock)
	require.NoError(t, err)

	picture, err := device.CapturePicture()
	require.NoError(t, err)
	assert.Empty(t, picture)
	assert.Equal(t, 0, mock.GetCallCount(testutil.CmdReadFrameBuffer))
	assert.Equal(t, 2, mock.GetCallCount(testutil.CmdFrameBufferCtrl))
}

func TestCaptureResumesOnFailure(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SetResponse(testutil.CmdFrameBufferCtrl,
		testutil.BuildAckResponse(testutil.CmdFrameBufferCtrl))
	mock.SetResponse(testutil.CmdGetFrameBufferLen,
		testutil.BuildErrorResponse(testutil.CmdGetFrameBufferLen, 0x03))

	device, err := New(mock)
	require.NoError(t, err)

	_, err = device.CapturePicture()
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, 2, mock.GetCallCount(testutil.CmdFrameBufferCtrl))
}

func TestCaptureStalledTransfer(t *testing.T) {
	t.Parallel()

	// Frame length is reported but chunk reads go unanswered: the reader
	// surfaces the stall as a timeout instead of looping forever.
	mock := NewMockTransport()
	mock.SetResponse(testutil.CmdFrameBufferCtrl,
		testutil.BuildAckResponse(testutil.CmdFrameBufferCtrl))
	mock.SetResponse(testutil.CmdGetFrameBufferLen,
		testutil.BuildFrameLengthResponse(130))

	device, err := New(mock)
	require.NoError(t, err)

	_, err = device.CapturePicture()
	require.ErrorIs(t, err, ErrResponseTimeout)
}

func TestCaptureContextCancelled(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	device, err := New(mock)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = device.CapturePictureContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, mock.Writes())
}

func TestFrameReaderSmallDestination(t *testing.T) {
	t.Parallel()

	// Reads smaller than a chunk drain the pending remainder before the
	// next wire exchange.
	frame := testFrame(64)
	mock := NewMockTransport()
	mock.SetResponseFunc(virtualCamera(frame))

	device, err := New(mock)
	require.NoError(t, err)
	require.NoError(t, device.TakePicture())
	length, err := device.FrameLength()
	require.NoError(t, err)

	reader := device.FrameReader(length)
	var got []byte
	buf := make([]byte, 10)
	for {
		n, rerr := reader.Read(buf)
		got = append(got, buf[:n]...)
		if rerr != nil {
			break
		}
	}
	assert.Equal(t, frame, got)
	assert.Equal(t, uint32(0), reader.Remaining())
	assert.Equal(t, 2, mock.GetCallCount(testutil.CmdReadFrameBuffer))
}
