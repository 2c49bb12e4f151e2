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
	"fmt"
	"strings"
	"time"

	"github.com/camworks/go-vc0706/internal/frame"
)

const (
	// DefaultBufferSize is the scratch receive buffer size. The firmware
	// never hands back more than 100 bytes in a single exchange, and the
	// protocol requires at least this much.
	DefaultBufferSize = 100

	defaultTimeout = 500 * time.Millisecond

	// resetAttempts is the number of full ladder walks Init performs
	// before declaring the camera unresponsive.
	resetAttempts = 2

	// Expected response lengths per opcode
	ackResponseLen          = 5
	setPortResponseLen      = 7
	imageSizeResponseLen    = 6
	frameLenResponseLen     = 9
	motionStatusResponseLen = 6
)

// DeviceConfig contains configuration options for the Device
type DeviceConfig struct {
	// BaudRates is the candidate ladder probed by Init, in order.
	BaudRates []int
	// BufferSize is the scratch receive buffer size in bytes.
	BufferSize int
	// ChunkSize is the frame buffer chunk size used by captures.
	ChunkSize int
	// Timeout is the per-exchange read timeout.
	Timeout time.Duration
}

// DefaultDeviceConfig returns default device configuration
func DefaultDeviceConfig() *DeviceConfig {
	return &DeviceConfig{
		BaudRates:  DefaultBaudRates,
		BufferSize: DefaultBufferSize,
		ChunkSize:  DefaultChunkSize,
		Timeout:    defaultTimeout,
	}
}

// Device represents a VC0706 camera attached to a serial transport.
//
// Thread Safety: Device is NOT thread-safe. The protocol is strictly
// half-duplex with exactly one in-flight command/response pair, and the
// receive buffer is shared across all calls. All methods must be called
// from a single goroutine or protected with external synchronization -
// one camera, one lock.
type Device struct {
	transport Transport
	config    *DeviceConfig
	buf       []byte
	baudRate  int
	framePtr  uint32
	frameLen  uint32
}

// New creates a new VC0706 device on the given transport. It does not
// touch the wire; call Init to run the reset handshake.
func New(transport Transport, opts ...Option) (*Device, error) {
	device := &Device{
		transport: transport,
		config:    DefaultDeviceConfig(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	if device.buf == nil {
		device.buf = make([]byte, device.config.BufferSize)
	}

	return device, nil
}

// Transport returns the underlying transport
func (d *Device) Transport() Transport {
	return d.transport
}

// BaudRate returns the working baud rate discovered by Init, or the rate
// last set with SetBaudRate. Zero before Init succeeds.
func (d *Device) BaudRate() int {
	return d.baudRate
}

// Init resets the camera and discovers its working baud rate.
//
// The camera's power-on speed is unknown, so Init walks the candidate
// ladder in ascending order, twice, issuing a reset at each speed. The
// first speed that yields a valid reset response is adopted. Exhausting
// the ladder returns ErrDeviceUnresponsive; that is a wiring or hardware
// fault and is not retried here.
func (d *Device) Init() error {
	return d.InitContext(context.Background())
}

// InitContext is Init with context support. The context is checked between
// probe attempts; a blocked read still runs to the transport timeout.
func (d *Device) InitContext(ctx context.Context) error {
	for attempt := 0; attempt < resetAttempts; attempt++ {
		for _, baud := range d.config.BaudRates {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := d.transport.SetBaudRate(baud); err != nil {
				return fmt.Errorf("failed to set transport baud rate: %w", err)
			}
			if _, err := d.runCommand(cmdReset, []byte{0x00}, ackResponseLen, true); err != nil {
				debugf("reset probe at %d baud: %v", baud, err)
				continue
			}
			d.baudRate = baud
			debugf("camera responding at %d baud", baud)
			return nil
		}
	}
	return ErrDeviceUnresponsive
}

// runCommand performs one half-duplex exchange: optionally drain stale
// bytes, write the command frame, read exactly respLen bytes, verify the
// response prefix. The returned slice aliases the scratch buffer and is
// only valid until the next exchange.
func (d *Device) runCommand(cmd byte, args []byte, respLen int, flush bool) ([]byte, error) {
	if flush {
		// Best-effort drain of bytes left over from a previous, possibly
		// timed out, exchange. An empty queue is fine.
		_, _ = d.transport.ReadFull(d.buf)
	}

	if err := d.transport.Write(frame.Command(cmd, args)); err != nil {
		return nil, fmt.Errorf("failed to write command %#02x: %w", cmd, err)
	}

	n, err := d.readResponse(respLen)
	if err != nil {
		return nil, err
	}
	if n != respLen {
		return nil, fmt.Errorf("command %#02x: got %d of %d response bytes: %w",
			cmd, n, respLen, ErrResponseTimeout)
	}
	if !frame.VerifyResponse(d.buf[:respLen], cmd) {
		return nil, fmt.Errorf("command %#02x: bad response prefix % X: %w",
			cmd, d.buf[:frame.HeaderLen], ErrMalformedResponse)
	}
	return d.buf[:respLen], nil
}

// readResponse fills the scratch buffer with up to n bytes and returns the
// count actually read. Short reads are reported by count, not error.
func (d *Device) readResponse(n int) (int, error) {
	if n > len(d.buf) {
		n = len(d.buf)
	}
	read, err := d.transport.ReadFull(d.buf[:n])
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}
	return read, nil
}

// SetBaudRate switches both the camera and the local transport to baud,
// which must be one of 9600, 19200, 38400, 57600 or 115200.
//
// Ordering matters: the camera acknowledges the SET_PORT command at the
// old speed before the local line switches. Reversing that desynchronizes
// the two ends permanently.
func (d *Device) SetBaudRate(baud int) error {
	divider, ok := baudDividers[baud]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedBaudRate, baud)
	}
	args := []byte{0x03, 0x01, byte(divider >> 8), byte(divider)}
	if _, err := d.runCommand(cmdSetPort, args, setPortResponseLen, true); err != nil {
		return fmt.Errorf("failed to set camera baud rate: %w", err)
	}
	if err := d.transport.SetBaudRate(baud); err != nil {
		return fmt.Errorf("failed to set transport baud rate: %w", err)
	}
	d.baudRate = baud
	return nil
}

// Version returns the camera's firmware version string, e.g. "VC0703 1.00".
func (d *Device) Version() (string, error) {
	// The version payload is variable length, so this exchange reads
	// whatever arrives within the timeout instead of an exact count.
	_, _ = d.transport.ReadFull(d.buf) // drain stale bytes
	if err := d.transport.Write(frame.Command(cmdGetVersion, []byte{0x01})); err != nil {
		return "", fmt.Errorf("failed to write command %#02x: %w", cmdGetVersion, err)
	}
	n, err := d.transport.ReadFull(d.buf)
	if err != nil {
		return "", fmt.Errorf("failed to read version: %w", err)
	}
	if n < frame.EnvelopeLen {
		return "", fmt.Errorf("version query: got %d of %d response bytes: %w",
			n, frame.EnvelopeLen, ErrResponseTimeout)
	}
	if !frame.VerifyResponse(d.buf[:n], cmdGetVersion) {
		return "", fmt.Errorf("version query: bad response prefix % X: %w",
			d.buf[:frame.HeaderLen], ErrMalformedResponse)
	}
	payload := d.buf[frame.EnvelopeLen:n]
	if pl := int(d.buf[4]); pl <= len(payload) {
		payload = payload[:pl]
	}
	return strings.TrimRight(string(payload), "\x00"), nil
}

// ImageSize returns the configured capture resolution.
func (d *Device) ImageSize() (ImageSize, error) {
	resp, err := d.runCommand(cmdReadData, []byte{0x04, 0x04, 0x01, 0x00, 0x19}, imageSizeResponseLen, true)
	if err != nil {
		return 0, fmt.Errorf("failed to read image size: %w", err)
	}
	size := ImageSize(resp[5])
	if !size.valid() {
		// Three byte values are legal; anything else is a corrupt
		// exchange, not a fourth mode.
		return 0, fmt.Errorf("image size byte %#02x: %w", resp[5], ErrMalformedResponse)
	}
	return size, nil
}

// SetImageSize sets the capture resolution. The camera applies the new
// size only after its next reset, so follow this with Init (or a power
// cycle) before capturing.
func (d *Device) SetImageSize(size ImageSize) error {
	if !size.valid() {
		return fmt.Errorf("%w: %#02x", ErrInvalidImageSize, byte(size))
	}
	args := []byte{0x05, 0x04, 0x01, 0x00, 0x19, byte(size)}
	if _, err := d.runCommand(cmdWriteData, args, ackResponseLen, true); err != nil {
		return fmt.Errorf("failed to set image size: %w", err)
	}
	return nil
}

// SetTimeout sets the per-exchange read timeout.
func (d *Device) SetTimeout(timeout time.Duration) error {
	d.config.Timeout = timeout
	if err := d.transport.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout on transport: %w", err)
	}
	return nil
}

// Close closes the device connection
func (d *Device) Close() error {
	if d.transport != nil {
		if err := d.transport.Close(); err != nil {
			return fmt.Errorf("failed to close transport: %w", err)
		}
	}
	return nil
}
