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

// Package uart provides the serial port transport for VC0706 cameras.
package uart

import (
	"fmt"
	"time"

	vc0706 "github.com/camworks/go-vc0706"
	"go.bug.st/serial"
)

const (
	// defaultBaudRate is only the opening speed; the device Init sequence
	// reconfigures the line while probing the ladder.
	defaultBaudRate = 38400
	defaultTimeout  = 500 * time.Millisecond
)

// Transport implements the vc0706.Transport interface over a serial port
type Transport struct {
	port     serial.Port
	portName string
	baudRate int
	timeout  time.Duration
}

// New opens portName in 8N1 mode at the default probe speed.
func New(portName string) (*Transport, error) {
	port, err := serial.Open(portName, mode(defaultBaudRate))
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(defaultTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", portName, err)
	}
	return &Transport{
		port:     port,
		portName: portName,
		baudRate: defaultBaudRate,
		timeout:  defaultTimeout,
	}, nil
}

func mode(baud int) *serial.Mode {
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// Write sends p to the camera in full.
func (t *Transport) Write(p []byte) error {
	if t.port == nil {
		return vc0706.ErrNotConnected
	}
	n, err := t.port.Write(p)
	if err != nil {
		return vc0706.NewTransportError("Write", t.portName, err, vc0706.ErrorTypeTransient)
	}
	if n != len(p) {
		return vc0706.NewTransportError("Write", t.portName, vc0706.ErrTransportWrite, vc0706.ErrorTypeTransient)
	}
	return nil
}

// ReadFull fills p until it is full or the read timeout elapses with no
// further bytes, returning the count actually read. A short count is the
// caller's signal of a timed-out exchange, not an error.
func (t *Transport) ReadFull(p []byte) (int, error) {
	if t.port == nil {
		return 0, vc0706.ErrNotConnected
	}
	total := 0
	for total < len(p) {
		n, err := t.port.Read(p[total:])
		if err != nil {
			return total, vc0706.NewTransportError("ReadFull", t.portName, err, vc0706.ErrorTypeTransient)
		}
		if n == 0 {
			// Read timeout with nothing queued.
			break
		}
		total += n
	}
	return total, nil
}

// SetBaudRate reconfigures the local line speed. The camera side must have
// been switched (or probed) separately; see Device.SetBaudRate for the
// ordering contract.
func (t *Transport) SetBaudRate(baud int) error {
	if t.port == nil {
		return vc0706.ErrNotConnected
	}
	if err := t.port.SetMode(mode(baud)); err != nil {
		return vc0706.NewTransportError("SetBaudRate", t.portName, err, vc0706.ErrorTypePermanent)
	}
	t.baudRate = baud
	return nil
}

// SetTimeout sets the serial read timeout.
func (t *Transport) SetTimeout(timeout time.Duration) error {
	if t.port == nil {
		return vc0706.ErrNotConnected
	}
	if err := t.port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set read timeout on %s: %w", t.portName, err)
	}
	t.timeout = timeout
	return nil
}

// Close closes the serial port.
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", t.portName, err)
	}
	return nil
}

// IsConnected returns true if the port is open.
func (t *Transport) IsConnected() bool {
	return t.port != nil
}

// Type returns the transport type
func (*Transport) Type() vc0706.TransportType {
	return vc0706.TransportUART
}

// PortName returns the serial port path the transport was opened on.
func (t *Transport) PortName() string {
	return t.portName
}

// BaudRate returns the current local line speed.
func (t *Transport) BaudRate() int {
	return t.baudRate
}
