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

import "time"

// Transport defines the byte-oriented serial channel used to talk to a
// VC0706 camera. The stock implementation is transport/uart; MockTransport
// covers tests.
type Transport interface {
	// Write sends p to the device in full, blocking until written.
	Write(p []byte) error

	// ReadFull fills p with up to len(p) bytes within the configured read
	// timeout and returns the count actually read. A short count signals a
	// timeout, not a transport fault.
	ReadFull(p []byte) (int, error)

	// SetBaudRate reconfigures the local line speed.
	SetBaudRate(baud int) error

	// SetTimeout sets the read timeout for the transport
	SetTimeout(timeout time.Duration) error

	// Close closes the transport connection
	Close() error

	// IsConnected returns true if the transport is connected
	IsConnected() bool

	// Type returns the transport type
	Type() TransportType
}

// TransportType represents the type of transport
type TransportType string

const (
	// TransportUART represents UART/serial transport. The VC0706 has no
	// other control interface.
	TransportUART TransportType = "uart"
	// TransportMock represents a mock transport for testing
	TransportMock TransportType = "mock"
)
