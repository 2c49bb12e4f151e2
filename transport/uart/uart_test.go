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

package uart

import (
	"errors"
	"testing"

	vc0706 "github.com/camworks/go-vc0706"
	"go.bug.st/serial"
)

// TestTransportCreation verifies basic transport creation and properties
func TestTransportCreation(t *testing.T) {
	t.Parallel()

	testPortName := "/dev/ttyUSB0"
	transport := &Transport{
		portName: testPortName,
	}

	// Verify port name is stored correctly
	if transport.PortName() != testPortName {
		t.Errorf("Expected port name %s, got %s", testPortName, transport.PortName())
	}

	// Verify transport type
	expectedType := vc0706.TransportUART
	if transport.Type() != expectedType {
		t.Errorf("Expected transport type %v, got %v", expectedType, transport.Type())
	}

	// Verify IsConnected returns false for uninitialized transport
	if transport.IsConnected() {
		t.Error("Expected IsConnected() to return false for uninitialized transport")
	}
}

// TestDisconnectedOperations verifies every operation on a closed or never
// opened port fails with ErrNotConnected instead of panicking.
func TestDisconnectedOperations(t *testing.T) {
	t.Parallel()

	transport := &Transport{portName: "/dev/ttyUSB0"}

	if err := transport.Write([]byte{0x56, 0x00, 0x26, 0x00}); !errors.Is(err, vc0706.ErrNotConnected) {
		t.Errorf("Write on disconnected transport: got %v, want ErrNotConnected", err)
	}

	if _, err := transport.ReadFull(make([]byte, 5)); !errors.Is(err, vc0706.ErrNotConnected) {
		t.Errorf("ReadFull on disconnected transport: got %v, want ErrNotConnected", err)
	}

	if err := transport.SetBaudRate(38400); !errors.Is(err, vc0706.ErrNotConnected) {
		t.Errorf("SetBaudRate on disconnected transport: got %v, want ErrNotConnected", err)
	}

	if err := transport.SetTimeout(0); !errors.Is(err, vc0706.ErrNotConnected) {
		t.Errorf("SetTimeout on disconnected transport: got %v, want ErrNotConnected", err)
	}

	// Closing twice is fine.
	if err := transport.Close(); err != nil {
		t.Errorf("Close on disconnected transport: got %v, want nil", err)
	}
}

func TestSerialMode(t *testing.T) {
	t.Parallel()

	m := mode(115200)
	if m.BaudRate != 115200 {
		t.Errorf("mode baud rate = %d, want 115200", m.BaudRate)
	}
	if m.DataBits != 8 {
		t.Errorf("mode data bits = %d, want 8", m.DataBits)
	}
	if m.Parity != serial.NoParity {
		t.Errorf("mode parity = %v, want no parity", m.Parity)
	}
	if m.StopBits != serial.OneStopBit {
		t.Errorf("mode stop bits = %v, want one", m.StopBits)
	}
}
