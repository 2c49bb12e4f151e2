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

// Package detection lists serial ports that plausibly have a VC0706
// camera attached. The camera is a bare TTL device with no USB identity
// of its own, so detection is necessarily heuristic: it enumerates the
// host's serial ports and filters out names that cannot be UARTs. Whether
// a camera actually answers is only known after Device.Init.
package detection

import (
	"fmt"

	"go.bug.st/serial"
)

// DeviceInfo describes a candidate serial port.
type DeviceInfo struct {
	// Path is the port path usable with transport/uart.New.
	Path string
}

// DetectAll returns every serial port on the host that looks like a
// usable UART, in enumeration order. An empty slice with a nil error
// means no candidates were found.
func DetectAll() ([]DeviceInfo, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	var devices []DeviceInfo
	for _, port := range ports {
		if !likelyCameraPort(port) {
			continue
		}
		devices = append(devices, DeviceInfo{Path: port})
	}
	return devices, nil
}
