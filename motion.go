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
	"fmt"

	"github.com/camworks/go-vc0706/internal/frame"
)

// Motion detection pass-throughs. These wrap the raw opcodes without any
// session state; the hard protocol core is the capture path.

// SetMotionDetection enables or disables motion detection notifications
// on the camera's UART.
func (d *Device) SetMotionDetection(enabled bool) error {
	flag := byte(0x00)
	if enabled {
		flag = 0x01
	}
	if _, err := d.runCommand(cmdCommMotionCtrl, []byte{0x01, flag}, ackResponseLen, true); err != nil {
		return fmt.Errorf("failed to set motion detection: %w", err)
	}
	return nil
}

// MotionDetection reports whether motion detection is currently enabled.
func (d *Device) MotionDetection() (bool, error) {
	resp, err := d.runCommand(cmdCommMotionStatus, []byte{0x00}, motionStatusResponseLen, true)
	if err != nil {
		return false, fmt.Errorf("failed to read motion detection status: %w", err)
	}
	return resp[5] == 0x01, nil
}

// MotionDetected polls for an unsolicited motion notification. It returns
// false with a nil error when the camera has not sent one within the read
// timeout.
func (d *Device) MotionDetected() (bool, error) {
	n, err := d.transport.ReadFull(d.buf)
	if err != nil {
		return false, fmt.Errorf("failed to read motion notification: %w", err)
	}
	if n < frame.HeaderLen {
		return false, nil
	}
	return frame.VerifyResponse(d.buf[:n], cmdCommMotionDetected), nil
}
