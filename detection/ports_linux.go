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

//go:build linux

package detection

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// uartPrefixes covers USB serial adapters, CDC ACM devices, the Raspberry
// Pi PL011/mini UARTs, and plain platform UARTs.
var uartPrefixes = []string{"ttyUSB", "ttyACM", "ttyAMA", "ttyS"}

// likelyCameraPort reports whether name looks like a usable UART and is
// backed by an actual character device node.
func likelyCameraPort(name string) bool {
	base := filepath.Base(name)
	matched := false
	for _, prefix := range uartPrefixes {
		if strings.HasPrefix(base, prefix) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFCHR
}
