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

//go:build darwin

package detection

import (
	"path/filepath"
	"strings"
)

// likelyCameraPort prefers callout devices (cu.*) for USB serial adapters;
// the tty.* variants block on DCD and are unsuitable for a 3-wire camera.
func likelyCameraPort(name string) bool {
	base := filepath.Base(name)
	return strings.HasPrefix(base, "cu.usbserial") ||
		strings.HasPrefix(base, "cu.usbmodem") ||
		strings.HasPrefix(base, "cu.SLAB_USBtoUART") ||
		strings.HasPrefix(base, "cu.wchusbserial")
}
