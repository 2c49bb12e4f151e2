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

package frame

import (
	"bytes"
	"testing"
)

func TestCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []byte
		want []byte
		cmd  byte
	}{
		{
			name: "reset with single arg",
			cmd:  0x26,
			args: []byte{0x00},
			want: []byte{0x56, 0x00, 0x26, 0x00},
		},
		{
			name: "no args",
			cmd:  0x11,
			args: nil,
			want: []byte{0x56, 0x00, 0x11},
		},
		{
			name: "frame buffer read args",
			cmd:  0x32,
			args: []byte{0x0C, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x60, 0x00, 0x00, 0x00, 0x20, 0x00, 0x0A},
			want: []byte{0x56, 0x00, 0x32, 0x0C, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x60, 0x00, 0x00, 0x00, 0x20, 0x00, 0x0A},
		},
	}

	for _, tt := range tests {
		tt := tt // capture loop variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Command(tt.cmd, tt.args); !bytes.Equal(got, tt.want) {
				t.Errorf("Command() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestVerifyResponse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		resp []byte
		cmd  byte
		want bool
	}{
		{
			name: "valid reset ack",
			resp: []byte{0x76, 0x00, 0x26, 0x00, 0x00},
			cmd:  0x26,
			want: true,
		},
		{
			name: "wrong ack byte",
			resp: []byte{0x56, 0x00, 0x26, 0x00, 0x00},
			cmd:  0x26,
			want: false,
		},
		{
			name: "wrong serial id",
			resp: []byte{0x76, 0x01, 0x26, 0x00, 0x00},
			cmd:  0x26,
			want: false,
		},
		{
			name: "opcode echo mismatch",
			resp: []byte{0x76, 0x00, 0x36, 0x00, 0x00},
			cmd:  0x26,
			want: false,
		},
		{
			name: "non-zero status",
			resp: []byte{0x76, 0x00, 0x26, StatusCannotExec, 0x00},
			cmd:  0x26,
			want: false,
		},
		{
			name: "too short",
			resp: []byte{0x76, 0x00, 0x26},
			cmd:  0x26,
			want: false,
		},
		{
			name: "header only is enough",
			resp: []byte{0x76, 0x00, 0x34, 0x00},
			cmd:  0x34,
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt // capture loop variable
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VerifyResponse(tt.resp, tt.cmd); got != tt.want {
				t.Errorf("VerifyResponse() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestVerifyResponseSingleByteMutations flips each prefix byte of a valid
// response in turn; every mutation must fail the gate.
func TestVerifyResponseSingleByteMutations(t *testing.T) {
	t.Parallel()
	valid := []byte{0x76, 0x00, 0x32, 0x00, 0x00}
	for i := 0; i < HeaderLen; i++ {
		mutated := append([]byte(nil), valid...)
		mutated[i] ^= 0xFF
		if VerifyResponse(mutated, 0x32) {
			t.Errorf("VerifyResponse accepted response with byte %d mutated: % X", i, mutated)
		}
	}
}
