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
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "response timeout retryable",
			err:  ErrResponseTimeout,
			want: true,
		},
		{
			name: "wrapped response timeout retryable",
			err:  fmt.Errorf("command 0x34: %w", ErrResponseTimeout),
			want: true,
		},
		{
			name: "transport read retryable",
			err:  ErrTransportRead,
			want: true,
		},
		{
			name: "transport write retryable",
			err:  ErrTransportWrite,
			want: true,
		},
		{
			name: "timeout transport error retryable",
			err:  NewTimeoutError("ReadFull", "/dev/ttyUSB0"),
			want: true,
		},
		{
			name: "malformed response not retryable",
			err:  ErrMalformedResponse,
			want: false,
		},
		{
			name: "device unresponsive not retryable",
			err:  ErrDeviceUnresponsive,
			want: false,
		},
		{
			name: "unsupported baud rate not retryable",
			err:  ErrUnsupportedBaudRate,
			want: false,
		},
		{
			name: "invalid chunk size not retryable",
			err:  ErrInvalidChunkSize,
			want: false,
		},
		{
			name: "permanent transport error not retryable",
			err:  NewTransportError("SetBaudRate", "/dev/ttyUSB0", errors.New("no such device"), ErrorTypePermanent),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		name string
		want ErrorType
	}{
		{
			name: "typed error keeps its classification",
			err:  NewTransportError("Write", "mock", ErrTransportWrite, ErrorTypeTransient),
			want: ErrorTypeTransient,
		},
		{
			name: "wrapped typed error keeps its classification",
			err:  fmt.Errorf("failed to write command: %w", NewTimeoutError("Write", "mock")),
			want: ErrorTypeTimeout,
		},
		{
			name: "response timeout classifies as timeout",
			err:  ErrResponseTimeout,
			want: ErrorTypeTimeout,
		},
		{
			name: "unknown error is permanent",
			err:  errors.New("boom"),
			want: ErrorTypePermanent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GetErrorType(tt.err); got != tt.want {
				t.Errorf("GetErrorType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransportErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewTimeoutError("ReadFull", "/dev/ttyUSB0")
	want := "ReadFull on /dev/ttyUSB0: transport timeout"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrTransportTimeout) {
		t.Error("expected TransportError to unwrap to ErrTransportTimeout")
	}
}
