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
)

// Protocol errors
var (
	// ErrDeviceUnresponsive means the reset/baud ladder was exhausted
	// without a single valid response. Almost always a wiring fault.
	ErrDeviceUnresponsive = errors.New("no response from camera, check wiring")
	// ErrResponseTimeout means a single exchange returned fewer bytes than
	// expected. Callers may retry at a higher level.
	ErrResponseTimeout = errors.New("response timeout")
	// ErrMalformedResponse means the 4-byte response prefix did not match.
	// Indicates protocol desync or line noise.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnsupportedBaudRate means the requested rate is not one of the
	// five speeds the firmware knows.
	ErrUnsupportedBaudRate = errors.New("unsupported baud rate")
	// ErrInvalidChunkSize means a frame buffer read size violated the
	// firmware contract (positive multiple of 4, at most 100 bytes, room
	// for the chunk envelope in the receive buffer).
	ErrInvalidChunkSize = errors.New("invalid chunk size")
	// ErrInvalidImageSize means the size byte is not one of the three
	// supported resolutions.
	ErrInvalidImageSize = errors.New("invalid image size")
)

// Transport errors
var (
	ErrTransportRead    = errors.New("transport read failed")
	ErrTransportWrite   = errors.New("transport write failed")
	ErrTransportTimeout = errors.New("transport timeout")
	ErrNotConnected     = errors.New("transport not connected")
)

// ErrorType classifies an error for retry decisions at higher layers.
type ErrorType int

// Error classifications
const (
	// ErrorTypePermanent errors will not succeed on retry
	ErrorTypePermanent ErrorType = iota
	// ErrorTypeTransient errors may succeed on retry
	ErrorTypeTransient
	// ErrorTypeTimeout errors are transient timeouts
	ErrorTypeTimeout
)

// TransportError wraps a transport-level failure with operation context
type TransportError struct {
	Err  error
	Op   string
	Port string
	Type ErrorType
}

func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError with the given classification
func NewTransportError(op, port string, err error, errType ErrorType) *TransportError {
	return &TransportError{Op: op, Port: port, Err: err, Type: errType}
}

// NewTimeoutError creates a TransportError for a read timeout
func NewTimeoutError(op, port string) *TransportError {
	return &TransportError{Op: op, Port: port, Err: ErrTransportTimeout, Type: ErrorTypeTimeout}
}

// GetErrorType returns the classification of err. Unknown errors are
// treated as permanent.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Type
	}
	switch {
	case errors.Is(err, ErrTransportTimeout), errors.Is(err, ErrResponseTimeout):
		return ErrorTypeTimeout
	case errors.Is(err, ErrTransportRead), errors.Is(err, ErrTransportWrite):
		return ErrorTypeTransient
	default:
		return ErrorTypePermanent
	}
}

// IsRetryable reports whether a higher layer may reasonably retry the
// operation that produced err. The driver itself never retries beyond the
// Init baud ladder.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch GetErrorType(err) {
	case ErrorTypeTransient, ErrorTypeTimeout:
		return true
	default:
		return false
	}
}
