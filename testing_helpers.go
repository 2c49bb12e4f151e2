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
	"sync"
	"time"
)

// WriteRecord captures one frame written to a MockTransport together with
// the line speed in effect at the time. The baud snapshot lets tests
// assert ordering rules such as "camera acknowledged before the local
// line switched".
type WriteRecord struct {
	Data     []byte
	BaudRate int
}

// MockTransport is an in-memory Transport for tests. Wire responses are
// scripted per opcode; when a scripted command frame is written, its
// response bytes are appended to an internal read queue that ReadFull
// drains, mimicking the camera's half-duplex behavior.
type MockTransport struct {
	responses    map[byte][]byte
	errors       map[byte]error
	calls        map[byte]int
	acceptBauds  map[int]bool
	responseFunc func(cmd byte, args []byte) []byte
	readQueue    []byte
	writes       []WriteRecord
	baudHistory  []int
	baudRate     int
	timeout      time.Duration
	mu           sync.Mutex
	closed       bool
}

// NewMockTransport creates a mock transport with no scripted responses.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		responses: make(map[byte][]byte),
		errors:    make(map[byte]error),
		calls:     make(map[byte]int),
		timeout:   time.Second,
	}
}

// SetResponse scripts the full wire response (header, payload and any
// trailing envelope) the mock returns for cmd.
func (m *MockTransport) SetResponse(cmd byte, response []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[cmd] = append([]byte(nil), response...)
}

// SetResponseFunc scripts a dynamic response built from the command and
// its argument bytes. It takes precedence over SetResponse.
func (m *MockTransport) SetResponseFunc(fn func(cmd byte, args []byte) []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responseFunc = fn
}

// SetError makes writes of cmd fail with err.
func (m *MockTransport) SetError(cmd byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[cmd] = err
}

// SetAcceptedBauds restricts the mock to answering only at the given line
// speeds, mimicking a camera whose working rate must be discovered.
func (m *MockTransport) SetAcceptedBauds(bauds ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acceptBauds = make(map[int]bool, len(bauds))
	for _, b := range bauds {
		m.acceptBauds[b] = true
	}
}

// QueueRead appends raw bytes to the read queue, for unsolicited traffic
// such as motion notifications.
func (m *MockTransport) QueueRead(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readQueue = append(m.readQueue, data...)
}

// GetCallCount returns how many command frames for cmd were written.
func (m *MockTransport) GetCallCount(cmd byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[cmd]
}

// Writes returns every frame written so far.
func (m *MockTransport) Writes() []WriteRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]WriteRecord(nil), m.writes...)
}

// CurrentBaudRate returns the last rate set with SetBaudRate.
func (m *MockTransport) CurrentBaudRate() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.baudRate
}

// BaudHistory returns every rate set with SetBaudRate, in order.
func (m *MockTransport) BaudHistory() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.baudHistory...)
}

// Write records the frame and, if it parses as a command the mock has a
// script for, queues the response bytes for subsequent reads.
func (m *MockTransport) Write(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrNotConnected
	}
	m.writes = append(m.writes, WriteRecord{
		Data:     append([]byte(nil), p...),
		BaudRate: m.baudRate,
	})
	if len(p) < 3 || p[0] != 0x56 {
		return nil
	}
	cmd := p[2]
	m.calls[cmd]++
	if err := m.errors[cmd]; err != nil {
		return err
	}
	if m.acceptBauds != nil && !m.acceptBauds[m.baudRate] {
		// Camera is listening at a different speed; it stays silent.
		return nil
	}
	if m.responseFunc != nil {
		m.readQueue = append(m.readQueue, m.responseFunc(cmd, p[3:])...)
		return nil
	}
	if resp, ok := m.responses[cmd]; ok {
		m.readQueue = append(m.readQueue, resp...)
	}
	return nil
}

// ReadFull serves queued bytes. An empty queue yields a zero count, the
// same shape as a serial read timeout.
func (m *MockTransport) ReadFull(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrNotConnected
	}
	n := copy(p, m.readQueue)
	m.readQueue = m.readQueue[n:]
	return n, nil
}

// SetBaudRate records the new line speed.
func (m *MockTransport) SetBaudRate(baud int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrNotConnected
	}
	m.baudRate = baud
	m.baudHistory = append(m.baudHistory, baud)
	return nil
}

// SetTimeout records the read timeout.
func (m *MockTransport) SetTimeout(timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
	return nil
}

// Close marks the transport as closed.
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsConnected returns true until Close is called.
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Type returns TransportMock
func (*MockTransport) Type() TransportType {
	return TransportMock
}
