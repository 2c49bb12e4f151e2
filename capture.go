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
	"bytes"
	"context"
	"io"
)

// CapturePicture takes a still and returns the complete JPEG bytes.
func (d *Device) CapturePicture() ([]byte, error) {
	return d.CapturePictureContext(context.Background())
}

// CapturePictureContext is CapturePicture with context support.
func (d *Device) CapturePictureContext(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.CaptureToContext(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CaptureTo takes a still and streams the JPEG to w, returning the number
// of bytes written. The camera is resumed to live video whether or not the
// capture succeeds. A return of (0, nil) means the camera reported an
// empty frame.
func (d *Device) CaptureTo(w io.Writer) (int64, error) {
	return d.CaptureToContext(context.Background(), w)
}

// CaptureToContext is CaptureTo with context support. The context is
// checked between chunks; there is no in-protocol cancellation, so a
// blocked read still runs to the transport timeout.
func (d *Device) CaptureToContext(ctx context.Context, w io.Writer) (written int64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := d.TakePicture(); err != nil {
		return 0, err
	}
	defer func() {
		// Leave the camera in a consistent state even on failure.
		if rerr := d.ResumeVideo(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	length, err := d.FrameLength()
	if err != nil {
		return 0, err
	}
	if length == 0 {
		debugln("camera reported an empty frame")
		return 0, nil
	}

	reader := d.FrameReader(length)
	buf := make([]byte, MaxChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, rerr := reader.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return written, werr
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
