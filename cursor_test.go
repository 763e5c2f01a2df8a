// seehuhn.de/go/ase - read and write Adobe Swatch Exchange files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ase

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadString(t *testing.T) {
	cases := []struct {
		in  []byte
		out string
	}{
		{[]byte{0x00, 0x00}, ""},
		{[]byte{0x00, 0x01, 0x00, 0x00}, ""},
		{[]byte{0x00, 0x04, 0x00, 'R', 0x00, 'e', 0x00, 'd', 0x00, 0x00}, "Red"},
		// "Grün", with a non-ASCII BMP character
		{[]byte{0x00, 0x05, 0x00, 'G', 0x00, 'r', 0x00, 0xFC, 0x00, 'n', 0x00, 0x00}, "Grün"},
		// U+1F600 as a surrogate pair
		{[]byte{0x00, 0x03, 0xD8, 0x3D, 0xDE, 0x00, 0x00, 0x00}, "\U0001F600"},
	}
	for i, test := range cases {
		c := &cursor{data: test.in}
		s, err := c.readString()
		if err != nil {
			t.Errorf("%d: unexpected error %q", i, err)
			continue
		}
		if s != test.out {
			t.Errorf("%d: expected %q but got %q", i, test.out, s)
		}
		if c.pos != len(test.in) {
			t.Errorf("%d: %d bytes left over", i, len(test.in)-c.pos)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"Red",
		"Warm Colors",
		"Grün",
		"日本語",
		"\U0001F3A8 palette",
	}
	for _, in := range cases {
		b := &builder{}
		b.appendString(in)
		c := &cursor{data: b.buf}
		out, err := c.readString()
		if err != nil {
			t.Errorf("%q: unexpected error %q", in, err)
			continue
		}
		if out != in {
			t.Errorf("expected %q but got %q", in, out)
		}
	}
}

func TestReadTruncated(t *testing.T) {
	cases := []func(c *cursor) error{
		func(c *cursor) error { _, err := c.readUint16(); return err },
		func(c *cursor) error { _, err := c.readUint32(); return err },
		func(c *cursor) error { _, err := c.readFloat32(); return err },
		func(c *cursor) error { _, err := c.readBytes(2); return err },
		func(c *cursor) error { _, err := c.readString(); return err },
	}
	for i, read := range cases {
		c := &cursor{data: []byte{0x00}}
		err := read(c)
		if !errors.Is(err, ErrUnexpectedEnd) {
			t.Errorf("%d: expected ErrUnexpectedEnd but got %v", i, err)
		}
		var mErr *MalformedFileError
		if !errors.As(err, &mErr) {
			t.Errorf("%d: error is not a *MalformedFileError", i)
		}
	}

	// a string whose length field promises more code units than the
	// buffer holds
	c := &cursor{data: []byte{0x00, 0x10, 0x00, 'x'}}
	_, err := c.readString()
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd but got %v", err)
	}
}

func TestReservePatch(t *testing.T) {
	b := &builder{}
	b.appendUint16(0xC001)
	pos := b.reserveUint32()
	start := len(b.buf)
	b.appendUint16(0x1234)
	b.appendFloat32(1.0)
	b.patchUint32(pos, uint32(len(b.buf)-start))

	expected := []byte{
		0xC0, 0x01,
		0x00, 0x00, 0x00, 0x06,
		0x12, 0x34,
		0x3F, 0x80, 0x00, 0x00,
	}
	if !bytes.Equal(b.buf, expected) {
		t.Errorf("expected % x but got % x", expected, b.buf)
	}
}
