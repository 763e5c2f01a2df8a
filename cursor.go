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
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// cursor is a sequential big-endian reader over a byte buffer.  All
// reads are bounds-checked and fail with ErrUnexpectedEnd, wrapped in
// a MalformedFileError carrying the position of the failed read.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) eof() error {
	return &MalformedFileError{Pos: int64(c.pos), Err: ErrUnexpectedEnd}
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || n > len(c.data)-c.pos {
		return nil, c.eof()
	}
	buf := c.data[c.pos : c.pos+n]
	c.pos += n
	return buf, nil
}

func (c *cursor) readUint16() (uint16, error) {
	buf, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

func (c *cursor) readUint32() (uint32, error) {
	buf, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

func (c *cursor) readFloat32() (float32, error) {
	bits, err := c.readUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// readString reads a length-prefixed UTF-16BE string.  The u16 length
// is counted in UTF-16 code units and includes the terminating NUL,
// which is stripped from the result.  A length of 0 or 1 yields the
// empty string.
func (c *cursor) readString() (string, error) {
	n, err := c.readUint16()
	if err != nil {
		return "", err
	}
	buf, err := c.readBytes(2 * int(n))
	if err != nil {
		return "", err
	}
	if n <= 1 {
		return "", nil
	}
	units := make([]uint16, n-1)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(buf[2*i:])
	}
	return string(utf16.Decode(units)), nil
}

// builder accumulates the big-endian output of the encoder.  Writes
// append; length fields which are only known after the fact are
// handled by reserving four bytes and patching them later.
type builder struct {
	buf []byte
}

func (b *builder) appendBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *builder) appendUint16(v uint16) {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
}

func (b *builder) appendUint32(v uint32) {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
}

func (b *builder) appendFloat32(v float32) {
	b.buf = binary.BigEndian.AppendUint32(b.buf, math.Float32bits(v))
}

// appendString writes s as a length-prefixed, NUL-terminated UTF-16BE
// string, the inverse of cursor.readString.
func (b *builder) appendString(s string) {
	units := utf16.Encode([]rune(s))
	b.appendUint16(uint16(len(units) + 1))
	for _, u := range units {
		b.appendUint16(u)
	}
	b.appendUint16(0)
}

// reserveUint32 appends a four byte placeholder and returns its
// offset, to be filled in by patchUint32.
func (b *builder) reserveUint32() int {
	pos := len(b.buf)
	b.buf = append(b.buf, 0, 0, 0, 0)
	return pos
}

func (b *builder) patchUint32(pos int, v uint32) {
	binary.BigEndian.PutUint32(b.buf[pos:], v)
}
