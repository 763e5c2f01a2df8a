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
	"io"
	"os"
)

var fileSignature = []byte("ASEF")

// The block type tags used in the file.
const (
	blockColorEntry uint16 = 0x0001
	blockGroupStart uint16 = 0xC001
	blockGroupEnd   uint16 = 0xC002
)

// Open reads the named ASE file and returns the decoded palette.
func Open(fname string) (*Palette, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Read decodes an ASE file from r.
func Read(r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses the given bytes as an ASE file.
//
// Any structural problem aborts the decode: the function either
// returns a complete palette or an error of type
// [*MalformedFileError], never a partial result.
func Decode(data []byte) (*Palette, error) {
	c := &cursor{data: data}

	sig, err := c.readBytes(4)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(sig, fileSignature) {
		return nil, &MalformedFileError{Err: ErrBadSignature}
	}

	major, err := c.readUint16()
	if err != nil {
		return nil, err
	}
	minor, err := c.readUint16()
	if err != nil {
		return nil, err
	}
	numBlocks, err := c.readUint32()
	if err != nil {
		return nil, err
	}

	p := &Palette{
		Version: Version{Major: major, Minor: minor},
	}

	// The format allows one level of grouping only, so the currently
	// open group is a single slot rather than a stack.
	var open *Group

	for i := uint32(0); i < numBlocks; i++ {
		blockPos := c.pos

		tag, err := c.readUint16()
		if err != nil {
			return nil, err
		}
		length, err := c.readUint32()
		if err != nil {
			return nil, err
		}

		if tag != blockColorEntry && tag != blockGroupStart && tag != blockGroupEnd {
			return nil, &MalformedFileError{
				Pos: int64(blockPos),
				Err: &UnknownBlockTypeError{Tag: tag},
			}
		}

		bodyEnd := c.pos + int(length)
		if int(length) < 0 || bodyEnd > len(data) {
			return nil, &MalformedFileError{
				Pos: int64(blockPos),
				Err: ErrUnexpectedEnd,
			}
		}

		switch tag {
		case blockGroupStart:
			if open != nil {
				return nil, &MalformedFileError{
					Pos: int64(blockPos),
					Err: ErrNestedGroup,
				}
			}
			name, err := c.readString()
			if err != nil {
				return nil, err
			}
			open = &Group{Name: name}

		case blockGroupEnd:
			if open == nil {
				return nil, &MalformedFileError{
					Pos: int64(blockPos),
					Err: ErrUnmatchedGroupEnd,
				}
			}
			p.Items = append(p.Items, open)
			open = nil

		case blockColorEntry:
			entry, err := readEntry(c)
			if err != nil {
				return nil, err
			}
			if open != nil {
				open.Entries = append(open.Entries, entry)
			} else {
				p.Items = append(p.Items, entry)
			}
		}

		if c.pos > bodyEnd {
			return nil, &MalformedFileError{
				Pos: int64(blockPos),
				Err: errBlockLength,
			}
		}
		// Some writers pad block bodies; the declared length is
		// authoritative for where the next block starts.
		c.pos = bodyEnd
	}

	if open != nil {
		return nil, &MalformedFileError{
			Pos: int64(c.pos),
			Err: ErrUnterminatedGroup,
		}
	}

	return p, nil
}

func readEntry(c *cursor) (*Entry, error) {
	name, err := c.readString()
	if err != nil {
		return nil, err
	}

	sigPos := c.pos
	sig, err := c.readBytes(4)
	if err != nil {
		return nil, err
	}

	var numChannels int
	switch {
	case bytes.Equal(sig, sigGray[:]):
		numChannels = 1
	case bytes.Equal(sig, sigRGB[:]):
		numChannels = 3
	case bytes.Equal(sig, sigCMYK[:]):
		numChannels = 4
	case bytes.Equal(sig, sigLab[:]):
		numChannels = 3
	default:
		e := &UnknownColorModelError{}
		copy(e.Sig[:], sig)
		return nil, &MalformedFileError{Pos: int64(sigPos), Err: e}
	}

	var ch [4]float32
	for i := 0; i < numChannels; i++ {
		ch[i], err = c.readFloat32()
		if err != nil {
			return nil, err
		}
	}

	var col Color
	switch {
	case bytes.Equal(sig, sigGray[:]):
		col = Gray{Y: ch[0]}
	case bytes.Equal(sig, sigRGB[:]):
		col = RGB{R: ch[0], G: ch[1], B: ch[2]}
	case bytes.Equal(sig, sigCMYK[:]):
		col = CMYK{C: ch[0], M: ch[1], Y: ch[2], K: ch[3]}
	case bytes.Equal(sig, sigLab[:]):
		col = Lab{L: ch[0], A: ch[1], B: ch[2]}
	}

	code, err := c.readUint16()
	if err != nil {
		return nil, err
	}
	usage := Usage(code)
	if usage > Normal {
		// Unknown usage codes are mapped to Normal so that files
		// written by future tools still load.
		usage = Normal
	}

	return &Entry{Name: name, Color: col, Usage: usage}, nil
}
