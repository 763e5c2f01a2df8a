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
	"io"
	"os"
)

// The file format version the encoder writes.  This is the only
// version seen in the wild.
const (
	writerVersionMajor = 1
	writerVersionMinor = 0
)

// Encode serializes the palette as an ASE file.  Encoding a
// structurally valid palette cannot fail; the Color field of every
// entry must be non-nil.
func (p *Palette) Encode() []byte {
	b := &builder{}

	b.appendBytes(fileSignature)
	b.appendUint16(writerVersionMajor)
	b.appendUint16(writerVersionMinor)

	numBlocks := 0
	for _, item := range p.Items {
		switch item := item.(type) {
		case *Entry:
			numBlocks++
		case *Group:
			numBlocks += len(item.Entries) + 2
		}
	}
	b.appendUint32(uint32(numBlocks))

	for _, item := range p.Items {
		switch item := item.(type) {
		case *Entry:
			writeEntry(b, item)
		case *Group:
			b.appendUint16(blockGroupStart)
			lenPos := b.reserveUint32()
			bodyStart := len(b.buf)
			b.appendString(item.Name)
			b.patchUint32(lenPos, uint32(len(b.buf)-bodyStart))

			for _, e := range item.Entries {
				writeEntry(b, e)
			}

			b.appendUint16(blockGroupEnd)
			b.appendUint32(0)
		}
	}

	return b.buf
}

func writeEntry(b *builder, e *Entry) {
	b.appendUint16(blockColorEntry)
	lenPos := b.reserveUint32()
	bodyStart := len(b.buf)

	b.appendString(e.Name)
	sig := e.Color.signature()
	b.appendBytes(sig[:])
	for _, v := range e.Color.channels() {
		b.appendFloat32(v)
	}
	b.appendUint16(uint16(e.Usage))

	b.patchUint32(lenPos, uint32(len(b.buf)-bodyStart))
}

// Write writes the palette as an ASE file to w.
func (p *Palette) Write(w io.Writer) error {
	_, err := w.Write(p.Encode())
	return err
}

// Save writes the palette to the named file.  Any error returned is
// an I/O error; encoding itself cannot fail.
func (p *Palette) Save(fname string) error {
	return os.WriteFile(fname, p.Encode(), 0644)
}
