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

// Package ase reads and writes Adobe Swatch Exchange (ASE) files.
//
// ASE files are binary containers for named colors ("swatches"),
// optionally collected into named groups.  The file is a flat sequence
// of blocks; groups cannot nest.  Each color is stored in one of four
// color models (Gray, RGB, CMYK, CIELAB) together with a usage hint
// (global, spot or process color).
//
// A palette can be loaded from a file, edited in place, and written
// back:
//
//	p, err := ase.Open("colors.ase")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Append(&ase.Entry{
//	    Name:  "Sky",
//	    Color: ase.RGB{R: 0.4, G: 0.7, B: 1},
//	    Usage: ase.Normal,
//	})
//	err = p.Save("colors.ase")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding and encoding are pure functions over byte slices; all file
// I/O is confined to [Open], [Read], [Palette.Save] and
// [Palette.Write].  A decode either returns a complete [Palette] or an
// error; no partially decoded palette is ever returned.
package ase
