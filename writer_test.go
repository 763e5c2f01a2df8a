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
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeRed(t *testing.T) {
	p := &Palette{
		Items: []Item{
			&Entry{Name: "Red", Color: RGB{R: 1, G: 0, B: 0}, Usage: Normal},
		},
	}
	data := p.Encode()
	if !bytes.Equal(data, redFile) {
		t.Errorf("expected\n% x\nbut got\n% x", redFile, data)
	}
}

func TestEncodeEmpty(t *testing.T) {
	data := (&Palette{}).Encode()
	expected := []byte{
		'A', 'S', 'E', 'F',
		0x00, 0x01, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(data, expected) {
		t.Errorf("expected % x but got % x", expected, data)
	}
}

func TestBlockCount(t *testing.T) {
	warm := &Group{
		Name: "Warm",
		Entries: []*Entry{
			{Name: "Red", Color: RGB{R: 1}, Usage: Normal},
			{Name: "Orange", Color: RGB{R: 1, G: 0.5}, Usage: Normal},
		},
	}
	cases := []struct {
		items []Item
		count uint32
	}{
		{nil, 0},
		{[]Item{&Entry{Color: Gray{}}}, 1},
		// group start + 2 entries + group end
		{[]Item{warm}, 4},
		{[]Item{&Entry{Color: Gray{}}, warm, &Entry{Color: Gray{}}}, 6},
		{[]Item{&Group{Name: "empty"}}, 2},
	}
	for i, test := range cases {
		data := (&Palette{Items: test.items}).Encode()
		count := binary.BigEndian.Uint32(data[8:])
		if count != test.count {
			t.Errorf("%d: expected block count %d but got %d",
				i, test.count, count)
		}
	}
}

func TestGroupBlockOrder(t *testing.T) {
	warm := &Group{
		Name: "Warm",
		Entries: []*Entry{
			{Name: "Red", Color: RGB{R: 1}, Usage: Normal},
			{Name: "Orange", Color: RGB{R: 1, G: 0.5}, Usage: Normal},
		},
	}
	data := (&Palette{Items: []Item{warm}}).Encode()

	// walk the block stream and collect the tags
	c := &cursor{data: data, pos: 12}
	var tags []uint16
	for c.pos < len(data) {
		tag, err := c.readUint16()
		if err != nil {
			t.Fatal(err)
		}
		length, err := c.readUint32()
		if err != nil {
			t.Fatal(err)
		}
		c.pos += int(length)
		tags = append(tags, tag)
	}
	want := []uint16{blockGroupStart, blockColorEntry, blockColorEntry, blockGroupEnd}
	if d := cmp.Diff(want, tags); d != "" {
		t.Errorf("unexpected block order (-want +got):\n%s", d)
	}
}

func TestRoundTrip(t *testing.T) {
	p := sampleTestPalette()
	got, err := Decode(p.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p, got); d != "" {
		t.Errorf("palette changed over a round trip (-orig +new):\n%s", d)
	}
}

func TestWrite(t *testing.T) {
	p := sampleTestPalette()
	buf := &bytes.Buffer{}
	err := p.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), p.Encode()) {
		t.Error("Write and Encode disagree")
	}
}

func TestSaveOpen(t *testing.T) {
	fname := t.TempDir() + "/test.ase"
	p := sampleTestPalette()
	err := p.Save(fname)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p, got); d != "" {
		t.Errorf("palette changed over save/load (-orig +new):\n%s", d)
	}
}

func BenchmarkEncode(b *testing.B) {
	p := &Palette{}
	g := &Group{Name: "ramp"}
	for i := 0; i < 256; i++ {
		g.Append(&Entry{
			Name:  "swatch",
			Color: RGB{R: float32(i) / 255},
			Usage: Normal,
		})
	}
	p.Append(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Encode()
	}
}
