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
	"golang.org/x/exp/slices"
)

// Usage is the usage hint attached to a swatch.  It is carried through
// by the codec but has no effect on how the color value is stored.
type Usage uint16

// The usage hints defined by the file format.
const (
	Global Usage = 0
	Spot   Usage = 1
	Normal Usage = 2
)

func (u Usage) String() string {
	switch u {
	case Global:
		return "global"
	case Spot:
		return "spot"
	case Normal:
		return "normal"
	}
	return "unknown"
}

// Entry is a single named color swatch.  The name may be empty.
// Fields can be modified directly; the codec imposes no restrictions
// beyond Color being non-nil when the palette is encoded.
type Entry struct {
	Name  string
	Color Color
	Usage Usage
}

// Group is a named, ordered collection of entries.  A group owns its
// entries exclusively: an entry is never a member of two containers at
// the same time.
type Group struct {
	Name    string
	Entries []*Entry
}

// Item is an element of a palette, either an *[Entry] or a *[Group].
type Item interface {
	isItem()
}

func (*Entry) isItem() {}
func (*Group) isItem() {}

// Version is the file format version from the file header.  It is
// recorded for information only; the decoder accepts all versions and
// the encoder always writes version 1.0.
type Version struct {
	Major, Minor uint16
}

// Palette is the in-memory representation of one ASE file: an ordered
// sequence of top-level entries and groups, in file order.
type Palette struct {
	Version Version
	Items   []Item
}

// Append adds an item at the end of the palette.
func (p *Palette) Append(item Item) {
	p.Items = append(p.Items, item)
}

// Insert inserts an item at position i.
// Insert panics if i is out of range.
func (p *Palette) Insert(i int, item Item) {
	p.Items = slices.Insert(p.Items, i, item)
}

// Remove removes and returns the item at position i.
// Remove panics if i is out of range.
func (p *Palette) Remove(i int) Item {
	item := p.Items[i]
	p.Items = slices.Delete(p.Items, i, i+1)
	return item
}

// Move moves the item at position from so that it ends up at position
// to.  The index to refers to the sequence after the item has been
// taken out.  Move panics if either index is out of range.
func (p *Palette) Move(from, to int) {
	item := p.Items[from]
	p.Items = slices.Delete(p.Items, from, from+1)
	p.Items = slices.Insert(p.Items, to, item)
}

// MoveIntoGroup removes the entry at top-level position i and appends
// it to g, preserving exclusive ownership.  MoveIntoGroup panics if i
// is out of range or if the item at i is not an *[Entry].
func (p *Palette) MoveIntoGroup(i int, g *Group) {
	e := p.Items[i].(*Entry)
	p.Items = slices.Delete(p.Items, i, i+1)
	g.Entries = append(g.Entries, e)
}

// MoveOutOfGroup removes the entry at position i of g and appends it
// to the top level of the palette.  MoveOutOfGroup panics if i is out
// of range.
func (p *Palette) MoveOutOfGroup(g *Group, i int) {
	e := g.Entries[i]
	g.Entries = slices.Delete(g.Entries, i, i+1)
	p.Items = append(p.Items, e)
}

// NumEntries returns the total number of entries in the palette,
// counting both top-level entries and entries inside groups.
func (p *Palette) NumEntries() int {
	n := 0
	for _, item := range p.Items {
		switch item := item.(type) {
		case *Entry:
			n++
		case *Group:
			n += len(item.Entries)
		}
	}
	return n
}

// Append adds an entry at the end of the group.
func (g *Group) Append(e *Entry) {
	g.Entries = append(g.Entries, e)
}

// Insert inserts an entry at position i.
// Insert panics if i is out of range.
func (g *Group) Insert(i int, e *Entry) {
	g.Entries = slices.Insert(g.Entries, i, e)
}

// Remove removes and returns the entry at position i.
// Remove panics if i is out of range.
func (g *Group) Remove(i int) *Entry {
	e := g.Entries[i]
	g.Entries = slices.Delete(g.Entries, i, i+1)
	return e
}

// Move moves the entry at position from so that it ends up at position
// to.  The index to refers to the sequence after the entry has been
// taken out.  Move panics if either index is out of range.
func (g *Group) Move(from, to int) {
	e := g.Entries[from]
	g.Entries = slices.Delete(g.Entries, from, from+1)
	g.Entries = slices.Insert(g.Entries, to, e)
}
