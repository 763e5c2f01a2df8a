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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrBadSignature indicates that the file does not start with the
	// "ASEF" signature.
	ErrBadSignature = errors.New("wrong file signature")

	// ErrUnexpectedEnd indicates that the file ends in the middle of a
	// field or block.
	ErrUnexpectedEnd = errors.New("unexpected end of file")

	// ErrNestedGroup indicates a group start block while another group
	// is still open.  The format does not allow nested groups.
	ErrNestedGroup = errors.New("group start inside a group")

	// ErrUnmatchedGroupEnd indicates a group end block without a
	// preceding group start.
	ErrUnmatchedGroupEnd = errors.New("group end without group start")

	// ErrUnterminatedGroup indicates that the block stream ended while
	// a group was still open.
	ErrUnterminatedGroup = errors.New("group is missing its group end")

	errBlockLength = errors.New("block body longer than declared length")
)

// MalformedFileError indicates that the ASE file could not be parsed.
// The error returned by [Decode], [Read] and [Open] for structural
// problems is always of this type; Err identifies the problem and can
// be inspected using [errors.Is] and [errors.As].
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid ASE file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// UnknownBlockTypeError indicates a block with a type tag other than
// group start, group end or color entry.
type UnknownBlockTypeError struct {
	Tag uint16
}

func (err *UnknownBlockTypeError) Error() string {
	return fmt.Sprintf("unknown block type 0x%04X", err.Tag)
}

// UnknownColorModelError indicates a color entry whose 4-byte color
// model signature is not one of "RGB ", "CMYK", "LAB " or "Gray".
type UnknownColorModelError struct {
	Sig [4]byte
}

func (err *UnknownColorModelError) Error() string {
	return fmt.Sprintf("unknown color model %q", err.Sig[:])
}
