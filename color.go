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
	"fmt"
	"image/color"
	"math"
)

// Color is a swatch color in one of the four color models an ASE file
// can store.  The concrete types are [Gray], [RGB], [CMYK] and [Lab].
// The model is fixed when the value is created and is never
// reinterpreted by the codec.
//
// Every Color also implements the standard [color.Color] interface, so
// swatches can be used directly with Go's imaging libraries.  The
// conversions are purely numeric approximations (CMYK uncalibrated,
// Lab relative to the D50 white point); no ICC color management is
// involved.
type Color interface {
	color.Color

	// signature returns the 4-byte color model signature used in the
	// file.
	signature() [4]byte

	// channels returns the channel values in file order.
	channels() []float32
}

// The 4-byte color model signatures.  Three-letter names are padded
// with a trailing space.
var (
	sigRGB  = [4]byte{'R', 'G', 'B', ' '}
	sigCMYK = [4]byte{'C', 'M', 'Y', 'K'}
	sigLab  = [4]byte{'L', 'A', 'B', ' '}
	sigGray = [4]byte{'G', 'r', 'a', 'y'}
)

// Gray is a grayscale color.  Y ranges from 0 (black) to 1 (white).
type Gray struct {
	Y float32
}

func (c Gray) signature() [4]byte  { return sigGray }
func (c Gray) channels() []float32 { return []float32{c.Y} }

// RGB is an RGB color.  Each component is in the range [0, 1].
type RGB struct {
	R, G, B float32
}

func (c RGB) signature() [4]byte  { return sigRGB }
func (c RGB) channels() []float32 { return []float32{c.R, c.G, c.B} }

// CMYK is a CMYK process color.  Each component is in the range
// [0, 1].
type CMYK struct {
	C, M, Y, K float32
}

func (c CMYK) signature() [4]byte  { return sigCMYK }
func (c CMYK) channels() []float32 { return []float32{c.C, c.M, c.Y, c.K} }

// Lab is a CIELAB color.  L is in the range [0, 100], A and B are
// nominally in the range [-128, 127].
type Lab struct {
	L, A, B float32
}

func (c Lab) signature() [4]byte  { return sigLab }
func (c Lab) channels() []float32 { return []float32{c.L, c.A, c.B} }

// RGBA implements the [color.Color] interface.
func (c Gray) RGBA() (r, g, b, a uint32) {
	v := to16(c.Y)
	return v, v, v, 0xFFFF
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xFFFF
}

// RGBA implements the [color.Color] interface.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	w := 1 - c.K
	return to16((1 - c.C) * w), to16((1 - c.M) * w), to16((1 - c.Y) * w), 0xFFFF
}

// RGBA implements the [color.Color] interface.  The conversion goes
// through CIEXYZ with the D50 white point and then to sRGB.
func (c Lab) RGBA() (r, g, b, a uint32) {
	fy := (float64(c.L) + 16) / 116
	fx := fy + float64(c.A)/500
	fz := fy - float64(c.B)/200

	// D50 white point
	x := 0.96422 * labFinv(fx)
	y := 1.0 * labFinv(fy)
	z := 0.82521 * labFinv(fz)

	// XYZ (D50) to linear sRGB, Bradford-adapted matrix
	lr := 3.1338561*x - 1.6168667*y - 0.4906146*z
	lg := -0.9787684*x + 1.9161415*y + 0.0334540*z
	lb := 0.0719453*x - 0.2289914*y + 1.4052427*z

	return lin16(lr), lin16(lg), lin16(lb), 0xFFFF
}

func labFinv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// lin16 converts a linear sRGB component to a 16 bit gamma-encoded
// value, clamping to [0, 1].
func lin16(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFFFF
	}
	if v <= 0.0031308 {
		v = 12.92 * v
	} else {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return uint32(v*0xFFFF + 0.5)
}

func to16(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFFFF
	}
	return uint32(float64(v)*0xFFFF + 0.5)
}

// Hex returns the color as an sRGB hex string of the form "#RRGGBB".
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func (c Gray) String() string {
	return fmt.Sprintf("Gray(%.4g)", c.Y)
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB(%.4g, %.4g, %.4g)", c.R, c.G, c.B)
}

func (c CMYK) String() string {
	return fmt.Sprintf("CMYK(%.4g, %.4g, %.4g, %.4g)", c.C, c.M, c.Y, c.K)
}

func (c Lab) String() string {
	return fmt.Sprintf("Lab(%.4g, %.4g, %.4g)", c.L, c.A, c.B)
}
