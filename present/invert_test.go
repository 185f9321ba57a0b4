// seehuhn.de/go/docview - a single-page document viewer engine
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

package present

import (
	"image"
	"image/color"
	"testing"
)

func TestInvertExtremes(t *testing.T) {
	r, g, b := invertPixel(0, 0, 0)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("black: got (%d,%d,%d), want white", r, g, b)
	}

	r, g, b = invertPixel(255, 255, 255)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("white: got (%d,%d,%d), want black", r, g, b)
	}
}

func TestInvertGrayMidpoint(t *testing.T) {
	// gray levels map to the mirrored gray level
	for _, v := range []uint8{10, 100, 128, 200} {
		r, g, b := invertPixel(v, v, v)
		want := 255 - v
		if absDiff(r, want) > 1 || absDiff(g, want) > 1 || absDiff(b, want) > 1 {
			t.Errorf("gray %d: got (%d,%d,%d), want %d", v, r, g, b, want)
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	colors := [][3]uint8{
		{200, 100, 50},
		{30, 60, 90},
		{128, 128, 0},
		{90, 200, 160},
	}
	for _, c := range colors {
		r, g, b := invertPixel(c[0], c[1], c[2])
		r, g, b = invertPixel(r, g, b)
		if absDiff(r, c[0]) > 2 || absDiff(g, c[1]) > 2 || absDiff(b, c[2]) > 2 {
			t.Errorf("%v: round trip gave (%d,%d,%d)", c, r, g, b)
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func TestInvertRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 200})
		}
	}

	InvertRGBA(img)

	c := img.RGBAAt(2, 2)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("got (%d,%d,%d), want black", c.R, c.G, c.B)
	}
	if c.A != 200 {
		t.Errorf("alpha changed to %d", c.A)
	}
}

func TestInvertRGBASubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}

	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	InvertRGBA(sub)

	if c := img.RGBAAt(2, 2); c.R != 255 {
		t.Error("inside region not inverted")
	}
	if c := img.RGBAAt(0, 0); c.R != 0 {
		t.Error("outside region inverted")
	}
	if c := img.RGBAAt(3, 3); c.R != 0 {
		t.Error("outside region inverted")
	}
}
