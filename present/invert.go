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

// Package present shows rendered page buffers on an output surface.
// Two strategies are provided: [Blit] copies pixels into an RGBA
// surface in software, and [GLPresenter] uploads the buffer as a
// texture and draws it with a fragment shader.
//
// Both strategies share the same contract: buffer pixels map onto
// surface pixels one to one, starting at the placement offset;
// uncovered parts of the surface are mid-gray; and the page can be
// shown with inverted luminance for reading in the dark.
package present

import "image"

// InvertRGBA inverts the luminance of every pixel of img in place.
// Alpha values are left unchanged.
func InvertRGBA(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		row := img.Pix[i : i+4*b.Dx()]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2] = invertPixel(row[x], row[x+1], row[x+2])
		}
	}
}

// BT.601 color conversion, as used for the luminance inversion.
const (
	yR, yG, yB    = 0.299, 0.587, 0.114
	cbR, cbG, cbB = -0.168736, -0.331264, 0.5
	crR, crG, crB = 0.5, -0.418688, -0.081312
	rCr           = 1.402
	gCb, gCr      = -0.344136, -0.714136
	bCb           = 1.772
)

// invertPixel inverts the luminance of one sRGB pixel, leaving the
// chroma untouched.  Black text on white paper comes out white on
// black, while colors keep their hue.
func invertPixel(r8, g8, b8 uint8) (uint8, uint8, uint8) {
	r := float64(r8) / 255
	g := float64(g8) / 255
	b := float64(b8) / 255

	y := yR*r + yG*g + yB*b
	cb := cbR*r + cbG*g + cbB*b
	cr := crR*r + crG*g + crB*b

	y = 1 - y

	r = y + rCr*cr
	g = y + gCb*cb + gCr*cr
	b = y + bCb*cb

	return to8(r), to8(g), to8(b)
}

func to8(x float64) uint8 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return uint8(x*255 + 0.5)
}
