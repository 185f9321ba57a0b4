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
	"image/draw"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Background is the color of surface parts not covered by the page.
var Background = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Blit shows the page buffer src on the surface dst.  The top-left
// corner of src lands at the placement offset off, rounded to whole
// pixels; src pixels are copied unscaled.  The rest of dst is filled
// with [Background].  If invert is set, the copied pixels are shown
// with inverted luminance.
//
// A nil src clears the surface.
func Blit(dst, src *image.RGBA, off vec.Vec2, invert bool) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if src == nil {
		return
	}

	sb := src.Bounds()
	target := image.Rect(0, 0, sb.Dx(), sb.Dy()).
		Add(dst.Bounds().Min).
		Add(image.Pt(int(math.Round(off.X)), int(math.Round(off.Y))))
	draw.Draw(dst, target, src, sb.Min, draw.Src)

	if invert {
		covered := target.Intersect(dst.Bounds())
		if !covered.Empty() {
			InvertRGBA(dst.SubImage(covered).(*image.RGBA))
		}
	}
}

// BlitFlipped is like [Blit] for surfaces with a bottom-left origin:
// the rows of dst are filled in reverse order, so that the page
// appears upright when dst is shown bottom row first.  The offset is
// still given in top-down surface coordinates.
func BlitFlipped(dst, src *image.RGBA, off vec.Vec2, invert bool) {
	tmp := image.NewRGBA(image.Rect(0, 0, dst.Bounds().Dx(), dst.Bounds().Dy()))
	Blit(tmp, src, off, invert)

	b := dst.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		si := tmp.PixOffset(0, y)
		di := dst.PixOffset(b.Min.X, b.Min.Y+h-1-y)
		copy(dst.Pix[di:di+4*b.Dx()], tmp.Pix[si:si+4*b.Dx()])
	}
}
