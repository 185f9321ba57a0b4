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

package docview

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// A Painter rasterizes document content. PaintRegion renders the part
// of the page inside clip (document units), pre-multiplied by m, into
// dst. dst's bounds are in device pixels; content outside clip must not
// be touched.
//
// PaintRegion checks ctx cooperatively. On cancellation it stops early
// and returns ctx.Err(); pixels already painted remain in dst.
type Painter interface {
	PaintRegion(ctx context.Context, clip rect.Rect, m matrix.Matrix, dst *image.RGBA) error
}

// RenderFrame rasterizes the frame described by g using p.
//
// The returned buffer is sized to g.Raster and filled opaque white
// before painting, so pages with transparent regions never expose
// undefined pixels. On a cancelled or failed paint the partially
// painted buffer is returned together with the error; retrying is the
// caller's decision.
func RenderFrame(ctx context.Context, p Painter, g Geometry) (*image.RGBA, error) {
	buf := image.NewRGBA(image.Rect(0, 0, g.Raster.Dx(), g.Raster.Dy()))
	draw.Draw(buf, buf.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// shift the document-to-device transform so that the raster
	// rectangle's origin maps to buffer (0,0)
	m := g.Matrix.Mul(matrix.Translate(-float64(g.Raster.Min.X), -float64(g.Raster.Min.Y)))

	err := p.PaintRegion(ctx, g.Clip, m, buf)
	return buf, err
}
