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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Dims is a width/height pair in a single coordinate space.
type Dims struct {
	W, H float64
}

// Scale returns the dimensions multiplied by f.
func (d Dims) Scale(f float64) Dims {
	return Dims{W: d.W * f, H: d.H * f}
}

// Center returns the center of a zero-origin area of these dimensions.
func (d Dims) Center() vec.Vec2 {
	return vec.Vec2{X: d.W / 2, Y: d.H / 2}
}

// Positive reports whether both dimensions enclose a non-empty area.
func (d Dims) Positive() bool {
	return d.W > 0 && d.H > 0
}

// IntDims is a width/height pair in whole pixels.
type IntDims struct {
	W, H int
}

// Dims converts to floating-point dimensions.
func (d IntDims) Dims() Dims {
	return Dims{W: float64(d.W), H: float64(d.H)}
}

// Scale returns the dimensions multiplied by f, rounded to whole pixels.
func (d IntDims) Scale(f float64) IntDims {
	return IntDims{
		W: int(math.Round(float64(d.W) * f)),
		H: int(math.Round(float64(d.H) * f)),
	}
}

// NewRect returns the rectangle spanned by the given coordinate pairs.
// The coordinates within each pair may be given in either order.
func NewRect(x0, x1, y0, y1 float64) rect.Rect {
	return rect.Rect{
		LLx: min(x0, x1),
		URx: max(x0, x1),
		LLy: min(y0, y1),
		URy: max(y0, y1),
	}
}

// RectFromDims returns a zero-origin rectangle of the given dimensions.
func RectFromDims(d Dims) rect.Rect {
	return rect.Rect{URx: d.W, URy: d.H}
}

// Intersect returns the intersection of a and b. If the rectangles do
// not overlap, the result is a zero-area rectangle at the clamped
// corner; it is never inverted.
func Intersect(a, b rect.Rect) rect.Rect {
	llx := max(a.LLx, b.LLx)
	urx := max(min(a.URx, b.URx), llx)
	lly := max(a.LLy, b.LLy)
	ury := max(min(a.URy, b.URy), lly)
	return rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury}
}

// Translate returns r shifted by v.
func Translate(r rect.Rect, v vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: r.LLx + v.X,
		LLy: r.LLy + v.Y,
		URx: r.URx + v.X,
		URy: r.URy + v.Y,
	}
}

// ScaleRect returns r with all coordinates multiplied by f.
func ScaleRect(r rect.Rect, f float64) rect.Rect {
	return rect.Rect{
		LLx: r.LLx * f,
		LLy: r.LLy * f,
		URx: r.URx * f,
		URy: r.URy * f,
	}
}

// Center returns the center point of r.
func Center(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}

// Offset returns the minimum corner of r.
func Offset(r rect.Rect) vec.Vec2 {
	return vec.Vec2{X: r.LLx, Y: r.LLy}
}

// RectDims returns the width and height of r.
func RectDims(r rect.Rect) Dims {
	return Dims{W: r.URx - r.LLx, H: r.URy - r.LLy}
}
