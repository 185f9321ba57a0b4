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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FitScale returns the factor which scales the page to the largest size
// that still fits the viewport while preserving the aspect ratio
// ("contain" semantics). The result is 0 if the page has no positive
// area; callers must then skip the frame.
func FitScale(viewDims Dims, pageBounds rect.Rect) float64 {
	pd := RectDims(pageBounds)
	if pd.W <= 0 || pd.H <= 0 {
		return 0
	}
	return min(viewDims.W/pd.W, viewDims.H/pd.H)
}

// Geometry is the immutable per-frame render geometry: everything the
// rasterization adapter and the presenter need to know about one frame.
// Values are derived once per redraw by [Resolve] and never mutated.
type Geometry struct {
	// DimsBase is the viewport size in logical pixels.
	DimsBase IntDims

	// DimsDevice is the viewport size in device pixels.
	DimsDevice IntDims

	// DeviceScale is the device pixel ratio.
	DeviceScale float64

	// ScaleBase maps document units to logical pixels.
	ScaleBase float64

	// ScaleDevice maps document units to device pixels.
	ScaleDevice float64

	// Matrix is the document-to-device transform: a pre-scale by
	// ScaleDevice, no rotation or shear. Clip-relative translation is
	// applied separately by the rasterization adapter.
	Matrix matrix.Matrix

	// Clip is the visible sub-rectangle of the page, in document
	// units. It is a subset of the page bounds.
	Clip rect.Rect

	// Offset is the device-pixel position at which the rasterized
	// clip's minimum corner lands on the output surface.
	Offset vec.Vec2

	// Raster is the integer device-pixel rectangle to rasterize,
	// Clip transformed by Matrix and rounded.
	Raster image.Rectangle
}

// Resolve computes the render geometry for one frame from the current
// transform state, the page bounds (document units), the viewport size
// (logical pixels) and the device pixel ratio.
//
// If the page or the viewport has no positive area, the returned
// snapshot is degenerate and the frame must be skipped; this is not an
// error.
func Resolve(t *Transform, pageBounds rect.Rect, view IntDims, deviceScale float64) Geometry {
	dimsBase := view.Dims()
	fBase := FitScale(dimsBase, pageBounds) * t.Scale
	fScaled := fBase * deviceScale

	g := Geometry{
		DimsBase:    view,
		DimsDevice:  view.Scale(deviceScale),
		DeviceScale: deviceScale,
		ScaleBase:   fBase,
		ScaleDevice: fScaled,
	}
	if fBase <= 0 || !dimsBase.Positive() {
		return g
	}

	g.Matrix = matrix.Scale(fScaled, fScaled)
	g.Clip, g.Offset = t.DocTransform(dimsBase, pageBounds, fBase, fScaled)
	g.Raster = roundRect(ScaleRect(g.Clip, fScaled))
	return g
}

// Degenerate reports whether this frame must be skipped because there
// is nothing to rasterize.
func (g Geometry) Degenerate() bool {
	return g.ScaleBase <= 0 || g.Raster.Empty()
}

// roundRect rounds each coordinate half away from zero. The same
// rounding determines the rasterized buffer size and the presenter's
// footprint test, so the two can never disagree.
func roundRect(r rect.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.LLx)),
		int(math.Round(r.LLy)),
		int(math.Round(r.URx)),
		int(math.Round(r.URy)),
	)
}
