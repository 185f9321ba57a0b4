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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Transform holds the user-controlled pan/zoom state of one document
// view. The zero value is not ready for use; call [NewTransform] or
// [Transform.Reset] first.
//
// One Transform belongs to one open document view. It persists across
// redraws and must be reset when the displayed page changes, so that
// pan and zoom do not leak from one page to the next.
type Transform struct {
	// Scale is the zoom factor. It is updated multiplicatively and
	// stays strictly positive.
	Scale float64

	// Off is the committed pan offset, in document units.
	Off vec.Vec2

	// DragOff is the offset of an in-progress drag gesture, in unscaled
	// screen pixels. It is zero whenever no drag is active.
	DragOff vec.Vec2
}

// NewTransform returns a Transform in its default state: scale 1, no
// pan, no active drag.
func NewTransform() *Transform {
	return &Transform{Scale: 1}
}

// Reset restores the default state. The next geometry resolution
// recenters and un-zooms the page.
func (t *Transform) Reset() {
	t.Scale = 1
	t.Off = vec.Vec2{}
	t.DragOff = vec.Vec2{}
}

// ApplyZoom multiplies the zoom factor by f. Zoom is centered on the
// viewport center at resolution time, not on the cursor.
func (t *Transform) ApplyZoom(f float64) {
	t.Scale *= f
}

// ApplyPan shifts the committed pan offset by delta, in document units.
func (t *Transform) ApplyPan(delta vec.Vec2) {
	t.Off = t.Off.Add(delta)
}

// UpdateDrag records the total displacement of an in-progress drag
// gesture since its start, in unscaled screen pixels.
func (t *Transform) UpdateDrag(screenDelta vec.Vec2) {
	t.DragOff = screenDelta
}

// EndDrag folds the total drag displacement into the committed pan
// offset, converting from screen pixels to document units by docScale,
// and clears the drag state. Calling EndDrag without a preceding
// UpdateDrag still clears the drag state and is otherwise harmless.
func (t *Transform) EndDrag(screenDeltaTotal vec.Vec2, docScale float64) {
	if docScale > 0 {
		t.Off = t.Off.Sub(screenDeltaTotal.Mul(1 / docScale))
	}
	t.DragOff = vec.Vec2{}
}

// DocTransform derives the visible sub-rectangle of the page and the
// placement of its rasterized pixels on the output surface.
//
// viewDims are the viewport dimensions in logical pixels, pageBounds
// the page bounds in document units. fBase scales document units to
// logical pixels, fScaled to device pixels.
//
// The returned clip is always a subset of pageBounds; it is smaller
// than the viewport when zoomed out or panned to an edge. The returned
// offset is the device-pixel position of the clip's minimum corner
// relative to the viewport origin.
func (t *Transform) DocTransform(viewDims Dims, pageBounds rect.Rect, fBase, fScaled float64) (clip rect.Rect, offset vec.Vec2) {
	// viewport extent in document units
	areaDims := viewDims.Scale(1 / fBase)
	areaCenter := areaDims.Center()

	// document point that aligns with the viewport center; the drag
	// offset is in pre-device-scaling screen pixels, so it is divided
	// by fBase, not fScaled
	center := Center(pageBounds).Add(t.Off).Sub(t.DragOff.Mul(1 / fBase))

	centerOff := center.Sub(areaCenter)
	viewArea := Translate(RectFromDims(areaDims), centerOff)

	// When the page is smaller than the view area, viewArea is built
	// around the page's own center, so the intersection centers the
	// page without any special casing.
	clip = Intersect(viewArea, pageBounds)
	offset = Offset(Translate(clip, centerOff.Mul(-1))).Mul(fScaled)
	return clip, offset
}
