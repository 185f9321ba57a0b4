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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestNewRectNormalizes(t *testing.T) {
	cases := []struct {
		x0, x1, y0, y1 float64
		want           rect.Rect
	}{
		{0, 10, 0, 20, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}},
		{10, 0, 20, 0, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}},
		{10, 0, 0, 20, rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}},
		{-5, -1, 3, -3, rect.Rect{LLx: -5, LLy: -3, URx: -1, URy: 3}},
		{7, 7, 7, 7, rect.Rect{LLx: 7, LLy: 7, URx: 7, URy: 7}},
	}
	for _, c := range cases {
		got := NewRect(c.x0, c.x1, c.y0, c.y1)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("NewRect(%g,%g,%g,%g): %s", c.x0, c.x1, c.y0, c.y1, d)
		}
	}
}

func TestIntersect(t *testing.T) {
	a := NewRect(0, 10, 0, 10)

	// partial overlap
	got := Intersect(a, NewRect(5, 15, -5, 5))
	want := rect.Rect{LLx: 5, LLy: 0, URx: 10, URy: 5}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("partial overlap: %s", d)
	}

	// containment
	inner := NewRect(2, 4, 3, 7)
	if got := Intersect(a, inner); got != inner {
		t.Errorf("containment: got %v, want %v", got, inner)
	}
}

// TestIntersectEmpty verifies that a non-overlapping intersection
// degenerates to a zero-area rectangle and never inverts.
func TestIntersectEmpty(t *testing.T) {
	a := NewRect(0, 10, 0, 10)
	b := NewRect(20, 30, 20, 30)

	got := Intersect(a, b)
	if got.URx < got.LLx || got.URy < got.LLy {
		t.Fatalf("inverted intersection: %v", got)
	}
	if w, h := got.URx-got.LLx, got.URy-got.LLy; w != 0 || h != 0 {
		t.Errorf("expected zero area, got %g×%g", w, h)
	}
	// the degenerate rectangle sits at the clamped corner
	if got.LLx != 20 || got.LLy != 20 {
		t.Errorf("expected corner (20,20), got (%g,%g)", got.LLx, got.LLy)
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(2, 6, 10, 20)

	if got := Center(r); got != (vec.Vec2{X: 4, Y: 15}) {
		t.Errorf("Center: got %v", got)
	}
	if got := Offset(r); got != (vec.Vec2{X: 2, Y: 10}) {
		t.Errorf("Offset: got %v", got)
	}
	if got := RectDims(r); got != (Dims{W: 4, H: 10}) {
		t.Errorf("RectDims: got %v", got)
	}

	moved := Translate(r, vec.Vec2{X: -2, Y: 5})
	if want := NewRect(0, 4, 15, 25); moved != want {
		t.Errorf("Translate: got %v, want %v", moved, want)
	}

	scaled := ScaleRect(r, 2)
	if want := NewRect(4, 12, 20, 40); scaled != want {
		t.Errorf("ScaleRect: got %v, want %v", scaled, want)
	}
}

func TestDims(t *testing.T) {
	d := Dims{W: 800, H: 600}
	if got := d.Scale(0.5); got != (Dims{W: 400, H: 300}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := d.Center(); got != (vec.Vec2{X: 400, Y: 300}) {
		t.Errorf("Center: got %v", got)
	}
	if !d.Positive() {
		t.Error("Positive: got false")
	}
	if (Dims{W: 0, H: 600}).Positive() {
		t.Error("zero width reported as positive")
	}

	id := IntDims{W: 800, H: 600}
	if got := id.Scale(1.5); got != (IntDims{W: 1200, H: 900}) {
		t.Errorf("IntDims.Scale: got %v", got)
	}
}
