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

package document

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"testing"

	"seehuhn.de/go/geom/matrix"
)

// paintPage renders the current page of doc into a white w x h image.
func paintPage(t *testing.T, doc *Document, w, h int, m matrix.Matrix) *image.RGBA {
	t.Helper()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	page := doc.Page()
	err := page.PaintRegion(context.Background(), page.Bounds(), m, dst)
	if err != nil {
		t.Fatal(err)
	}
	return dst
}

func isDark(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return int(c.R)+int(c.G)+int(c.B) < 3*128
}

func TestPaintFill(t *testing.T) {
	// fills the lower half of the page in PDF coordinates
	fname := tempPDF(t, []testPage{{
		mediaBox: "[0 0 10 10]",
		content:  "0 0 10 5 re f",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	img := paintPage(t, doc, 10, 10, matrix.Identity)

	// document coordinates are y-down, so the filled part is at the
	// bottom of the image
	if !isDark(img, 5, 7) {
		t.Error("bottom half not painted")
	}
	if isDark(img, 5, 2) {
		t.Error("top half painted")
	}
}

func TestPaintMediaBoxOffset(t *testing.T) {
	// the media box origin must not shift the page content
	fname := tempPDF(t, []testPage{{
		mediaBox: "[100 100 110 110]",
		content:  "100 105 10 5 re f",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	img := paintPage(t, doc, 10, 10, matrix.Identity)

	if !isDark(img, 5, 2) {
		t.Error("top half not painted")
	}
	if isDark(img, 5, 7) {
		t.Error("bottom half painted")
	}
}

func TestPaintRectRotatedCTM(t *testing.T) {
	// a half turn about the page center maps the lower half of the
	// page onto the upper half; the rectangle corners must follow
	// the rotation
	fname := tempPDF(t, []testPage{{
		mediaBox: "[0 0 10 10]",
		content:  "q -1 0 0 -1 10 10 cm 0 0 10 5 re f Q",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	img := paintPage(t, doc, 10, 10, matrix.Identity)

	if !isDark(img, 5, 2) {
		t.Error("top half not painted")
	}
	if isDark(img, 5, 7) {
		t.Error("bottom half painted")
	}
}

func TestPaintColor(t *testing.T) {
	fname := tempPDF(t, []testPage{{
		mediaBox: "[0 0 10 10]",
		content:  "1 0 0 rg 0 0 10 10 re f",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	img := paintPage(t, doc, 10, 10, matrix.Identity)

	c := img.RGBAAt(5, 5)
	if c.R < 250 || c.G > 5 || c.B > 5 {
		t.Errorf("got %v, want red", c)
	}
}

func TestPaintScaled(t *testing.T) {
	fname := tempPDF(t, []testPage{{
		mediaBox: "[0 0 10 10]",
		content:  "0 0 10 5 re f",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	img := paintPage(t, doc, 20, 20, matrix.Scale(2, 2))

	if !isDark(img, 10, 15) {
		t.Error("bottom half not painted")
	}
	if isDark(img, 10, 5) {
		t.Error("top half painted")
	}
}

func TestPaintStroke(t *testing.T) {
	// a vertical line of width 2, centered at x=5
	fname := tempPDF(t, []testPage{{
		mediaBox: "[0 0 10 10]",
		content:  "2 w 5 0 m 5 10 l S",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	img := paintPage(t, doc, 10, 10, matrix.Identity)

	if !isDark(img, 4, 5) || !isDark(img, 5, 5) {
		t.Error("line not painted")
	}
	if isDark(img, 8, 5) {
		t.Error("paint outside the line")
	}
}

func TestPaintCancelled(t *testing.T) {
	fname := tempPDF(t, []testPage{{
		mediaBox: "[0 0 10 10]",
		content:  "0 0 10 10 re f",
	}})
	doc, err := Open(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	page := doc.Page()
	err = page.PaintRegion(ctx, page.Bounds(), matrix.Identity, dst)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
