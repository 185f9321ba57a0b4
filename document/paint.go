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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	pdfmatrix "seehuhn.de/go/pdf/graphics/matrix"
	"seehuhn.de/go/pdf/reader"
)

// Fractions of the font size used for the glyph box approximation.
const (
	glyphAscent  = 0.72
	glyphDescent = 0.2
)

// PaintRegion draws the part of the page visible in dst.
//
// The matrix m maps document coordinates (top-left origin, y growing
// downwards, see [Page.Bounds]) to pixel coordinates of dst.  The
// rectangle clip gives the document-space region corresponding to dst.
//
// PaintRegion checks ctx between content stream operators and stops
// early once the context is cancelled, returning the context's error.
// The pixels painted so far remain in dst.
func (p *Page) PaintRegion(ctx context.Context, clip rect.Rect, m matrix.Matrix, dst *image.RGBA) error {
	// Content streams use y-up coordinates relative to the media box.
	flip := matrix.Matrix{1, 0, 0, -1, -p.mediaBox.LLx, p.mediaBox.URy}
	ctm := pdfmatrix.Matrix(flip.Mul(m))

	bounds := dst.Bounds()
	pt := &painter{
		ctx: ctx,
		dst: dst,
		ras: vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
	}
	pt.rd = reader.New(p.r, p.fonts)
	pt.rd.EveryOp = pt.everyOp
	pt.rd.DrawGlyph = pt.drawGlyph

	return pt.rd.ParsePage(p.dict, ctm)
}

type pathSeg struct {
	op   byte // 'm', 'l', 'c', 'h'
	args [6]float64
}

// painter turns content stream operators into filled regions of dst.
// Path coordinates are stored in device space, so that painting only
// has to replay them into the rasterizer.
type painter struct {
	ctx context.Context
	rd  *reader.Reader
	dst *image.RGBA
	ras *vector.Rasterizer

	path       []pathSeg
	cur, start [2]float64
	hasCur     bool
}

func (pt *painter) everyOp(op string, args []pdf.Object) error {
	if err := pt.ctx.Err(); err != nil {
		return err
	}

	switch op {
	case "m":
		x, y, ok := pt.point(args, 0)
		if !ok {
			return nil
		}
		pt.moveTo(x, y)
	case "l":
		x, y, ok := pt.point(args, 0)
		if !ok || !pt.hasCur {
			return nil
		}
		pt.lineTo(x, y)
	case "c":
		x1, y1, ok1 := pt.point(args, 0)
		x2, y2, ok2 := pt.point(args, 2)
		x3, y3, ok3 := pt.point(args, 4)
		if !ok1 || !ok2 || !ok3 || !pt.hasCur {
			return nil
		}
		pt.cubeTo(x1, y1, x2, y2, x3, y3)
	case "v":
		x2, y2, ok2 := pt.point(args, 0)
		x3, y3, ok3 := pt.point(args, 2)
		if !ok2 || !ok3 || !pt.hasCur {
			return nil
		}
		pt.cubeTo(pt.cur[0], pt.cur[1], x2, y2, x3, y3)
	case "y":
		x1, y1, ok1 := pt.point(args, 0)
		x3, y3, ok3 := pt.point(args, 2)
		if !ok1 || !ok3 || !pt.hasCur {
			return nil
		}
		pt.cubeTo(x1, y1, x3, y3, x3, y3)
	case "re":
		if len(args) < 4 {
			return nil
		}
		x, okX := num(args[0])
		y, okY := num(args[1])
		w, okW := num(args[2])
		h, okH := num(args[3])
		if !okX || !okY || !okW || !okH {
			return nil
		}
		// each corner is transformed on its own, so that rotated
		// coordinate systems map correctly
		x0, y0 := pt.rd.CTM.Apply(x, y)
		x1, y1 := pt.rd.CTM.Apply(x+w, y)
		x2, y2 := pt.rd.CTM.Apply(x+w, y+h)
		x3, y3 := pt.rd.CTM.Apply(x, y+h)
		pt.moveTo(x0, y0)
		pt.lineTo(x1, y1)
		pt.lineTo(x2, y2)
		pt.lineTo(x3, y3)
		pt.closePath()
	case "h":
		pt.closePath()

	case "f", "F", "f*":
		pt.fill()
		pt.clearPath()
	case "S":
		pt.stroke()
		pt.clearPath()
	case "s":
		pt.closePath()
		pt.stroke()
		pt.clearPath()
	case "B", "B*":
		pt.fill()
		pt.stroke()
		pt.clearPath()
	case "b", "b*":
		pt.closePath()
		pt.fill()
		pt.stroke()
		pt.clearPath()
	case "n":
		pt.clearPath()
	}
	return nil
}

// point reads args[i] and args[i+1] and transforms them by the
// current transformation matrix.
func (pt *painter) point(args []pdf.Object, i int) (x, y float64, ok bool) {
	if len(args) < i+2 {
		return 0, 0, false
	}
	x, okX := num(args[i])
	y, okY := num(args[i+1])
	if !okX || !okY {
		return 0, 0, false
	}
	x, y = pt.rd.CTM.Apply(x, y)
	return x, y, true
}

func (pt *painter) moveTo(x, y float64) {
	pt.path = append(pt.path, pathSeg{op: 'm', args: [6]float64{x, y}})
	pt.cur = [2]float64{x, y}
	pt.start = pt.cur
	pt.hasCur = true
}

func (pt *painter) lineTo(x, y float64) {
	pt.path = append(pt.path, pathSeg{op: 'l', args: [6]float64{x, y}})
	pt.cur = [2]float64{x, y}
}

func (pt *painter) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	pt.path = append(pt.path, pathSeg{op: 'c', args: [6]float64{x1, y1, x2, y2, x3, y3}})
	pt.cur = [2]float64{x3, y3}
}

func (pt *painter) closePath() {
	if !pt.hasCur {
		return
	}
	pt.path = append(pt.path, pathSeg{op: 'h'})
	pt.cur = pt.start
}

func (pt *painter) clearPath() {
	pt.path = pt.path[:0]
	pt.hasCur = false
}

// fill paints the current path with the nonzero winding rule.  The
// even-odd variants of the paint operators are approximated by the
// same rule.
func (pt *painter) fill() {
	if len(pt.path) == 0 {
		return
	}
	b := pt.dst.Bounds()
	pt.ras.Reset(b.Dx(), b.Dy())
	for _, seg := range pt.path {
		switch seg.op {
		case 'm':
			pt.ras.MoveTo(float32(seg.args[0]), float32(seg.args[1]))
		case 'l':
			pt.ras.LineTo(float32(seg.args[0]), float32(seg.args[1]))
		case 'c':
			pt.ras.CubeTo(float32(seg.args[0]), float32(seg.args[1]),
				float32(seg.args[2]), float32(seg.args[3]),
				float32(seg.args[4]), float32(seg.args[5]))
		case 'h':
			pt.ras.ClosePath()
		}
	}
	pt.ras.Draw(pt.dst, b, image.NewUniform(paintColor(pt.rd.FillColor)), image.Point{})
}

// flatSteps is the number of line segments a cubic curve is cut into
// when stroking.
const flatSteps = 12

// stroke paints the current path as a line of the current width.
// Each segment is drawn as a filled quadrilateral; joins and caps are
// left square.
func (pt *painter) stroke() {
	if len(pt.path) == 0 {
		return
	}

	lineWidth := pt.rd.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	ctm := pt.rd.CTM
	scale := math.Sqrt(math.Abs(ctm[0]*ctm[3] - ctm[1]*ctm[2]))
	w := lineWidth * scale / 2
	if w < 0.5 {
		w = 0.5
	}

	b := pt.dst.Bounds()
	pt.ras.Reset(b.Dx(), b.Dy())

	var cur, start [2]float64
	for _, seg := range pt.path {
		switch seg.op {
		case 'm':
			cur = [2]float64{seg.args[0], seg.args[1]}
			start = cur
		case 'l':
			next := [2]float64{seg.args[0], seg.args[1]}
			pt.strokeSegment(cur, next, w)
			cur = next
		case 'c':
			p1 := [2]float64{seg.args[0], seg.args[1]}
			p2 := [2]float64{seg.args[2], seg.args[3]}
			p3 := [2]float64{seg.args[4], seg.args[5]}
			prev := cur
			for i := 1; i <= flatSteps; i++ {
				t := float64(i) / flatSteps
				next := cubePoint(cur, p1, p2, p3, t)
				pt.strokeSegment(prev, next, w)
				prev = next
			}
			cur = p3
		case 'h':
			pt.strokeSegment(cur, start, w)
			cur = start
		}
	}

	pt.ras.Draw(pt.dst, b, image.NewUniform(paintColor(pt.rd.StrokeColor)), image.Point{})
}

func (pt *painter) strokeSegment(p, q [2]float64, w float64) {
	dx := q[0] - p[0]
	dy := q[1] - p[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx := -dy / l * w
	ny := dx / l * w

	pt.ras.MoveTo(float32(p[0]+nx), float32(p[1]+ny))
	pt.ras.LineTo(float32(q[0]+nx), float32(q[1]+ny))
	pt.ras.LineTo(float32(q[0]-nx), float32(q[1]-ny))
	pt.ras.LineTo(float32(p[0]-nx), float32(p[1]-ny))
	pt.ras.ClosePath()
}

func cubePoint(p0, p1, p2, p3 [2]float64, t float64) [2]float64 {
	s := 1 - t
	a := s * s * s
	b := 3 * s * s * t
	c := 3 * s * t * t
	d := t * t * t
	return [2]float64{
		a*p0[0] + b*p1[0] + c*p2[0] + d*p3[0],
		a*p0[1] + b*p1[1] + c*p2[1] + d*p3[1],
	}
}

// drawGlyph paints a box covering the glyph's advance width.  Glyph
// outlines are not loaded; for the purposes of the viewer a box at
// the right position and size reads well enough at small scales.
func (pt *painter) drawGlyph(g font.Glyph) error {
	if g.Advance <= 0 {
		return nil
	}

	trm := pt.rd.TextMatrix.Mul(pt.rd.CTM)
	size := pt.rd.TextFontSize
	yBot := g.Rise - glyphDescent*size
	yTop := g.Rise + glyphAscent*size

	b := pt.dst.Bounds()
	pt.ras.Reset(b.Dx(), b.Dy())
	x, y := trm.Apply(0, yBot)
	pt.ras.MoveTo(float32(x), float32(y))
	x, y = trm.Apply(g.Advance, yBot)
	pt.ras.LineTo(float32(x), float32(y))
	x, y = trm.Apply(g.Advance, yTop)
	pt.ras.LineTo(float32(x), float32(y))
	x, y = trm.Apply(0, yTop)
	pt.ras.LineTo(float32(x), float32(y))
	pt.ras.ClosePath()
	pt.ras.Draw(pt.dst, b, image.NewUniform(paintColor(pt.rd.FillColor)), image.Point{})
	return nil
}

func num(obj pdf.Object) (float64, bool) {
	switch x := obj.(type) {
	case pdf.Integer:
		return float64(x), true
	case pdf.Real:
		return float64(x), true
	case pdf.Number:
		return float64(x), true
	default:
		return 0, false
	}
}

// paintColor converts a content stream color to an image/color value.
// Unsupported color types come out black.
func paintColor(c pdfcolor.Color) color.Color {
	if c == nil {
		return color.Black
	}
	vals, _, op := pdfcolor.Operator(c)
	if op == "SCN" {
		// patterns
		return color.Black
	}

	switch len(vals) {
	case 1:
		return color.Gray{Y: clamp8(vals[0])}
	case 3:
		return color.RGBA{
			R: clamp8(vals[0]),
			G: clamp8(vals[1]),
			B: clamp8(vals[2]),
			A: 255,
		}
	case 4:
		return color.CMYK{
			C: clamp8(vals[0]),
			M: clamp8(vals[1]),
			Y: clamp8(vals[2]),
			K: clamp8(vals[3]),
		}
	}
	return color.Black
}

func clamp8(x float64) uint8 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return uint8(x*255 + 0.5)
}
