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

// Docview shows one page of a PDF file in a window.
//
// Usage:
//
//	docview [-page n] file.pdf
//
// Keys: +/- zoom, h/j/k/l pan (with shift: faster), 0 reset view,
// page up/down turn pages, r reload the file, i invert colors,
// q quit.  The middle mouse button drags the page, the scroll wheel
// pans (with control: zooms).
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"os"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"seehuhn.de/go/docview"
	"seehuhn.de/go/docview/document"
	"seehuhn.de/go/docview/present"
	"seehuhn.de/go/geom/vec"
)

const (
	zoomInStep  = 1.1
	zoomOutStep = 0.9

	panStep     = 10.0 // document units per key press
	panStepSlow = 1.0

	scrollStep = 30.0 // device pixels per wheel step
)

func main() {
	pageNum := flag.Int("page", 1, "page to show first (1-based)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] file.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := document.Open(flag.Arg(0), *pageNum-1)
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()

	driver.Main(func(s screen.Screen) {
		v := &viewer{
			s:         s,
			doc:       doc,
			transform: docview.NewTransform(),
		}
		if err := v.run(); err != nil {
			log.Fatal(err)
		}
	})
}

type viewer struct {
	s   screen.Screen
	w   screen.Window
	doc *document.Document

	transform *docview.Transform
	invert    bool

	view docview.IntDims
	geom docview.Geometry
	buf  screen.Buffer

	dragging  bool
	dragStart vec.Vec2
}

func (v *viewer) run() error {
	w, err := v.s.NewWindow(&screen.NewWindowOptions{
		Title: "docview",
	})
	if err != nil {
		return err
	}
	defer w.Release()
	v.w = w

	defer func() {
		if v.buf != nil {
			v.buf.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case size.Event:
			if v.buf != nil {
				v.buf.Release()
				v.buf = nil
			}
			if e.WidthPx > 0 && e.HeightPx > 0 {
				v.buf, err = v.s.NewBuffer(e.Size())
				if err != nil {
					return err
				}
			}
			v.view = docview.IntDims{W: e.WidthPx, H: e.HeightPx}

		case paint.Event:
			v.paint()

		case key.Event:
			if e.Direction == key.DirRelease {
				break
			}
			if quit := v.handleKey(e); quit {
				return nil
			}

		case mouse.Event:
			v.handleMouse(e)

		case error:
			log.Print(e)
		}
	}
}

func (v *viewer) repaint() {
	v.w.Send(paint.Event{})
}

func (v *viewer) paint() {
	if v.buf == nil {
		return
	}
	dst := v.buf.RGBA()

	// The window surface is addressed in device pixels.
	v.geom = docview.Resolve(v.transform, v.doc.Page().Bounds(), v.view, 1)
	if v.geom.Degenerate() {
		present.Blit(dst, nil, vec.Vec2{}, false)
	} else {
		pix, err := docview.RenderFrame(context.Background(), v.doc.Page(), v.geom)
		if err != nil {
			log.Print(err)
		}
		present.Blit(dst, pix, v.geom.Offset, v.invert)
	}

	v.w.Upload(image.Point{}, v.buf, v.buf.Bounds())
	v.w.Publish()
}

func (v *viewer) handleKey(e key.Event) (quit bool) {
	step := panStepSlow
	if e.Modifiers&key.ModShift != 0 {
		step = panStep
	}

	switch e.Code {
	case key.CodeEscape:
		return true
	case key.CodePageUp:
		v.turnPage(-1)
		return false
	case key.CodePageDown:
		v.turnPage(+1)
		return false
	}

	switch e.Rune {
	case 'q':
		return true
	case '+', '=':
		v.transform.ApplyZoom(zoomInStep)
	case '-':
		v.transform.ApplyZoom(zoomOutStep)
	case 'h', 'H':
		v.transform.ApplyPan(vec.Vec2{X: -step})
	case 'l', 'L':
		v.transform.ApplyPan(vec.Vec2{X: step})
	case 'k', 'K':
		v.transform.ApplyPan(vec.Vec2{Y: -step})
	case 'j', 'J':
		v.transform.ApplyPan(vec.Vec2{Y: step})
	case '0':
		v.transform.Reset()
	case 'i':
		v.invert = !v.invert
	case 'r':
		err := v.doc.Reload()
		if err != nil {
			log.Printf("reload: %v", err)
			return false
		}
	default:
		return false
	}

	v.repaint()
	return false
}

func (v *viewer) turnPage(delta int) {
	moved, err := v.doc.Navigate(delta)
	if err != nil {
		log.Printf("page change: %v", err)
		return
	}
	if moved {
		v.transform.Reset()
		v.repaint()
	}
}

func (v *viewer) handleMouse(e mouse.Event) {
	pos := vec.Vec2{X: float64(e.X), Y: float64(e.Y)}

	switch e.Button {
	case mouse.ButtonWheelUp, mouse.ButtonWheelDown:
		if e.Direction == mouse.DirRelease {
			return
		}
		dy := 1.0
		if e.Button == mouse.ButtonWheelUp {
			dy = -1.0
		}
		if e.Modifiers&key.ModControl != 0 {
			v.transform.ApplyZoom(math.Pow(zoomOutStep, dy))
		} else if v.geom.ScaleBase > 0 {
			v.transform.ApplyPan(vec.Vec2{Y: dy * scrollStep / v.geom.ScaleBase})
		}
		v.repaint()
		return

	case mouse.ButtonMiddle:
		switch e.Direction {
		case mouse.DirPress:
			v.dragging = true
			v.dragStart = pos
		case mouse.DirRelease:
			if v.dragging {
				v.dragging = false
				v.transform.EndDrag(pos.Sub(v.dragStart), v.geom.ScaleBase)
				v.repaint()
			}
		}
		return
	}

	if v.dragging && e.Direction == mouse.DirNone {
		v.transform.UpdateDrag(pos.Sub(v.dragStart))
		v.repaint()
	}
}
