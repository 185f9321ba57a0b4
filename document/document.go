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

// Package document opens PDF files and exposes a single current page
// at a time.  A [Document] is a navigation session: it remembers which
// page is shown, moves between pages, and can reload the file in place
// while keeping the viewer alive if the new copy turns out to be
// broken.
package document

import (
	"errors"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font/loader"
	"seehuhn.de/go/pdf/pagetree"
)

// Document is an open PDF file together with the currently shown page.
//
// A Document is not safe for concurrent use.
type Document struct {
	fname    string
	r        *pdf.Reader
	fonts    *loader.FontLoader
	numPages int
	pageNo   int
	page     *Page
}

// Page is one page of a [Document], ready for painting.
//
// A Page remains valid until the Document it came from is closed or
// reloaded.
type Page struct {
	r        pdf.Getter
	fonts    *loader.FontLoader
	dict     pdf.Dict
	mediaBox *pdf.Rectangle
}

// Open opens the PDF file fname and loads the page with the given
// zero-based index.  If pageNo is out of range it is clamped to the
// valid range.
func Open(fname string, pageNo int) (*Document, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		fname: fname,
		fonts: loader.NewFontLoader(),
	}
	numPages, pageNo, page, err := doc.load(r, pageNo)
	if err != nil {
		r.Close()
		return nil, err
	}
	doc.r = r
	doc.numPages = numPages
	doc.pageNo = pageNo
	doc.page = page
	return doc, nil
}

// load reads the page count from r and loads the page with the given
// index, clamped to the valid range.  It does not modify doc.
func (doc *Document) load(r *pdf.Reader, pageNo int) (numPages, clamped int, page *Page, err error) {
	numPages, err = pagetree.NumPages(r)
	if err != nil {
		return 0, 0, nil, err
	}
	if numPages < 1 {
		return 0, 0, nil, errors.New("document has no pages")
	}

	clamped = pageNo
	if clamped > numPages-1 {
		clamped = numPages - 1
	}
	if clamped < 0 {
		clamped = 0
	}

	page, err = loadPage(r, doc.fonts, clamped)
	if err != nil {
		return 0, 0, nil, err
	}
	return numPages, clamped, page, nil
}

func loadPage(r pdf.Getter, fonts *loader.FontLoader, pageNo int) (*Page, error) {
	dict, err := pagetree.GetPage(r, pageNo)
	if err != nil {
		return nil, err
	}
	mediaBox, err := pdf.GetRectangle(r, dict["MediaBox"])
	if err != nil {
		return nil, err
	}
	if mediaBox == nil {
		// PDF 32000-1:2008, 14.3: US Letter is the default for
		// files which lie about their page geometry.
		mediaBox = &pdf.Rectangle{URx: 612, URy: 792}
	}
	return &Page{
		r:        r,
		fonts:    fonts,
		dict:     dict,
		mediaBox: mediaBox,
	}, nil
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() int {
	return doc.numPages
}

// PageIndex returns the zero-based index of the current page.
func (doc *Document) PageIndex() int {
	return doc.pageNo
}

// Page returns the current page.
func (doc *Document) Page() *Page {
	return doc.page
}

// Navigate moves delta pages forward (or backward, for negative
// delta).  If the target page would fall outside the document,
// Navigate does nothing and returns false.  The current page is only
// replaced once the new page has loaded successfully.
func (doc *Document) Navigate(delta int) (bool, error) {
	pageNo := doc.pageNo + delta
	if pageNo < 0 || pageNo >= doc.numPages {
		return false, nil
	}

	page, err := loadPage(doc.r, doc.fonts, pageNo)
	if err != nil {
		return false, err
	}
	doc.pageNo = pageNo
	doc.page = page
	return true, nil
}

// Reload re-opens the file the document was loaded from, staying as
// close as possible to the current page position.  If the file cannot
// be opened or parsed, the document is left unchanged and the old page
// stays valid.
func (doc *Document) Reload() error {
	r, err := pdf.Open(doc.fname, nil)
	if err != nil {
		return err
	}
	numPages, pageNo, page, err := doc.load(r, doc.pageNo)
	if err != nil {
		r.Close()
		return err
	}

	doc.r.Close()
	doc.r = r
	doc.numPages = numPages
	doc.pageNo = pageNo
	doc.page = page
	return nil
}

// Close closes the underlying file.  Pages obtained from the document
// must no longer be used after Close.
func (doc *Document) Close() error {
	doc.page = nil
	return doc.r.Close()
}

// Bounds returns the page outline in document coordinates.  The
// origin is the top-left corner of the page, with y growing downwards
// and one unit corresponding to one PDF unit (1/72 inch).
func (p *Page) Bounds() rect.Rect {
	return rect.Rect{
		URx: p.mediaBox.URx - p.mediaBox.LLx,
		URy: p.mediaBox.URy - p.mediaBox.LLy,
	}
}
