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

// Package docview maps a fixed-size document page onto a variable-size,
// scrollable and zoomable viewport.
//
// The package is organised around three steps, executed once per frame:
//
//   - A [Transform] holds the user-controlled pan and zoom state.
//   - [Resolve] combines the transform with the page bounds, the viewport
//     size and the device pixel ratio into an immutable [Geometry]
//     snapshot: the visible sub-rectangle of the page, the scale at which
//     to rasterize it, and where the pixels land on the output surface.
//   - [RenderFrame] asks a [Painter] to rasterize exactly the snapshot's
//     clip rectangle into a pixel buffer.
//
// Presenting the buffer on an output surface is the job of the present
// sub-package; loading documents and painting page content is the job of
// the document sub-package.
//
// Four coordinate spaces appear throughout: document space (the page's
// native units), logical view space (layout pixels), device space
// (hardware pixels, logical times the device pixel ratio), and buffer
// space (pixels of one rasterized frame).
package docview
