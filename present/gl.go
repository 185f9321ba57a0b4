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

package present

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/mobile/gl"

	"seehuhn.de/go/docview"
	"seehuhn.de/go/geom/vec"
)

// ErrUnrealized is returned by [GLPresenter.Draw] when the GL
// resources have not been created yet.
var ErrUnrealized = errors.New("present: GL resources not realized")

type resourceState int

const (
	stateUnrealized resourceState = iota
	stateRealized
)

// GLPresenter shows page buffers by uploading them as a texture and
// drawing a fullscreen quad.  The placement test, the vertical flip
// and the optional luminance inversion all happen in the fragment
// shader.
//
// A GLPresenter starts out without GL resources.  [GLPresenter.Realize]
// must be called with a current context before the first Draw, and
// [GLPresenter.Unrealize] before the context goes away.
type GLPresenter struct {
	state resourceState

	program gl.Program
	buf     gl.Buffer
	tex     gl.Texture

	position gl.Attrib
	invert   gl.Uniform
	area     gl.Uniform
	sampler  gl.Uniform
}

// Two triangles covering the whole viewport.
var quadData = floatBytes(
	-1, +1,
	+1, -1,
	-1, -1,
	-1, +1,
	+1, +1,
	+1, -1,
)

const quadVertexCount = 6

const vertexShader = `#version 300 es

layout(location = 0) in vec2 position;

void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShader = `#version 300 es
precision mediump float;

out vec4 outColor;
uniform bool invert;
uniform ivec4 area;
uniform sampler2D tex;

void main() {
	ivec2 coord = ivec2(gl_FragCoord);
	coord = ivec2(coord.x - area.x, area.y - coord.y - 1);
	if (0 > coord.x || coord.x >= area.z || 0 > coord.y || coord.y >= area.w) {
		outColor = vec4(0.5, 0.5, 0.5, 1.0);
	} else {
		outColor = texelFetch(tex, coord, 0);
		if (invert) {
			float y  = 0.299 * outColor.r + 0.587 * outColor.g + 0.114 * outColor.b;
			float cb = -0.168736 * outColor.r - 0.331264 * outColor.g + 0.5 * outColor.b;
			float cr = 0.5 * outColor.r - 0.418688 * outColor.g - 0.081312 * outColor.b;
			y = 1.0 - y;
			float r = y + 1.402 * cr;
			float g = y - 0.344136 * cb - 0.714136 * cr;
			float b = y + 1.772 * cb;
			outColor = vec4(r, g, b, outColor.a);
		}
	}
}
`

// Realize creates the shader program, the vertex buffer and the
// texture.  Shader compilation or link failures are returned as
// errors; in that case no resources are left behind.
func (p *GLPresenter) Realize(glctx gl.Context) error {
	if p.state == stateRealized {
		return nil
	}

	program, err := createProgram(glctx, vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	p.program = program
	p.position = glctx.GetAttribLocation(program, "position")
	p.invert = glctx.GetUniformLocation(program, "invert")
	p.area = glctx.GetUniformLocation(program, "area")
	p.sampler = glctx.GetUniformLocation(program, "tex")

	p.buf = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, p.buf)
	glctx.BufferData(gl.ARRAY_BUFFER, quadData, gl.STATIC_DRAW)

	p.tex = glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, p.tex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	p.state = stateRealized
	return nil
}

// Unrealize releases all GL resources.  It is safe to call on an
// unrealized presenter.
func (p *GLPresenter) Unrealize(glctx gl.Context) {
	if p.state != stateRealized {
		return
	}
	glctx.DeleteProgram(p.program)
	glctx.DeleteBuffer(p.buf)
	glctx.DeleteTexture(p.tex)
	p.state = stateUnrealized
}

// Draw shows the page buffer pix on a surface of the given size.  The
// top-left corner of pix lands at the placement offset off, in
// surface pixels.  Uncovered parts of the surface are mid-gray.
//
// Draw returns [ErrUnrealized] if Realize has not been called.
func (p *GLPresenter) Draw(glctx gl.Context, pix *image.RGBA, surface docview.IntDims, off vec.Vec2, invert bool) error {
	if p.state != stateRealized {
		return ErrUnrealized
	}

	glctx.ClearColor(0.5, 0.5, 0.5, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	glctx.UseProgram(p.program)

	b := pix.Bounds()
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, p.tex)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, b.Dx(), b.Dy(),
		gl.RGBA, gl.UNSIGNED_BYTE, pix.Pix)
	glctx.Uniform1i(p.sampler, 0)

	inv := 0
	if invert {
		inv = 1
	}
	glctx.Uniform1i(p.invert, inv)
	glctx.Uniform4i(p.area,
		int32(math.Round(off.X)),
		int32(surface.H)-int32(math.Round(off.Y)),
		int32(b.Dx()),
		int32(b.Dy()))

	glctx.BindBuffer(gl.ARRAY_BUFFER, p.buf)
	glctx.EnableVertexAttribArray(p.position)
	glctx.VertexAttribPointer(p.position, 2, gl.FLOAT, false, 0, 0)
	glctx.DrawArrays(gl.TRIANGLES, 0, quadVertexCount)
	glctx.DisableVertexAttribArray(p.position)

	glctx.Flush()
	return nil
}

// createProgram creates, compiles, and links a gl.Program.
func createProgram(glctx gl.Context, vertexSrc, fragmentSrc string) (gl.Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, errors.New("present: no programs available")
	}

	vertexShader, err := loadShader(glctx, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	fragmentShader, err := loadShader(glctx, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vertexShader)
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}

	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	glctx.DeleteShader(vertexShader)
	glctx.DeleteShader(fragmentShader)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(program)
		return gl.Program{}, fmt.Errorf("present: link: %s", glctx.GetProgramInfoLog(program))
	}
	return program, nil
}

func loadShader(glctx gl.Context, shaderType gl.Enum, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(shaderType)
	if shader.Value == 0 {
		return gl.Shader{}, fmt.Errorf("present: could not create shader (type %v)", shaderType)
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(shader)
		return gl.Shader{}, fmt.Errorf("present: shader compile: %s", glctx.GetShaderInfoLog(shader))
	}
	return shader, nil
}

// floatBytes returns the little-endian byte representation of the
// given float32 values, for use with BufferData.
func floatBytes(values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}
