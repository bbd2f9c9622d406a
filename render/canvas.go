// This file is part of melonds-ds.
//
// melonds-ds is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// melonds-ds is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with melonds-ds.  If not, see <https://www.gnu.org/licenses/>.

package render

import (
	"image"

	"github.com/KojoZero/melonds-ds/hardware/nds"
)

// Canvas is a resizable block of RGBA pixels that screens are copied into.
// The zero size canvas is valid; Resize() before first use.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas() *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rectangle{}),
	}
}

// Resize the canvas. Pixel memory is reallocated only when the size actually
// changes. The content after a reallocation is undefined; after a no-op
// resize the previous content is retained.
func (c *Canvas) Resize(size image.Point) {
	if c.Size() == size {
		return
	}
	c.img = image.NewRGBA(image.Rectangle{Max: size})
}

// Clear the entire canvas to opaque black.
func (c *Canvas) Clear() {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += nds.ScreenDepth {
		pix[i] = 0
		pix[i+1] = 0
		pix[i+2] = 0
		pix[i+3] = 255
	}
}

// CopyDirect copies src into the canvas at dest with a single bulk copy. It
// requires that src is as wide as the canvas and that dest.X is zero, ie.
// that the source occupies its destination rows completely. CopyRows() is
// the general alternative.
func (c *Canvas) CopyDirect(src *image.RGBA, dest image.Point) {
	offset := dest.Y*c.img.Stride + dest.X*nds.ScreenDepth
	copy(c.img.Pix[offset:], src.Pix)
}

// CopyRows copies src into the canvas at dest one row at a time, respecting
// the strides of both images.
func (c *Canvas) CopyRows(src *image.RGBA, dest image.Point) {
	width := src.Rect.Dx() * nds.ScreenDepth
	for y := 0; y < src.Rect.Dy(); y++ {
		so := y * src.Stride
		do := (dest.Y+y)*c.img.Stride + dest.X*nds.ScreenDepth
		copy(c.img.Pix[do:do+width], src.Pix[so:so+width])
	}
}

// Size returns the current canvas dimensions.
func (c *Canvas) Size() image.Point {
	return image.Point{X: c.img.Rect.Dx(), Y: c.img.Rect.Dy()}
}

// Image returns the canvas as an image. The returned image shares the canvas
// pixel memory and is invalidated by the next Resize().
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Pix returns the raw pixel memory. As with Image() the slice is shared and
// is invalidated by the next Resize().
func (c *Canvas) Pix() []byte {
	return c.img.Pix
}

// Stride returns the canvas stride in pixels.
func (c *Canvas) Stride() int {
	return c.img.Stride / nds.ScreenDepth
}
