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
	"image/color"

	"github.com/KojoZero/melonds-ds/hardware/nds"
	"github.com/KojoZero/melonds-ds/screenlayout"
)

var (
	cursorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cursorBlack = color.RGBA{A: 255}
)

// drawCursor overlays the touch reticle on the canvas: a white square with a
// black outline along its edges but not its corners. The reticle is centred
// on the touch position mapped through the bottom screen transform and is
// drawn at the cursor scale of the layout, so that its apparent size tracks
// any magnification of the bottom screen. The pixels underneath are
// overwritten, not blended.
//
// size is the half-extent used when centring the reticle near the canvas
// edges. A reticle near an edge is pulled inwards rather than truncated.
func drawCursor(c *Canvas, geom screenlayout.Geometry, touch image.Point, size int) {
	// the one layout with no bottom screen anywhere in the canvas
	if geom.Layout == screenlayout.TopOnly {
		return
	}

	touch.X = clamp(touch.X, 0, nds.ScreenWidth-1)
	touch.Y = clamp(touch.Y, 0, nds.ScreenHeight-1)

	m := geom.BottomScreenMatrix()
	t := image.Point{
		X: int(m[0])*touch.X + int(m[2]),
		Y: int(m[4])*touch.Y + int(m[5]),
	}

	// note that the clamp here is to the buffer size, not the last valid
	// coordinate. the centring below relies on it
	buf := c.Size()
	start := image.Point{
		X: clamp(t.X-size, 0, buf.X),
		Y: clamp(t.Y-size, 0, buf.Y),
	}
	end := image.Point{
		X: clamp(t.X+size, 0, buf.X),
		Y: clamp(t.Y+size, 0, buf.Y),
	}
	centre := image.Point{
		X: (start.X + end.X) / 2,
		Y: (start.Y + end.Y) / 2,
	}

	scale := geom.CursorScale()

	sx := clamp(centre.X-2*scale, 0, buf.X-1)
	sy := clamp(centre.Y-2*scale, 0, buf.Y-1)
	ex := clamp(centre.X+2*scale+(scale-1), 0, buf.X-1)
	ey := clamp(centre.Y+2*scale+(scale-1), 0, buf.Y-1)

	for y := sy; y <= ey; y++ {
		for x := sx; x <= ex; x++ {
			// cell coordinates relative to the centre, each cell being
			// scale pixels square
			abx := abs(floorDiv(x-centre.X, scale))
			aby := abs(floorDiv(y-centre.Y, scale))

			switch {
			case abx <= 1 && aby <= 1:
				c.img.SetRGBA(x, y, cursorWhite)
			case (aby == 2 && abx <= 1) || (abx == 2 && aby <= 1):
				c.img.SetRGBA(x, y, cursorBlack)
			}
		}
	}
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floor division for symmetric cell boundaries either side of the centre.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
