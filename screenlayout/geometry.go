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

package screenlayout

import (
	"image"

	"github.com/KojoZero/melonds-ds/hardware/nds"

	"golang.org/x/image/math/f64"
)

// Geometry is a pure value answering placement and transform questions for
// one combination of layout, magnification ratio, filter and side-screen
// mode. All methods are queries. Geometry values are built by the
// configuration and read by the renderer once per frame.
type Geometry struct {
	Layout   Layout
	Ratio    int
	Filter   Filter
	SideMode SideScreenMode
}

// NewGeometry is the preferred method of initialisation for the Geometry
// type. A ratio below one is treated as one.
func NewGeometry(layout Layout, ratio int, filter Filter, mode SideScreenMode) Geometry {
	if ratio < 1 {
		ratio = 1
	}
	return Geometry{
		Layout:   layout,
		Ratio:    ratio,
		Filter:   filter,
		SideMode: mode,
	}
}

// BufferSize returns the canvas dimensions required by the layout at the
// current magnification ratio.
func (g Geometry) BufferSize() image.Point {
	switch g.Layout {
	case TopOnly, BottomOnly:
		return image.Point{X: nds.ScreenWidth, Y: nds.ScreenHeight}
	case TopBottom, BottomTop:
		return image.Point{X: nds.ScreenWidth, Y: nds.ScreenHeight * 2}
	case LeftRight, RightLeft:
		return image.Point{X: nds.ScreenWidth * 2, Y: nds.ScreenHeight}
	}

	// hybrid and large-screen families share the same canvas: the magnified
	// screen plus a side column one screen wide
	return image.Point{
		X: nds.ScreenWidth*g.Ratio + nds.ScreenWidth,
		Y: nds.ScreenHeight * g.Ratio,
	}
}

// MagnifiedScreenSize returns the dimensions of a single screen scaled by
// the current ratio.
func (g Geometry) MagnifiedScreenSize() image.Point {
	return image.Point{
		X: nds.ScreenWidth * g.Ratio,
		Y: nds.ScreenHeight * g.Ratio,
	}
}

// x coordinate of the side column. the flipped variants mirror the
// arrangement, putting the column on the left edge.
func (g Geometry) sideColumnX() int {
	if g.flipped() {
		return 0
	}
	return nds.ScreenWidth * g.Ratio
}

// x coordinate of the magnified screen.
func (g Geometry) magnifiedX() int {
	if g.flipped() {
		return nds.ScreenWidth
	}
	return 0
}

func (g Geometry) flipped() bool {
	switch g.Layout {
	case FlippedHybridTop, FlippedHybridBottom, FlippedLargescreenTop, FlippedLargescreenBottom:
		return true
	}
	return false
}

// y coordinate that centres a single inset in the side column.
func (g Geometry) sideCentreY() int {
	return (nds.ScreenHeight*g.Ratio - nds.ScreenHeight) / 2
}

// TopScreenTranslation returns the canvas position of the top screen's
// top-left corner. For hybrid layouts this is the position of the top
// screen's inset; for large-screen layouts it is the position of the
// magnified screen or the companion inset as appropriate.
func (g Geometry) TopScreenTranslation() image.Point {
	switch g.Layout {
	case TopOnly, BottomOnly, TopBottom, LeftRight:
		return image.Point{}
	case BottomTop:
		return image.Point{Y: nds.ScreenHeight}
	case RightLeft:
		return image.Point{X: nds.ScreenWidth}
	case LargescreenTop, FlippedLargescreenTop:
		return image.Point{X: g.magnifiedX()}
	case LargescreenBottom, FlippedLargescreenBottom:
		return image.Point{X: g.sideColumnX(), Y: g.sideCentreY()}
	}

	// hybrid family. the top inset occupies the top of the side column
	return image.Point{X: g.sideColumnX()}
}

// BottomScreenTranslation returns the canvas position of the bottom screen's
// top-left corner, following the same family rules as
// TopScreenTranslation().
func (g Geometry) BottomScreenTranslation() image.Point {
	switch g.Layout {
	case TopOnly, BottomOnly, BottomTop, RightLeft:
		return image.Point{}
	case TopBottom:
		return image.Point{Y: nds.ScreenHeight}
	case LeftRight:
		return image.Point{X: nds.ScreenWidth}
	case LargescreenBottom, FlippedLargescreenBottom:
		return image.Point{X: g.magnifiedX()}
	case LargescreenTop, FlippedLargescreenTop:
		return image.Point{X: g.sideColumnX(), Y: g.sideCentreY()}
	}

	// hybrid family. the bottom inset occupies the bottom of the side column
	return image.Point{X: g.sideColumnX(), Y: nds.ScreenHeight*g.Ratio - nds.ScreenHeight}
}

// HybridScreenTranslation returns the canvas position of the magnified
// screen in the hybrid family.
func (g Geometry) HybridScreenTranslation() image.Point {
	return image.Point{X: g.magnifiedX()}
}

// CursorScale returns the integer scale applied to the cursor reticle. The
// scale is the magnification ratio when the bottom screen is the magnified
// screen of a large-screen layout and one in every other layout.
func (g Geometry) CursorScale() int {
	if g.Layout == LargescreenBottom || g.Layout == FlippedLargescreenBottom {
		return g.Ratio
	}
	return 1
}

// BottomScreenMatrix returns the affine transform from bottom-screen source
// coordinates to canvas coordinates.
func (g Geometry) BottomScreenMatrix() f64.Aff3 {
	s := float64(g.CursorScale())
	t := g.BottomScreenTranslation()
	return f64.Aff3{
		s, 0, float64(t.X),
		0, s, float64(t.Y),
	}
}

// PointerPosition maps a canvas coordinate back to bottom-screen source
// coordinates. It is the inverse of BottomScreenMatrix() and is used to
// translate pointer input on the composed image into a touch position. The
// result is not clamped to the screen's bounds.
func (g Geometry) PointerPosition(p image.Point) image.Point {
	s := g.CursorScale()
	t := g.BottomScreenTranslation()
	return image.Point{
		X: floorDiv(p.X-t.X, s),
		Y: floorDiv(p.Y-t.Y, s),
	}
}

// floor division for symmetric mapping of negative coordinates.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
