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

package screenlayout_test

import (
	"image"
	"testing"

	"github.com/KojoZero/melonds-ds/screenlayout"
	"github.com/KojoZero/melonds-ds/test"
)

func geom(l screenlayout.Layout, ratio int) screenlayout.Geometry {
	return screenlayout.NewGeometry(l, ratio, screenlayout.FilterNearest, screenlayout.ShowBoth)
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		layout screenlayout.Layout
		ratio  int
		size   image.Point
	}{
		{screenlayout.TopOnly, 1, image.Point{X: 256, Y: 192}},
		{screenlayout.BottomOnly, 3, image.Point{X: 256, Y: 192}},
		{screenlayout.TopBottom, 1, image.Point{X: 256, Y: 384}},
		{screenlayout.BottomTop, 2, image.Point{X: 256, Y: 384}},
		{screenlayout.LeftRight, 1, image.Point{X: 512, Y: 192}},
		{screenlayout.RightLeft, 4, image.Point{X: 512, Y: 192}},
		{screenlayout.HybridTop, 1, image.Point{X: 512, Y: 192}},
		{screenlayout.HybridTop, 2, image.Point{X: 768, Y: 384}},
		{screenlayout.FlippedHybridBottom, 3, image.Point{X: 1024, Y: 576}},
		{screenlayout.LargescreenTop, 2, image.Point{X: 768, Y: 384}},
		{screenlayout.FlippedLargescreenBottom, 3, image.Point{X: 1024, Y: 576}},
	}

	for _, tt := range tests {
		test.Equate(t, geom(tt.layout, tt.ratio).BufferSize(), tt.size)
	}
}

func TestRatioNormalisation(t *testing.T) {
	// a ratio below one is treated as one
	g := geom(screenlayout.HybridTop, 0)
	test.Equate(t, g.Ratio, 1)
	test.Equate(t, g.BufferSize(), image.Point{X: 512, Y: 192})
}

func TestSimpleTranslations(t *testing.T) {
	g := geom(screenlayout.TopBottom, 1)
	test.Equate(t, g.TopScreenTranslation(), image.Point{})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{Y: 192})

	g = geom(screenlayout.BottomTop, 1)
	test.Equate(t, g.TopScreenTranslation(), image.Point{Y: 192})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{})

	g = geom(screenlayout.LeftRight, 1)
	test.Equate(t, g.TopScreenTranslation(), image.Point{})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{X: 256})

	g = geom(screenlayout.RightLeft, 1)
	test.Equate(t, g.TopScreenTranslation(), image.Point{X: 256})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{})
}

func TestHybridTranslations(t *testing.T) {
	// the magnified screen occupies the left edge and the insets sit in a
	// column to its right, top inset at the top and bottom inset at the
	// bottom
	g := geom(screenlayout.HybridTop, 2)
	test.Equate(t, g.HybridScreenTranslation(), image.Point{})
	test.Equate(t, g.TopScreenTranslation(), image.Point{X: 512})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{X: 512, Y: 192})

	// both hybrid variants use the same slots
	g = geom(screenlayout.HybridBottom, 2)
	test.Equate(t, g.HybridScreenTranslation(), image.Point{})
	test.Equate(t, g.TopScreenTranslation(), image.Point{X: 512})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{X: 512, Y: 192})

	// flipped variants mirror the arrangement
	g = geom(screenlayout.FlippedHybridTop, 2)
	test.Equate(t, g.HybridScreenTranslation(), image.Point{X: 256})
	test.Equate(t, g.TopScreenTranslation(), image.Point{})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{Y: 192})
}

func TestLargescreenTranslations(t *testing.T) {
	// the magnified screen is placed at its own translation and the
	// companion inset is centred vertically in the side column
	g := geom(screenlayout.LargescreenTop, 2)
	test.Equate(t, g.TopScreenTranslation(), image.Point{})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{X: 512, Y: 96})

	g = geom(screenlayout.LargescreenBottom, 2)
	test.Equate(t, g.BottomScreenTranslation(), image.Point{})
	test.Equate(t, g.TopScreenTranslation(), image.Point{X: 512, Y: 96})

	g = geom(screenlayout.FlippedLargescreenTop, 3)
	test.Equate(t, g.TopScreenTranslation(), image.Point{X: 256})
	test.Equate(t, g.BottomScreenTranslation(), image.Point{Y: 192})

	g = geom(screenlayout.FlippedLargescreenBottom, 3)
	test.Equate(t, g.BottomScreenTranslation(), image.Point{X: 256})
	test.Equate(t, g.TopScreenTranslation(), image.Point{Y: 192})
}

func TestCursorScale(t *testing.T) {
	// the cursor is scaled only when the bottom screen is the magnified
	// screen of a large-screen layout. in every other layout the cursor
	// lands on an original-size rendering of the bottom screen
	for _, l := range screenlayout.LayoutList {
		g := geom(l, 3)
		if l == screenlayout.LargescreenBottom || l == screenlayout.FlippedLargescreenBottom {
			test.Equate(t, g.CursorScale(), 3)
		} else {
			test.Equate(t, g.CursorScale(), 1)
		}
	}
}

func TestBottomScreenMatrix(t *testing.T) {
	g := geom(screenlayout.TopBottom, 1)
	m := g.BottomScreenMatrix()
	test.Equate(t, int(m[0]), 1)
	test.Equate(t, int(m[2]), 0)
	test.Equate(t, int(m[4]), 1)
	test.Equate(t, int(m[5]), 192)

	g = geom(screenlayout.LargescreenBottom, 3)
	m = g.BottomScreenMatrix()
	test.Equate(t, int(m[0]), 3)
	test.Equate(t, int(m[2]), 0)
	test.Equate(t, int(m[4]), 3)
	test.Equate(t, int(m[5]), 0)

	g = geom(screenlayout.FlippedLargescreenBottom, 3)
	m = g.BottomScreenMatrix()
	test.Equate(t, int(m[2]), 256)
	test.Equate(t, int(m[5]), 0)
}

func TestPointerPosition(t *testing.T) {
	// PointerPosition() inverts BottomScreenMatrix() for every layout
	for _, l := range screenlayout.LayoutList {
		g := geom(l, 2)
		m := g.BottomScreenMatrix()

		for _, p := range []image.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 255, Y: 191}} {
			canvas := image.Point{
				X: int(m[0])*p.X + int(m[2]),
				Y: int(m[4])*p.Y + int(m[5]),
			}
			test.Equate(t, g.PointerPosition(canvas), p)
		}
	}

	// positions off the bottom screen are reported unclamped
	g := geom(screenlayout.TopBottom, 1)
	test.Equate(t, g.PointerPosition(image.Point{X: 10, Y: 0}), image.Point{X: 10, Y: -192})

	// canvas pixels inside a scaled cell map to the source pixel that
	// produced them, including left of the origin
	g = geom(screenlayout.LargescreenBottom, 2)
	test.Equate(t, g.PointerPosition(image.Point{X: 5, Y: 4}), image.Point{X: 2, Y: 2})
	test.Equate(t, g.PointerPosition(image.Point{X: -1, Y: 0}), image.Point{X: -1, Y: 0})
}
