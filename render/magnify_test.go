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
	"testing"

	"github.com/KojoZero/melonds-ds/hardware/nds"
	"github.com/KojoZero/melonds-ds/screenlayout"
)

// a deterministic pattern with enough variation to show up resampling
// mistakes.
func patternScreen() *image.RGBA {
	img := nds.NewScreenBuffer()
	for y := 0; y < nds.ScreenHeight; y++ {
		for x := 0; x < nds.ScreenWidth; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x),
				G: uint8(y),
				B: uint8((x * y) >> 4),
				A: 255,
			})
		}
	}
	return img
}

func TestMagnifyIdentity(t *testing.T) {
	// at ratio one both filters must leave the screen untouched
	src := patternScreen()

	for _, filter := range []screenlayout.Filter{screenlayout.FilterNearest, screenlayout.FilterLinear} {
		mag := NewMagnifier(filter, nds.ScreenSize())
		dst := nds.NewScreenBuffer()
		mag.Scale(dst, src)

		for i := range src.Pix {
			if dst.Pix[i] != src.Pix[i] {
				t.Fatalf("filter %v not an identity at ratio one (byte %d)", filter, i)
			}
		}
	}
}

func TestMagnifyNearest(t *testing.T) {
	// nearest neighbour at ratio two replicates every source pixel into a
	// two by two block
	src := patternScreen()

	size := image.Point{X: nds.ScreenWidth * 2, Y: nds.ScreenHeight * 2}
	mag := NewMagnifier(screenlayout.FilterNearest, size)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	mag.Scale(dst, src)

	for _, p := range []image.Point{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 255, Y: 191}} {
		want := src.RGBAAt(p.X, p.Y)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				got := dst.RGBAAt(p.X*2+dx, p.Y*2+dy)
				if got != want {
					t.Fatalf("block (%d,%d) offset (%d,%d): got %v, wanted %v", p.X, p.Y, dx, dy, got, want)
				}
			}
		}
	}
}

func TestMagnifyOpaque(t *testing.T) {
	// bilinear output stays fully opaque when the source is
	src := patternScreen()

	size := image.Point{X: nds.ScreenWidth * 3, Y: nds.ScreenHeight * 3}
	mag := NewMagnifier(screenlayout.FilterLinear, size)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	mag.Scale(dst, src)

	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 255 {
			t.Fatalf("alpha not opaque at byte %d", i)
		}
	}
}

func TestMagnifyReconfigure(t *testing.T) {
	size := image.Point{X: nds.ScreenWidth * 2, Y: nds.ScreenHeight * 2}
	mag := NewMagnifier(screenlayout.FilterLinear, size)

	// an unchanged configuration must not rebuild the scaler
	before := mag.scaler
	mag.Reconfigure(screenlayout.FilterLinear, size)
	if mag.scaler != before {
		t.Fatalf("scaler rebuilt for an unchanged configuration")
	}

	// changing either setting replaces it
	mag.Reconfigure(screenlayout.FilterNearest, size)
	if mag.scaler == before {
		t.Fatalf("scaler not rebuilt for a filter change")
	}

	mag.Reconfigure(screenlayout.FilterLinear, image.Point{X: nds.ScreenWidth * 3, Y: nds.ScreenHeight * 3})
	if mag.scaler == before {
		t.Fatalf("scaler not rebuilt for a size change")
	}
}
