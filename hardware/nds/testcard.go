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

package nds

import (
	"image"
	"image/color"
)

// colour bars for the top screen
var testCardBars = [8]color.RGBA{
	{R: 192, G: 192, B: 192, A: 255},
	{R: 192, G: 192, B: 0, A: 255},
	{R: 0, G: 192, B: 192, A: 255},
	{R: 0, G: 192, B: 0, A: 255},
	{R: 192, G: 0, B: 192, A: 255},
	{R: 192, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 192, A: 255},
	{R: 32, G: 32, B: 32, A: 255},
}

// TestCard is a FrameSource that animates a pair of distinct patterns, one
// per screen. It stands in for an emulation core during development and in
// tests.
//
// The patterns are a deterministic function of the frame number. Two cards
// advanced the same number of times produce identical screens.
type TestCard struct {
	top    *image.RGBA
	bottom *image.RGBA
	frame  int
}

// NewTestCard is the preferred method of initialisation for the TestCard
// type.
func NewTestCard() *TestCard {
	c := &TestCard{
		top:    NewScreenBuffer(),
		bottom: NewScreenBuffer(),
	}
	c.draw()
	return c
}

// Advance the animation by one frame.
func (c *TestCard) Advance() {
	c.frame++
	c.draw()
}

// TopScreen implements the FrameSource interface.
func (c *TestCard) TopScreen() *image.RGBA {
	return c.top
}

// BottomScreen implements the FrameSource interface.
func (c *TestCard) BottomScreen() *image.RGBA {
	return c.bottom
}

func (c *TestCard) draw() {
	// top screen. colour bars with a sweep line moving down the screen
	sweep := c.frame % ScreenHeight
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if y == sweep {
				c.top.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				c.top.SetRGBA(x, y, testCardBars[x*len(testCardBars)/ScreenWidth])
			}
		}
	}

	// bottom screen. checkerboard with a marker moving along the diagonal
	phase := c.frame / 8
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if ((x+phase)/16+y/16)%2 == 0 {
				c.bottom.SetRGBA(x, y, color.RGBA{R: 64, G: 64, B: 96, A: 255})
			} else {
				c.bottom.SetRGBA(x, y, color.RGBA{R: 16, G: 16, B: 32, A: 255})
			}
		}
	}

	mx := c.frame % (ScreenWidth - 8)
	my := c.frame % (ScreenHeight - 8)
	for y := my; y < my+8; y++ {
		for x := mx; x < mx+8; x++ {
			c.bottom.SetRGBA(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}
}
