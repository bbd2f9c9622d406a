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

// Package message draws text screens that are shown in place of the emulated
// screens. The screens are plain RGBA images of the emulated screen size, so
// anything that can compose a frame from an nds.FrameSource can show them
// without special handling.
package message

import (
	"image"
	"image/color"
	"strings"

	"github.com/KojoZero/melonds-ds/hardware/nds"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	errorBackground = color.RGBA{R: 16, G: 16, B: 48, A: 255}
	errorHeading    = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	errorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// layout of the text on the screens. the face is a fixed 7x13 bitmap font.
const (
	textMargin = 8
	lineHeight = 16
)

// ErrorScreen is a pair of screens describing an error. It implements
// nds.FrameSource and so can be handed to the renderer in place of the
// emulation.
type ErrorScreen struct {
	top    *image.RGBA
	bottom *image.RGBA
}

// NewErrorScreen is the preferred method of initialisation for the
// ErrorScreen type. The error text is word wrapped onto the top screen; the
// bottom screen carries fixed instructions.
func NewErrorScreen(err error) *ErrorScreen {
	scr := &ErrorScreen{
		top:    nds.NewScreenBuffer(),
		bottom: nds.NewScreenBuffer(),
	}

	fill(scr.top, errorBackground)
	fill(scr.bottom, errorBackground)

	y := textMargin + basicfont.Face7x13.Ascent
	drawText(scr.top, "AN ERROR HAS OCCURRED", textMargin, y, errorHeading)
	y += lineHeight * 2

	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	for _, line := range wrap(detail, nds.ScreenWidth-textMargin*2) {
		if y > nds.ScreenHeight-textMargin {
			break
		}
		drawText(scr.top, line, textMargin, y, errorText)
		y += lineHeight
	}

	y = textMargin + basicfont.Face7x13.Ascent
	drawText(scr.bottom, "The log may contain more detail.", textMargin, y, errorText)
	y += lineHeight
	drawText(scr.bottom, "Please restart the program.", textMargin, y, errorText)

	return scr
}

// TopScreen implements the nds.FrameSource interface.
func (scr *ErrorScreen) TopScreen() *image.RGBA {
	return scr.top
}

// BottomScreen implements the nds.FrameSource interface.
func (scr *ErrorScreen) BottomScreen() *image.RGBA {
	return scr.bottom
}

func fill(img *image.RGBA, col color.RGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

func drawText(img *image.RGBA, s string, x int, y int, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// wrap breaks s into lines no wider than width pixels. A single word wider
// than the limit is left to overflow; the drawer clips it at the screen
// edge.
func wrap(s string, width int) []string {
	var lines []string
	var line string

	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if font.MeasureString(basicfont.Face7x13, candidate) > fixed.I(width) && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}

	return lines
}
