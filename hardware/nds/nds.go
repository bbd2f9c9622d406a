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

import "image"

// Dimensions of a single emulated screen. Both screens are the same size and
// the size never changes.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
)

// ScreenDepth is the number of bytes per pixel in a screen buffer.
const ScreenDepth = 4

// ScreenSize returns the dimensions of a single screen as an image.Point.
func ScreenSize() image.Point {
	return image.Point{X: ScreenWidth, Y: ScreenHeight}
}

// FrameSource is the interface through which an emulation core supplies its
// two finished screens, once per frame.
//
// The returned images are exactly ScreenWidth by ScreenHeight with the
// natural stride. Consumers must treat them as read-only. The pixels are in
// RGBA byte order with the alpha channel always opaque.
type FrameSource interface {
	TopScreen() *image.RGBA
	BottomScreen() *image.RGBA
}

// NewScreenBuffer allocates an image sized for a single screen.
func NewScreenBuffer() *image.RGBA {
	return image.NewRGBA(image.Rectangle{Max: ScreenSize()})
}
