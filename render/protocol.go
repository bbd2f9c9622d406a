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

// VideoSink implementations receive the finished frame at the end of every
// render. Implementations must not hold on to the pix slice after SetFrame()
// returns; the renderer reuses it for the next frame.
//
// The stride argument is measured in pixels, not bytes. For the frame buffers
// produced by this package the stride is always equal to the width but sinks
// should honour it regardless.
type VideoSink interface {
	SetFrame(pix []byte, width int, height int, stride int) error
}
