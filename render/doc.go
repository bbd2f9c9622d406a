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

// Package render composites the two emulated screens into a single frame
// buffer according to the current display preferences.
//
// The Software type is the renderer. Once per frame the emulation hands its
// two screens to the Render() function which sizes the frame buffer for the
// current layout, places (and for some layouts magnifies) the screens,
// overlays the touch cursor and forwards the finished frame to every attached
// VideoSink.
//
// The frame buffer is simply a block of RGBA pixels. There is no notion of
// dirty regions or damage tracking. Every frame is composed from scratch,
// which is cheap at these resolutions and means a layout change is effective
// on the very next frame with no transition handling.
//
// The RenderError() function is a reduced render path for when the emulation
// cannot produce screens. It composes whatever FrameSource it is given, with
// no cursor and no filter reconfiguration, so it remains usable however
// little of the renderer has been touched before the failure.
package render
