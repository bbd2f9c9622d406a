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

// Package screenlayout answers every geometric question about how the two
// emulated screens are arranged on the output canvas.
//
// The Layout type enumerates the closed set of arrangements. Layouts fall
// into three families. The simple family places the screens at their
// original size, alone, stacked or side by side. The hybrid family magnifies
// one screen and reserves a column for original-size insets of one or both
// screens. The large-screen family magnifies one screen and always shows the
// other in the side column at its original size.
//
// Geometry is a pure value. Given a layout, a magnification ratio, a filter
// and a side-screen mode it derives the canvas size, the placement of each
// screen and the affine transform from bottom-screen coordinates to canvas
// coordinates. The configuration owns the current Geometry and rebuilds it
// when a relevant preference changes. Everything that runs per frame only
// reads.
package screenlayout
