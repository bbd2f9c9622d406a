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

// Package nds defines the fixed properties of the emulated console's two
// display panels and the protocol through which an emulation core hands its
// finished screens to the rest of the application.
//
// The package does not emulate anything itself. The TestCard type is a stand
// in for a real emulation core, animating a pair of recognisable patterns so
// the rest of the application has something to display.
package nds
