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

// Package userinput holds the state of the pointing device between frames.
// The GUI feeds positions and touch transitions in; the renderer reads the
// position back out when it draws the cursor reticle.
package userinput

import (
	"image"
	"time"

	"github.com/KojoZero/melonds-ds/curated"
)

// UnknownCursorMode is returned by ParseCursorMode for unrecognised names.
const UnknownCursorMode = "userinput: unknown cursor mode: %s"

// CursorMode controls when the cursor reticle is drawn.
type CursorMode int

const (
	// CursorAlways draws the reticle every frame.
	CursorAlways CursorMode = iota

	// CursorNever suppresses the reticle entirely.
	CursorNever

	// CursorTouching draws the reticle only while the pointer is touching.
	CursorTouching

	// CursorTimeout draws the reticle for a short period after the most
	// recent pointer activity.
	CursorTimeout
)

func (m CursorMode) String() string {
	switch m {
	case CursorAlways:
		return "always"
	case CursorNever:
		return "never"
	case CursorTouching:
		return "touching"
	case CursorTimeout:
		return "timeout"
	}
	return "unknown"
}

// ParseCursorMode converts a mode name, as returned by CursorMode.String(),
// back into a CursorMode value.
func ParseCursorMode(s string) (CursorMode, error) {
	switch s {
	case "always":
		return CursorAlways, nil
	case "never":
		return CursorNever, nil
	case "touching":
		return CursorTouching, nil
	case "timeout":
		return CursorTimeout, nil
	}
	return CursorAlways, curated.Errorf(UnknownCursorMode, s)
}

// how long the reticle stays visible after pointer activity in the
// CursorTimeout mode.
const cursorTimeout = 3 * time.Second

// Pointer records the position and touch state of the pointing device. The
// position is in bottom-screen coordinates and is stored unclamped; values
// off the screen are preserved and only clamped at the point of use.
type Pointer struct {
	pos        image.Point
	touching   bool
	lastActive time.Time
}

// NewPointer is the preferred method of initialisation for the Pointer type.
func NewPointer() *Pointer {
	return &Pointer{}
}

// Touch puts the pointer into the touching state at the given position.
// Called for both the initial press and any subsequent drag.
func (p *Pointer) Touch(pos image.Point) {
	p.pos = pos
	p.touching = true
	p.lastActive = time.Now()
}

// Update the pointer position without changing the touch state. A changed
// position counts as pointer activity.
func (p *Pointer) Update(pos image.Point) {
	if pos != p.pos {
		p.lastActive = time.Now()
	}
	p.pos = pos
}

// Release ends the touching state.
func (p *Pointer) Release() {
	p.touching = false
	p.lastActive = time.Now()
}

// Position returns the unclamped pointer position in bottom-screen
// coordinates.
func (p *Pointer) Position() image.Point {
	return p.pos
}

// Touching returns true while the pointer is pressed.
func (p *Pointer) Touching() bool {
	return p.touching
}

// CursorVisible says whether the cursor reticle should be drawn this frame
// under the given mode.
func (p *Pointer) CursorVisible(mode CursorMode) bool {
	switch mode {
	case CursorNever:
		return false
	case CursorTouching:
		return p.touching
	case CursorTimeout:
		return time.Since(p.lastActive) < cursorTimeout
	}
	return true
}
