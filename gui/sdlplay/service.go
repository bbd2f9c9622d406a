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

package sdlplay

import (
	"image"

	"github.com/KojoZero/melonds-ds/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Service the SDL event queue. To be called once per frame.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve, so that a queue
	// built up during a slow frame is cleared in one service
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				scr.serviceKeyboard(ev)
			}

		case *sdl.MouseButtonEvent:
			if ev.Button == sdl.BUTTON_LEFT {
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					scr.inp.Touch(scr.pointerPos(int(ev.X), int(ev.Y)))
				case sdl.MOUSEBUTTONUP:
					scr.inp.Release()
				}
			}
		}
	}

	// MOUSEMOTION events are ignored (see NewSdlPlay()) so a held touch is
	// tracked by polling, one position per frame
	if scr.inp.Touching() {
		x, y, state := sdl.GetMouseState()
		if state&sdl.ButtonLMask() != 0 {
			scr.inp.Update(scr.pointerPos(int(x), int(y)))
		}
	}
}

// pointerPos converts a window coordinate into a touch position on the
// bottom screen. The position is not clamped here; that happens when the
// cursor is drawn, and a press on the top screen should not register as a
// touch at the bottom screen's edge.
func (scr *SdlPlay) pointerPos(x int, y int) image.Point {
	geom := scr.cfg.Geometry()
	return geom.PointerPosition(image.Point{X: x / scr.scale, Y: y / scr.scale})
}

func (scr *SdlPlay) serviceKeyboard(ev *sdl.KeyboardEvent) {
	var err error

	switch ev.Keysym.Sym {
	case sdl.K_ESCAPE, sdl.K_q:
		scr.quit = true
		return

	case sdl.K_TAB:
		err = scr.cfg.CycleLayout()

	case sdl.K_f:
		err = scr.cfg.ToggleFilter()

	case sdl.K_m:
		err = scr.cfg.ToggleSideScreenMode()

	case sdl.K_c:
		err = scr.cfg.CycleCursorMode()
		if err == nil {
			logger.Logf(logger.Allow, "sdlplay", "cursor: %v", scr.cfg.CursorMode())
		} else {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
		return

	case sdl.K_EQUALS:
		err = scr.cfg.AdjustRatio(1)

	case sdl.K_MINUS:
		err = scr.cfg.AdjustRatio(-1)

	default:
		return
	}

	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
		return
	}

	geom := scr.cfg.Geometry()
	logger.Logf(logger.Allow, "sdlplay", "layout: %v (ratio %d, %v, %v)", geom.Layout, geom.Ratio, geom.Filter, geom.SideMode)
}
