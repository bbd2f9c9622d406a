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

	"github.com/KojoZero/melonds-ds/config"
	"github.com/KojoZero/melonds-ds/curated"
	"github.com/KojoZero/melonds-ds/hardware/nds"
	"github.com/KojoZero/melonds-ds/screenlayout"
	"github.com/KojoZero/melonds-ds/userinput"
)

// Software is the software renderer. It owns the frame buffer, a scratch
// buffer for the magnified screen, and the list of sinks the finished frame
// is forwarded to.
//
// Software is not safe for concurrent use. Render() and RenderError() are
// expected to be called from a single goroutine, once per frame.
type Software struct {
	canvas  *Canvas
	scratch *Canvas
	mag     *Magnifier
	sinks   []VideoSink
}

// NewSoftware is the preferred method of initialisation for the Software
// type.
func NewSoftware(cfg *config.Config) *Software {
	geom := cfg.Geometry()
	return &Software{
		canvas:  NewCanvas(),
		scratch: NewCanvas(),
		mag:     NewMagnifier(geom.Filter, geom.MagnifiedScreenSize()),
	}
}

// AddVideoSink attaches a sink to the renderer. Sinks receive the finished
// frame in the order they were added.
func (rnd *Software) AddVideoSink(sink VideoSink) {
	rnd.sinks = append(rnd.sinks, sink)
}

// Render composites the two screens of src into the frame buffer according
// to the current configuration, overlays the cursor if it is visible, and
// forwards the finished frame to every sink.
func (rnd *Software) Render(src nds.FrameSource, inp *userinput.Pointer, cfg *config.Config) error {
	geom := cfg.Geometry()

	rnd.canvas.Resize(geom.BufferSize())

	if screenlayout.IsHybridLayout(geom.Layout) || screenlayout.IsLargeScreenLayout(geom.Layout) {
		rnd.mag.Reconfigure(geom.Filter, geom.MagnifiedScreenSize())
	}

	rnd.combineScreens(src, geom)

	if inp != nil && inp.CursorVisible(cfg.CursorMode()) {
		drawCursor(rnd.canvas, geom, inp.Position(), cfg.CursorSize())
	}

	return rnd.publish()
}

// RenderError composites src with the reduced path used when the emulation
// has failed: no cursor and no filter reconfiguration. It works whatever
// state the renderer was left in.
func (rnd *Software) RenderError(src nds.FrameSource, cfg *config.Config) error {
	geom := cfg.Geometry()
	rnd.canvas.Resize(geom.BufferSize())
	rnd.combineScreens(src, geom)
	return rnd.publish()
}

// combineScreens clears the canvas and places both screens according to the
// layout family.
func (rnd *Software) combineScreens(src nds.FrameSource, geom screenlayout.Geometry) {
	rnd.canvas.Clear()

	switch {
	case screenlayout.IsHybridLayout(geom.Layout):
		rnd.combineHybrid(src, geom)
	case screenlayout.IsLargeScreenLayout(geom.Layout):
		rnd.combineLargeScreen(src, geom)
	default:
		if geom.Layout != screenlayout.BottomOnly {
			rnd.copyScreen(src.TopScreen(), geom.TopScreenTranslation(), geom)
		}
		if geom.Layout != screenlayout.TopOnly {
			rnd.copyScreen(src.BottomScreen(), geom.BottomScreenTranslation(), geom)
		}
	}
}

// combineHybrid magnifies one screen and fills the side column with insets.
// The inset of the screen being magnified is only drawn when the side screen
// mode asks for it; the other screen's inset is always drawn.
func (rnd *Software) combineHybrid(src nds.FrameSource, geom screenlayout.Geometry) {
	topMagnified := geom.Layout == screenlayout.HybridTop || geom.Layout == screenlayout.FlippedHybridTop

	primary := src.BottomScreen()
	if topMagnified {
		primary = src.TopScreen()
	}

	rnd.magnify(primary, geom)
	rnd.canvas.CopyRows(rnd.scratch.Image(), geom.HybridScreenTranslation())

	if geom.SideMode == screenlayout.ShowBoth || !topMagnified {
		rnd.canvas.CopyRows(src.TopScreen(), geom.TopScreenTranslation())
	}
	if geom.SideMode == screenlayout.ShowBoth || topMagnified {
		rnd.canvas.CopyRows(src.BottomScreen(), geom.BottomScreenTranslation())
	}
}

// combineLargeScreen magnifies one screen and places the other at original
// size in the side column.
func (rnd *Software) combineLargeScreen(src nds.FrameSource, geom screenlayout.Geometry) {
	if geom.Layout == screenlayout.LargescreenTop || geom.Layout == screenlayout.FlippedLargescreenTop {
		rnd.magnify(src.TopScreen(), geom)
		rnd.canvas.CopyRows(rnd.scratch.Image(), geom.TopScreenTranslation())
		rnd.copyScreen(src.BottomScreen(), geom.BottomScreenTranslation(), geom)
	} else {
		rnd.magnify(src.BottomScreen(), geom)
		rnd.canvas.CopyRows(rnd.scratch.Image(), geom.BottomScreenTranslation())
		rnd.copyScreen(src.TopScreen(), geom.TopScreenTranslation(), geom)
	}
}

// magnify a screen into the scratch buffer. The scratch buffer is sized
// here, rather than at the head of Render(), so that the error path can
// compose a magnifying layout even if the renderer has never seen one
// before.
func (rnd *Software) magnify(screen *image.RGBA, geom screenlayout.Geometry) {
	rnd.scratch.Resize(geom.MagnifiedScreenSize())
	rnd.mag.Scale(rnd.scratch.Image(), screen)
}

// copyScreen places a screen using the bulk copy when the layout allows it.
func (rnd *Software) copyScreen(screen *image.RGBA, translation image.Point, geom screenlayout.Geometry) {
	if screenlayout.SupportsDirectCopy(geom.Layout) {
		rnd.canvas.CopyDirect(screen, translation)
	} else {
		rnd.canvas.CopyRows(screen, translation)
	}
}

// publish the finished frame to every sink.
func (rnd *Software) publish() error {
	size := rnd.canvas.Size()
	for _, sink := range rnd.sinks {
		err := sink.SetFrame(rnd.canvas.Pix(), size.X, size.Y, rnd.canvas.Stride())
		if err != nil {
			return curated.Errorf("render: %v", err)
		}
	}
	return nil
}
