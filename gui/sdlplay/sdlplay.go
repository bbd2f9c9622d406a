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

// Package sdlplay is the SDL window the composed frames are presented in. It
// is a video sink on the output side and a source of pointer and hotkey
// input on the other.
//
// SDL is not thread safe so unless otherwise stated all functions must be
// called from the #mainthread.
package sdlplay

import (
	"image"

	"github.com/KojoZero/melonds-ds/config"
	"github.com/KojoZero/melonds-ds/curated"
	"github.com/KojoZero/melonds-ds/logger"
	"github.com/KojoZero/melonds-ds/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

const windowTitle = "melonds-ds"

// SdlPlay presents composed frames in an SDL window and feeds window input
// back into the pointer and the configuration.
type SdlPlay struct {
	cfg *config.Config
	inp *userinput.Pointer

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the current texture. the texture is recreated whenever
	// a frame of a different size arrives
	texSize image.Point

	// the window is an integer multiple of the frame size
	scale int

	// the window is kept hidden until the first frame has been presented
	showOnNextFrame bool

	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(cfg *config.Config, inp *userinput.Pointer, scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		cfg:             cfg,
		inp:             inp,
		scale:           scale,
		showOnNextFrame: true,
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// nearest neighbour scaling from texture to window. the frame has
	// already been filtered as the user asked; the window stretch must not
	// soften it again
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	// window size is set when the first frame arrives
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason; we only want one value per
	// frame which we can get with a single call to GetMouseState()
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// resize the texture and window for a new frame size.
func (scr *SdlPlay) resize(size image.Point) error {
	var err error

	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}

	// texture is the same size as the frame. scaling to the window size is
	// applied when the texture is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(size.X), int32(size.Y))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.texSize = size

	scr.window.SetSize(int32(size.X*scr.scale), int32(size.Y*scr.scale))

	return nil
}

// SetFrame implements the render.VideoSink interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) SetFrame(pix []byte, width int, height int, stride int) error {
	size := image.Point{X: width, Y: height}
	if size != scr.texSize {
		err := scr.resize(size)
		if err != nil {
			return err
		}
	}

	err := scr.texture.Update(nil, pix, stride*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	if scr.showOnNextFrame {
		scr.window.Show()
		scr.showOnNextFrame = false
	}

	return nil
}

// ShouldQuit is true once the user has asked to close the window.
func (scr *SdlPlay) ShouldQuit() bool {
	return scr.quit
}

// Destroy releases the SDL resources.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		err := scr.texture.Destroy()
		if err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
	}
	if scr.renderer != nil {
		err := scr.renderer.Destroy()
		if err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
	}
	if scr.window != nil {
		err := scr.window.Destroy()
		if err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
	}
	sdl.Quit()
}
