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

package message_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/KojoZero/melonds-ds/hardware/nds"
	"github.com/KojoZero/melonds-ds/message"
	"github.com/KojoZero/melonds-ds/test"
)

func TestErrorScreenDimensions(t *testing.T) {
	scr := message.NewErrorScreen(errors.New("cartridge image is corrupt"))

	test.Equate(t, scr.TopScreen().Rect.Dx(), nds.ScreenWidth)
	test.Equate(t, scr.TopScreen().Rect.Dy(), nds.ScreenHeight)
	test.Equate(t, scr.BottomScreen().Rect.Dx(), nds.ScreenWidth)
	test.Equate(t, scr.BottomScreen().Rect.Dy(), nds.ScreenHeight)

	// every pixel is opaque so the screens can be composed like any frame
	for _, pix := range [][]byte{scr.TopScreen().Pix, scr.BottomScreen().Pix} {
		for i := 3; i < len(pix); i += 4 {
			if pix[i] != 255 {
				t.Fatalf("alpha not opaque at byte %d", i)
			}
		}
	}
}

func TestErrorScreenText(t *testing.T) {
	scr := message.NewErrorScreen(errors.New("cartridge image is corrupt"))

	// text has been drawn on both screens
	white := 0
	for i := 0; i < len(scr.TopScreen().Pix); i += 4 {
		if scr.TopScreen().Pix[i] == 255 && scr.TopScreen().Pix[i+1] == 255 && scr.TopScreen().Pix[i+2] == 255 {
			white++
		}
	}
	if white == 0 {
		t.Fatalf("no message text on the top screen")
	}

	white = 0
	for i := 0; i < len(scr.BottomScreen().Pix); i += 4 {
		if scr.BottomScreen().Pix[i] == 255 && scr.BottomScreen().Pix[i+1] == 255 && scr.BottomScreen().Pix[i+2] == 255 {
			white++
		}
	}
	if white == 0 {
		t.Fatalf("no instruction text on the bottom screen")
	}
}

func TestErrorScreenDeterminism(t *testing.T) {
	a := message.NewErrorScreen(errors.New("no such file"))
	b := message.NewErrorScreen(errors.New("no such file"))

	for i := range a.TopScreen().Pix {
		if a.TopScreen().Pix[i] != b.TopScreen().Pix[i] {
			t.Fatalf("identical errors produce different screens (byte %d)", i)
		}
	}

	// a different error produces a different top screen
	c := message.NewErrorScreen(errors.New("out of memory"))
	same := true
	for i := range a.TopScreen().Pix {
		if a.TopScreen().Pix[i] != c.TopScreen().Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different errors produce identical screens")
	}
}

func TestErrorScreenLongMessage(t *testing.T) {
	// a very long message wraps and is truncated at the bottom of the
	// screen rather than overflowing
	long := strings.Repeat("a lengthy diagnostic phrase ", 50)
	scr := message.NewErrorScreen(errors.New(long))

	test.Equate(t, scr.TopScreen().Rect.Dy(), nds.ScreenHeight)

	// a nil error still produces a usable screen
	scr = message.NewErrorScreen(nil)
	test.Equate(t, scr.TopScreen().Rect.Dx(), nds.ScreenWidth)
}
