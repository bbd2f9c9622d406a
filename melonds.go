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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/KojoZero/melonds-ds/config"
	"github.com/KojoZero/melonds-ds/gui/sdlplay"
	"github.com/KojoZero/melonds-ds/hardware/nds"
	"github.com/KojoZero/melonds-ds/logger"
	"github.com/KojoZero/melonds-ds/message"
	"github.com/KojoZero/melonds-ds/performance/limiter"
	"github.com/KojoZero/melonds-ds/prefs"
	"github.com/KojoZero/melonds-ds/render"
	"github.com/KojoZero/melonds-ds/screendigest"
	"github.com/KojoZero/melonds-ds/userinput"
	"github.com/KojoZero/melonds-ds/version"
)

// the NDS refreshes at a whisker under 60 frames per second. near enough for
// pacing purposes.
const framesPerSecond = 60

// #mainthread
func main() {
	prefsString := flag.String("prefs", "", "preference values: key::value; key::value; ...")
	scale := flag.Int("scale", 2, "window size multiplier")
	frames := flag.Int("frames", 0, "number of frames to render before quitting. zero runs until the window is closed")
	digest := flag.Bool("digest", false, "print a digest of the rendered frames on exit")
	echoLog := flag.Bool("log", false, "echo debugging log to stdout")
	showVersion := flag.Bool("version", false, "print version information and quit")
	flag.Parse()

	if *showVersion {
		ver, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
		os.Exit(0)
	}

	if *echoLog {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	os.Exit(run(*prefsString, *scale, *frames, *digest))
}

// run builds the display pipeline and hands over to the play loop. The
// return value is the value to use with os.Exit().
//
// #mainthread
func run(prefsString string, scale int, frames int, digest bool) int {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if prefsString != "" {
		if left := prefs.PopCommandLineStack(); left != "" {
			logger.Logf(logger.Allow, "melonds", "unrecognised preferences: %s", left)
		}
	}

	inp := userinput.NewPointer()

	scr, err := sdlplay.NewSdlPlay(cfg, inp, scale)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 10
	}
	defer scr.Destroy()

	rnd := render.NewSoftware(cfg)
	rnd.AddVideoSink(scr)

	var dig *screendigest.SHA1
	if digest {
		dig = screendigest.NewSHA1()
		rnd.AddVideoSink(dig)
	}

	err = play(rnd, scr, cfg, inp, frames)
	if err != nil {
		logger.Logf(logger.Allow, "melonds", "%v", err)

		// keep showing what went wrong for as long as the window stays open
		errScr := message.NewErrorScreen(err)
		lim := limiter.NewFPSLimiter(framesPerSecond)
		for !scr.ShouldQuit() {
			if err := rnd.RenderError(errScr, cfg); err != nil {
				fmt.Printf("* error: %v\n", err)
				return 20
			}
			scr.Service()
			lim.Wait()
		}
		return 20
	}

	if dig != nil {
		fmt.Println(dig.Hash())
	}

	return 0
}

// play runs the render loop until the frame count expires or the user quits.
// There is no emulation core attached yet, so the screens come from the test
// card generator.
//
// #mainthread
func play(rnd *render.Software, scr *sdlplay.SdlPlay, cfg *config.Config, inp *userinput.Pointer, frames int) error {
	// ctrl-c ends the loop as if the window had been closed
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	src := nds.NewTestCard()
	lim := limiter.NewFPSLimiter(framesPerSecond)

	for n := 0; frames == 0 || n < frames; n++ {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
		}
		if scr.ShouldQuit() {
			return nil
		}

		src.Advance()

		err := rnd.Render(src, inp, cfg)
		if err != nil {
			return err
		}

		scr.Service()
		lim.Wait()
	}

	return nil
}
