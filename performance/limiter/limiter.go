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

// Package limiter paces the render loop to a fixed number of frames per
// second. Create a limiter and call Wait() at the end of every frame:
//
//	lim := limiter.NewFPSLimiter(60)
//	for {
//		renderFrame()
//		lim.Wait()
//	}
//
// The pacing is rough and assumes the machine can comfortably exceed the
// requested rate. A slow frame eats into the sleep of the following frames
// rather than being skipped.
package limiter

import (
	"time"
)

// FpsLimiter triggers at a fixed number of frames per second.
type FpsLimiter struct {
	secondsPerFrame time.Duration
	tick            chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		secondsPerFrame: time.Duration(float64(time.Second) / float64(framesPerSecond)),
		tick:            make(chan bool),
	}

	// the ticker adjusts its sleep by the drift observed on the previous
	// frame, so the rate is maintained on average
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// Wait blocks until the next frame is due.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the next frame is already due, without blocking.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
