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

// Package screendigest fingerprints the composed frames. The SHA1 type is a
// video sink that folds every frame it receives into a rolling hash, giving
// a single value that identifies an entire sequence of frames. Two runs that
// produce the same value rendered identical frames in an identical order.
//
// Note that the use of sha1 is fine for this application because this is not
// a cryptographic task.
package screendigest

import (
	"crypto/sha1"
	"fmt"

	"github.com/KojoZero/melonds-ds/curated"
)

// SHA1 is a video sink that hashes every frame it is given. The digest of
// each frame is chained into the next, so the final value depends on every
// frame and on their order.
//
// The zero value is ready for use.
type SHA1 struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewSHA1 is the preferred method of initialisation for the SHA1 type.
func NewSHA1() *SHA1 {
	return &SHA1{}
}

func (dig *SHA1) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Hash returns the current digest as a hex string. The same as String().
func (dig *SHA1) Hash() string {
	return dig.String()
}

// Frames returns the number of frames folded into the current digest.
func (dig *SHA1) Frames() int {
	return dig.frames
}

// ResetDigest resets the current digest value to zero, restarting the chain.
func (dig *SHA1) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// SetFrame implements the render.VideoSink interface.
func (dig *SHA1) SetFrame(pix []byte, _ int, _ int, _ int) error {
	l := len(dig.digest) + len(pix)
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain digests by copying the previous digest to the head of the
	// buffer before summing
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("screendigest: error chaining frame digest")
	}
	copy(dig.pixels[n:], pix)

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
