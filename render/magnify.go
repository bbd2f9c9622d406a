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

	"github.com/KojoZero/melonds-ds/hardware/nds"
	"github.com/KojoZero/melonds-ds/screenlayout"

	"golang.org/x/image/draw"
)

// Magnifier scales a single screen up to the magnified size used by the
// hybrid and large-screen layouts. The bilinear scaler precomputes its
// contribution weights for a fixed source and destination size, so the
// Magnifier is reconfigured only when the filter or the destination size
// changes.
type Magnifier struct {
	filter screenlayout.Filter
	size   image.Point
	scaler draw.Scaler
}

// NewMagnifier is the preferred method of initialisation for the Magnifier
// type.
func NewMagnifier(filter screenlayout.Filter, size image.Point) *Magnifier {
	mag := &Magnifier{}
	mag.Reconfigure(filter, size)
	return mag
}

// Reconfigure the magnifier for a filter and destination size. A no-op if
// neither has changed since the last call.
func (mag *Magnifier) Reconfigure(filter screenlayout.Filter, size image.Point) {
	if mag.scaler != nil && mag.filter == filter && mag.size == size {
		return
	}

	mag.filter = filter
	mag.size = size

	switch filter {
	case screenlayout.FilterLinear:
		mag.scaler = draw.BiLinear.NewScaler(size.X, size.Y, nds.ScreenWidth, nds.ScreenHeight)
	default:
		mag.scaler = draw.NearestNeighbor
	}
}

// Scale src into dst, filling dst completely. The precomputed bilinear
// scaler falls back to a general path if dst is not the size the magnifier
// was configured for, so a stale configuration degrades performance but
// never correctness.
func (mag *Magnifier) Scale(dst *image.RGBA, src *image.RGBA) {
	mag.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}
