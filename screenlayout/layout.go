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

package screenlayout

import "github.com/KojoZero/melonds-ds/curated"

// sentinel errors returned by the parsing functions.
const (
	UnknownLayout         = "screenlayout: unknown layout: %s"
	UnknownSideScreenMode = "screenlayout: unknown side screen mode: %s"
	UnknownFilter         = "screenlayout: unknown filter: %s"
)

// Layout is the closed set of screen arrangements.
type Layout int

// The flipped variants of the hybrid and large-screen families mirror the
// arrangement horizontally, putting the side column on the left.
const (
	TopOnly Layout = iota
	BottomOnly
	TopBottom
	BottomTop
	LeftRight
	RightLeft
	HybridTop
	HybridBottom
	FlippedHybridTop
	FlippedHybridBottom
	LargescreenTop
	LargescreenBottom
	FlippedLargescreenTop
	FlippedLargescreenBottom
)

// LayoutList is the list of all layouts in cycling order.
var LayoutList = []Layout{
	TopOnly,
	BottomOnly,
	TopBottom,
	BottomTop,
	LeftRight,
	RightLeft,
	HybridTop,
	HybridBottom,
	FlippedHybridTop,
	FlippedHybridBottom,
	LargescreenTop,
	LargescreenBottom,
	FlippedLargescreenTop,
	FlippedLargescreenBottom,
}

func (l Layout) String() string {
	switch l {
	case TopOnly:
		return "toponly"
	case BottomOnly:
		return "bottomonly"
	case TopBottom:
		return "topbottom"
	case BottomTop:
		return "bottomtop"
	case LeftRight:
		return "leftright"
	case RightLeft:
		return "rightleft"
	case HybridTop:
		return "hybridtop"
	case HybridBottom:
		return "hybridbottom"
	case FlippedHybridTop:
		return "flippedhybridtop"
	case FlippedHybridBottom:
		return "flippedhybridbottom"
	case LargescreenTop:
		return "largescreentop"
	case LargescreenBottom:
		return "largescreenbottom"
	case FlippedLargescreenTop:
		return "flippedlargescreentop"
	case FlippedLargescreenBottom:
		return "flippedlargescreenbottom"
	}
	return "unknown"
}

// ParseLayout converts a layout name, as returned by Layout.String(), back
// into a Layout value.
func ParseLayout(s string) (Layout, error) {
	for _, l := range LayoutList {
		if l.String() == s {
			return l, nil
		}
	}
	return TopOnly, curated.Errorf(UnknownLayout, s)
}

// IsHybridLayout is true if the layout magnifies one screen and reserves
// inset slots for both screens in the side column.
func IsHybridLayout(l Layout) bool {
	switch l {
	case HybridTop, HybridBottom, FlippedHybridTop, FlippedHybridBottom:
		return true
	}
	return false
}

// IsLargeScreenLayout is true if the layout magnifies one screen and always
// shows the companion screen in the side column.
func IsLargeScreenLayout(l Layout) bool {
	switch l {
	case LargescreenTop, LargescreenBottom, FlippedLargescreenTop, FlippedLargescreenBottom:
		return true
	}
	return false
}

// SupportsDirectCopy is true when a screen placed by the layout covers its
// destination rows completely, with no other content sharing those rows. In
// that case every pixel of the screen is contiguous in the canvas and a
// single bulk copy can be used in place of a row by row copy.
func SupportsDirectCopy(l Layout) bool {
	switch l {
	case TopOnly, BottomOnly, TopBottom, BottomTop:
		return true
	}
	return false
}

// SideScreenMode selects what the side column of a hybrid layout shows.
type SideScreenMode int

const (
	// ShowBoth puts original size insets of both screens in the side column.
	ShowBoth SideScreenMode = iota

	// FocusOnly shows only the screen that is not being magnified.
	FocusOnly
)

func (m SideScreenMode) String() string {
	switch m {
	case ShowBoth:
		return "both"
	case FocusOnly:
		return "focusonly"
	}
	return "unknown"
}

// ParseSideScreenMode converts a mode name, as returned by
// SideScreenMode.String(), back into a SideScreenMode value.
func ParseSideScreenMode(s string) (SideScreenMode, error) {
	switch s {
	case "both":
		return ShowBoth, nil
	case "focusonly":
		return FocusOnly, nil
	}
	return ShowBoth, curated.Errorf(UnknownSideScreenMode, s)
}

// Filter selects the resampling method used when a screen is magnified.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	}
	return "unknown"
}

// ParseFilter converts a filter name, as returned by Filter.String(), back
// into a Filter value.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "nearest":
		return FilterNearest, nil
	case "linear":
		return FilterLinear, nil
	}
	return FilterNearest, curated.Errorf(UnknownFilter, s)
}
