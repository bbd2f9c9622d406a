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

// Package config gathers the display preferences into a single collaborator
// and keeps a screenlayout.Geometry in step with them. Preference changes go
// through the prefs hooks so the geometry is always rebuilt by the time a
// Set function returns. Per-frame code only ever reads.
package config

import (
	"github.com/KojoZero/melonds-ds/curated"
	"github.com/KojoZero/melonds-ds/prefs"
	"github.com/KojoZero/melonds-ds/screenlayout"
	"github.com/KojoZero/melonds-ds/userinput"
)

// InvalidPref is the sentinel for preference values that fail validation.
const InvalidPref = "config: %v"

// preference keys recognised in a command line prefs string.
const (
	KeyLayout     = "display/layout"
	KeySideScreen = "display/sidescreen"
	KeyFilter     = "display/filter"
	KeyRatio      = "display/ratio"
	KeyCursorSize = "input/cursorsize"
	KeyCursorMode = "input/cursormode"
)

// default preference values.
const (
	defLayout     = "topbottom"
	defSideScreen = "both"
	defFilter     = "nearest"
	defRatio      = 2
	defCursorSize = 2
	defCursorMode = "touching"
)

// the magnification ratio is kept inside a sensible range. larger ratios
// produce very large canvases for no visual benefit.
const maxRatio = 4

// Config is the set of live display preferences and the Geometry derived
// from them.
type Config struct {
	layout     prefs.String
	sideScreen prefs.String
	filter     prefs.String
	ratio      prefs.Int
	cursorSize prefs.Int
	cursorMode prefs.String

	// rebuilt by the post hooks on every preference change
	geom screenlayout.Geometry
	mode userinput.CursorMode
}

// NewConfig is the preferred method of initialisation for the Config type.
// Default values are applied first and then any values taken from the
// command line prefs stack.
func NewConfig() (*Config, error) {
	cfg := &Config{}

	cfg.layout.SetHookPre(func(v prefs.Value) error {
		_, err := screenlayout.ParseLayout(v.(string))
		return err
	})
	cfg.sideScreen.SetHookPre(func(v prefs.Value) error {
		_, err := screenlayout.ParseSideScreenMode(v.(string))
		return err
	})
	cfg.filter.SetHookPre(func(v prefs.Value) error {
		_, err := screenlayout.ParseFilter(v.(string))
		return err
	})
	cfg.cursorMode.SetHookPre(func(v prefs.Value) error {
		_, err := userinput.ParseCursorMode(v.(string))
		return err
	})

	rebuild := func(_ prefs.Value) error {
		return cfg.rebuild()
	}
	cfg.layout.SetHookPost(rebuild)
	cfg.sideScreen.SetHookPost(rebuild)
	cfg.filter.SetHookPost(rebuild)
	cfg.ratio.SetHookPost(rebuild)
	cfg.cursorMode.SetHookPost(rebuild)

	defaults := []struct {
		pref  interface{ Set(prefs.Value) error }
		value prefs.Value
	}{
		{&cfg.layout, defLayout},
		{&cfg.sideScreen, defSideScreen},
		{&cfg.filter, defFilter},
		{&cfg.ratio, defRatio},
		{&cfg.cursorSize, defCursorSize},
		{&cfg.cursorMode, defCursorMode},
	}
	for _, d := range defaults {
		if err := d.pref.Set(d.value); err != nil {
			return nil, curated.Errorf(InvalidPref, err)
		}
	}

	// values from the command line prefs stack override the defaults
	commandLine := []struct {
		key  string
		pref interface{ Set(prefs.Value) error }
	}{
		{KeyLayout, &cfg.layout},
		{KeySideScreen, &cfg.sideScreen},
		{KeyFilter, &cfg.filter},
		{KeyRatio, &cfg.ratio},
		{KeyCursorSize, &cfg.cursorSize},
		{KeyCursorMode, &cfg.cursorMode},
	}
	for _, c := range commandLine {
		if ok, v := prefs.GetCommandLinePref(c.key); ok {
			if err := c.pref.Set(v); err != nil {
				return nil, curated.Errorf(InvalidPref, err)
			}
		}
	}

	return cfg, nil
}

// rebuild the derived values from the current preferences. the string
// preferences have been validated by their pre hooks so the parse results
// are used directly.
func (cfg *Config) rebuild() error {
	layout, _ := screenlayout.ParseLayout(cfg.layout.String())
	mode, _ := screenlayout.ParseSideScreenMode(cfg.sideScreen.String())
	filter, _ := screenlayout.ParseFilter(cfg.filter.String())
	cfg.geom = screenlayout.NewGeometry(layout, cfg.ratio.Get().(int), filter, mode)

	cfg.mode, _ = userinput.ParseCursorMode(cfg.cursorMode.String())

	return nil
}

// Geometry returns the geometry for the current preferences.
func (cfg *Config) Geometry() screenlayout.Geometry {
	return cfg.geom
}

// CursorSize returns the cursor half-extent used when placing the reticle.
func (cfg *Config) CursorSize() int {
	return cfg.cursorSize.Get().(int)
}

// CursorMode returns the cursor visibility policy.
func (cfg *Config) CursorMode() userinput.CursorMode {
	return cfg.mode
}

// SetLayout changes the current layout.
func (cfg *Config) SetLayout(l screenlayout.Layout) error {
	return cfg.layout.Set(l.String())
}

// CycleLayout moves to the next layout in the list, wrapping at the end.
func (cfg *Config) CycleLayout() error {
	for i, l := range screenlayout.LayoutList {
		if l == cfg.geom.Layout {
			return cfg.SetLayout(screenlayout.LayoutList[(i+1)%len(screenlayout.LayoutList)])
		}
	}
	return cfg.SetLayout(screenlayout.LayoutList[0])
}

// ToggleFilter switches between the nearest and linear filters.
func (cfg *Config) ToggleFilter() error {
	if cfg.geom.Filter == screenlayout.FilterNearest {
		return cfg.filter.Set(screenlayout.FilterLinear.String())
	}
	return cfg.filter.Set(screenlayout.FilterNearest.String())
}

// ToggleSideScreenMode switches between showing both insets and only the
// unmagnified screen.
func (cfg *Config) ToggleSideScreenMode() error {
	if cfg.geom.SideMode == screenlayout.ShowBoth {
		return cfg.sideScreen.Set(screenlayout.FocusOnly.String())
	}
	return cfg.sideScreen.Set(screenlayout.ShowBoth.String())
}

// CycleCursorMode moves to the next cursor visibility policy.
func (cfg *Config) CycleCursorMode() error {
	modes := []userinput.CursorMode{
		userinput.CursorAlways,
		userinput.CursorNever,
		userinput.CursorTouching,
		userinput.CursorTimeout,
	}
	for i, m := range modes {
		if m == cfg.mode {
			return cfg.cursorMode.Set(modes[(i+1)%len(modes)].String())
		}
	}
	return cfg.cursorMode.Set(modes[0].String())
}

// AdjustRatio changes the magnification ratio by delta, staying inside the
// valid range.
func (cfg *Config) AdjustRatio(delta int) error {
	r := cfg.geom.Ratio + delta
	if r < 1 {
		r = 1
	}
	if r > maxRatio {
		r = maxRatio
	}
	return cfg.ratio.Set(r)
}
