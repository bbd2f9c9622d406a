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

package prefs_test

import (
	"testing"

	"github.com/KojoZero/melonds-ds/curated"
	"github.com/KojoZero/melonds-ds/prefs"
	"github.com/KojoZero/melonds-ds/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool

	// zero value
	test.Equate(t, p.Get().(bool), false)
	test.Equate(t, p.String(), "false")

	test.ExpectedSuccess(t, p.Set(true))
	test.Equate(t, p.Get().(bool), true)

	// string conversion, case insensitive
	test.ExpectedSuccess(t, p.Set("TRUE"))
	test.Equate(t, p.Get().(bool), true)
	test.ExpectedSuccess(t, p.Set("not a boolean"))
	test.Equate(t, p.Get().(bool), false)

	// unsupported type
	test.ExpectedFailure(t, p.Set(1.5))

	test.ExpectedSuccess(t, p.Set(true))
	test.ExpectedSuccess(t, p.Reset())
	test.Equate(t, p.Get().(bool), false)
}

func TestString(t *testing.T) {
	var p prefs.String

	test.Equate(t, p.String(), "")

	test.ExpectedSuccess(t, p.Set("hybridtop"))
	test.Equate(t, p.String(), "hybridtop")

	test.ExpectedSuccess(t, p.Reset())
	test.Equate(t, p.String(), "")
}

func TestInt(t *testing.T) {
	var p prefs.Int

	test.Equate(t, p.Get().(int), 0)

	test.ExpectedSuccess(t, p.Set(3))
	test.Equate(t, p.Get().(int), 3)

	// string conversion
	test.ExpectedSuccess(t, p.Set("4"))
	test.Equate(t, p.Get().(int), 4)
	test.ExpectedSuccess(t, p.Set(" 5 "))
	test.Equate(t, p.Get().(int), 5)

	// a string that does not parse as an int is an error and does not change
	// the stored value
	test.ExpectedFailure(t, p.Set("one hundred"))
	test.Equate(t, p.Get().(int), 5)
}

func TestHooks(t *testing.T) {
	var p prefs.Int

	var preValue prefs.Value
	var postValue prefs.Value

	p.SetHookPre(func(v prefs.Value) error {
		preValue = v
		return nil
	})
	p.SetHookPost(func(v prefs.Value) error {
		postValue = v
		return nil
	})

	test.ExpectedSuccess(t, p.Set(2))
	test.Equate(t, preValue.(int), 2)
	test.Equate(t, postValue.(int), 2)

	// a pre hook error prevents the value being stored
	const refused = "hook: value refused"
	p.SetHookPre(func(v prefs.Value) error {
		return curated.Errorf(refused)
	})

	err := p.Set(3)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, refused) {
		t.Errorf("unexpected error: %v", err)
	}
	test.Equate(t, p.Get().(int), 2)
}
