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

	"github.com/KojoZero/melonds-ds/prefs"
	"github.com/KojoZero/melonds-ds/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.Equate(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.Equate(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.Equate(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. the rebuilt string is
	// sorted by key
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.Equate(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.Equate(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.Equate(t, prefs.PopCommandLineStack(), "baz::qux")
}

func TestCommandLineStackGroups(t *testing.T) {
	// empty on start
	test.Equate(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")

	// a second group shadows the first
	prefs.PushCommandLineStack("baz::qux")

	ok, v := prefs.GetCommandLinePref("baz")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v.(string), "qux")

	// value is deleted once it has been returned
	ok, _ = prefs.GetCommandLinePref("baz")
	test.ExpectedFailure(t, ok)

	test.Equate(t, prefs.PopCommandLineStack(), "")

	// first group still exists
	test.Equate(t, prefs.PopCommandLineStack(), "foo::bar")
}
