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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and can be used wherever a
// plain error is expected.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package except that the format string, called the
// pattern, also identifies the error. The Is() function compares an error
// against a pattern:
//
//	e := curated.Errorf("magnify: unsupported ratio: %d", r)
//
//	if curated.Is(e, "magnify: unsupported ratio: %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is the looser relative of Is(). It answers whether the
// pattern occurs anywhere in the chain of wrapped errors, not just at the
// head of the chain.
//
// The IsAny() function says whether the error was created by this package at
// all. An uncurated error is one that has come from outside of the project,
// the SDL library for instance, and which the caller has not yet decided how
// to present.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. A chain is the error message split on the
// sub-string ': '. Normalisation means a function can wrap every error it
// passes on without worrying about stuttering messages.
//
// Sentinel patterns should be stored as const strings in the package that
// creates them, suitably named and commented.
package curated
