// This file is part of eehw.
//
// eehw is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eehw is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eehw.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are errors that the caller is expected to test for, by
// pattern rather than by message.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is kept so that the
// Is() function can identify the error later:
//
//	e := curated.Errorf("prefs: no preferences file (%s)", path)
//
//	if curated.Is(e, "prefs: no preferences file (%s)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Errors passed as placeholder values are considered part of
// the chain.
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. This means that it is always safe to wrap an error with the same
// prefix as the wrapped error:
//
//	e := curated.Errorf("state: %v", curated.Errorf("state: bad magic"))
//	fmt.Println(e) // "state: bad magic"
package curated
