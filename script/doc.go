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

// Package script parses and runs register write scripts. A script is a list
// of commands, one per line. Numbers are always hexadecimal and must not have
// a prefix.
//
//	w8   ADDRESS VALUE
//	w16  ADDRESS VALUE
//	w32  ADDRESS VALUE
//	w64  ADDRESS VALUE
//	w128 ADDRESS HIGH LOW
//	peek ADDRESS
//	reset
//
// Addresses must lie in the register window, 10000000 to 1000ffff, and be
// aligned to the width of the access.
//
// Anything following a # is a comment. Blank lines are ignored.
//
// Errors returned by Parse() are annotated with the line number. The cause of
// the error can be found with errors.Cause() from the
// "github.com/pkg/errors" package.
package script
