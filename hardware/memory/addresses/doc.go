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

// Package addresses contains the addresses of the named registers in the
// hardware register window, together with the canonical symbol for each.
//
// The Symbols map is the canonical list. The Symbol() function should be used
// to find the name of an address for logging and tracing purposes. Addresses
// that are not named are formatted as hexadecimal.
package addresses
