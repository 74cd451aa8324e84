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

// Package hwregs implements the register backing store. The backing store is
// a flat little-endian byte buffer covering the entire register window. It
// is the durable state for every register that has no bespoke behaviour and
// for those registers (interrupt status, sub-bus flags, GIF registers) whose
// behaviour is implemented in terms of it.
//
// Addresses are reduced to an offset in the buffer with memorymap.Mask so any
// address in the register window, including mirrors in other segments, can be
// used.
package hwregs
