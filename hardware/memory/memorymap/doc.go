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

// Package memorymap describes the layout of the hardware register window of
// the main CPU. The window is sixteen pages of 4KiB starting at 0x10000000.
// Each page is handled in its own way by the memory package.
//
// The PageOf() function extracts the page from an address. Within the
// sub-bus page (page 0x0f) registers are selected with the Index() function,
// which extracts bits 4 to 11 of the address. The low four bits of the
// address play no part in selecting a register.
//
// The Summary() function returns a description of every page and is useful
// for reference.
package memorymap
