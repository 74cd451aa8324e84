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

// Package bus defines the boundary between the register write path and the
// rest of the emulation. For an explanation of how the write path uses these
// interfaces see the memory package documentation.
//
// Every subsystem that owns its own registers is reached through a narrow
// interface. Subsystem write functions return true if the write has been
// fully handled. A return value of false means that the write should continue
// to the register backing store.
package bus
