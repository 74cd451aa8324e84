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

// Package prefs facilitates the storage of preferential values in the eehw
// system. It is a key-value store with typed values. Values are bound to
// keys with a Disk and are saved to and loaded from a plain text file:
//
//	hardware.ee.trace :: false
//	hardware.ee.subwordWarnings :: true
//
// Values can also be overridden from the command line with the
// PushCommandLineStack() function. Command line values take effect on the
// next call to Disk.Load() and are not saved to disk unless Disk.Save() is
// called explicitly afterwards.
package prefs
