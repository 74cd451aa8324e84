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

// Package sio implements the serial output line buffer. Bytes written to the
// serial transmit register are accumulated until a line is complete, after
// which the line is converted from Shift-JIS and sent to the console.
//
// There is only one serial console stream per emulated machine so the line
// buffer is process-wide state. Like the rest of the register bus it must
// only be used from one goroutine.
package sio
