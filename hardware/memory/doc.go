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

// Package memory implements the write side of the hardware register bus. The
// register window is divided into sixteen pages, defined in the memorymap
// package, and every write is routed to the handler for the page it falls in.
//
//	                       Write8  Write16
//	                           \    /
//	                         (merge or shift)
//	                              |
//	    Write128 ---> Write64 ---> Write32 ---- page ---- timers / IPU / DMAC
//	       |            |            |                \
//	       |            |            |                 \---- GIF / VIF
//	       |            |             \
//	       |            |              \---- sub-bus table ---- INTC / SIO / MCH
//	       |            |                                  \
//	        \           |                                   \---- legacy bus
//	         \          |
//	          ----------+--------- FIFO ---- VIF0 / VIF1 / GIF / IPUin
//
//
// Writes that are not consumed by a handler are stored in the register
// backing store, see the hwregs package.
//
// Narrower writes are merged with the current value of the register, which is
// read through the Peeker interface, and written as a 32bit value. This means
// that a register with write side effects sees the whole register, including
// the bytes that weren't part of the write. For write-1-to-clear registers
// this can clear bits that the narrow write did not intend to clear. This is
// how the hardware has always been emulated and it is not corrected here.
//
// A handful of status and mask registers (see shiftedLane() in write.go) are
// not merged. For those registers the value is shifted into the byte lane
// and written without reading the register.
//
// Writes that are re-packed as a FIFO quadword never reach the backing store.
// Other writes to a FIFO page push a quadword with the value zero extended.
//
// All writes are reported to a bus.Tracer before they are processed. Writes
// that are re-dispatched by the memory package itself are also reported in
// some cases. The merge of a 16bit write, the 64bit fallback, the 64bit FIFO
// expansion and the 128bit fallback are reported. The merge of an 8bit write,
// the shifted lane registers, the serial port byte split and the 32bit FIFO
// repack are not.
//
// The Memory type is not safe for concurrent use. When the assertions build
// tag is present every public write function panics if it is used from more
// than one goroutine.
package memory
