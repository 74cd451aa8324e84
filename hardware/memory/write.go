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

package memory

import (
	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/jetsetilly/eehw/hardware/memory/sio"
	"github.com/jetsetilly/eehw/logger"
)

// Write8 writes a byte to the register window.
func (mem *Memory) Write8(address uint32, value uint8) {
	mem.owner.Check("memory")
	mem.p.Tracer.Trace(bus.Width8, address, bus.Quadword{Lo: uint64(value)}, false)
	mem.write8(address, value)
}

func (mem *Memory) write8(address uint32, value uint8) {
	if address == addresses.SIO_TXFIFO {
		sio.Transmit(value)
		return
	}

	shift := (address & 0x03) * 8

	if mem.shiftedLane(address) {
		logger.Logf(&mem.prefs.SubwordWarnings, "EE HW", "8bit write to %s: %02x", addresses.Symbol(address&^0x03), value)
		mem.write32(address&^0x03, uint32(value)<<shift)
		return
	}

	reg := mem.p.Peeker.Peek32(address &^ 0x03)
	reg = (reg &^ (0xff << shift)) | (uint32(value) << shift)
	mem.write32(address&^0x03, reg)
}

// Write16 writes a half-word to the register window. The address must be
// aligned.
func (mem *Memory) Write16(address uint32, value uint16) {
	mem.owner.Check("memory")
	mem.p.Tracer.Trace(bus.Width16, address, bus.Quadword{Lo: uint64(value)}, false)

	shift := (address & 0x03) * 8

	if mem.shiftedLane(address) {
		logger.Logf(&mem.prefs.SubwordWarnings, "EE HW", "16bit write to %s: %04x", addresses.Symbol(address&^0x03), value)
		mem.write32(address&^0x03, uint32(value)<<shift)
		return
	}

	reg := mem.p.Peeker.Peek32(address &^ 0x03)
	reg = (reg &^ (0xffff << shift)) | (uint32(value) << shift)
	mem.Write32(address&^0x03, reg)
}

// shiftedLane returns true if the register containing the address takes the
// value of a narrow write in the addressed byte lane with every other lane
// zero, rather than a value merged with the current contents of the register.
func (mem *Memory) shiftedLane(address uint32) bool {
	switch address &^ 0x03 {
	case addresses.DMAC_STAT, addresses.INTC_STAT, addresses.INTC_MASK, addresses.DMAC_FAKESTAT:
		return true
	}
	return false
}

// Write32 writes a word to the register window. The address must be aligned.
func (mem *Memory) Write32(address uint32, value uint32) {
	mem.owner.Check("memory")
	mem.p.Tracer.Trace(bus.Width32, address, bus.Quadword{Lo: uint64(value)}, false)
	mem.write32(address, value)
}

func (mem *Memory) write32(address uint32, value uint32) {
	if mem.pages[memorymap.PageOf(address)](address, value) {
		return
	}
	mem.Regs.Write32(address, value)
}

// Write64 writes a double-word to the register window. The address must be
// aligned.
//
// Only the IPU has 64bit registers. Writes to a FIFO page are zero extended
// to a quadword and writes to any other page are reduced to a 32bit write of
// the lower half of the value.
func (mem *Memory) Write64(address uint32, value uint64) {
	mem.owner.Check("memory")
	mem.p.Tracer.Trace(bus.Width64, address, bus.Quadword{Lo: value}, false)

	page := memorymap.PageOf(address)

	switch {
	case page == memorymap.IPU:
		if !mem.p.IPU.Write64(address, value) {
			mem.Regs.Write64(address, value)
		}
	case page.IsFIFO():
		mem.Write128(address&^0x0f, bus.QuadwordFrom64(int(address>>3)&0x01, value))
	default:
		mem.Write32(address, uint32(value))
	}
}

// Write128 writes a quadword to the register window. The address must be
// aligned.
//
// Quadwords are only meaningful to the FIFO pages and to the legacy range of
// the sub-bus page. Writes to any other address are reduced to a 64bit write
// of the lower half of the quadword.
func (mem *Memory) Write128(address uint32, value bus.Quadword) {
	mem.owner.Check("memory")
	mem.p.Tracer.Trace(bus.Width128, address, value, false)
	mem.write128(address, value)
}
