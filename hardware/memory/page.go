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
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
)

// pageWrite handles a 32bit write. Returns true if the write has been fully
// handled. If it returns false the value is stored in the register backing
// store.
type pageWrite func(address uint32, value uint32) bool

func (mem *Memory) buildPages() {
	for p := range mem.pages {
		page := memorymap.Page(p)
		switch {
		case page == memorymap.Timer0 || page == memorymap.Timer1:
			mem.pages[p] = mem.p.Timers.Write32
		case page == memorymap.IPU:
			mem.pages[p] = mem.p.IPU.Write32
		case page == memorymap.GIFVIF:
			mem.pages[p] = mem.writeGIFVIF
		case page.IsFIFO():
			mem.pages[p] = mem.writeFIFO32
		case page.IsDMA():
			mem.pages[p] = mem.p.DMAC.Write32
		case page == memorymap.SubBus:
			mem.pages[p] = mem.writeSubBus
		}
	}
}

// the GIF/VIF page. the upper part of the page is divided between the two
// vector interface units. the GIF registers are at the bottom of the page
func (mem *Memory) writeGIFVIF(address uint32, value uint32) bool {
	if address >= memorymap.VIF1Start {
		return mem.p.VIF[1].Write32(address, value)
	}
	if address >= memorymap.VIF0Start {
		return mem.p.VIF[0].Write32(address, value)
	}
	return mem.GIF.Write32(address, value)
}

// a 32bit write to a FIFO page is pushed to the FIFO as a quadword. the value
// is placed in the lane selected by the address and the other lanes are zero
func (mem *Memory) writeFIFO32(address uint32, value uint32) bool {
	mem.write128(address&^0x0f, bus.QuadwordFrom32(int(address>>2)&0x03, value))
	return true
}
