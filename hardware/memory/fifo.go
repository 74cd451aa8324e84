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

func (mem *Memory) write128(address uint32, value bus.Quadword) {
	switch memorymap.PageOf(address) {
	case memorymap.VIF0In:
		mem.p.FIFO.VIF0.WriteFIFO(value)
	case memorymap.VIF1In:
		mem.p.FIFO.VIF1.WriteFIFO(value)
	case memorymap.GIFIn:
		mem.p.FIFO.GIF.WriteFIFO(value)
	case memorymap.IPUFIFO:
		// the IPU output FIFO is read only. writes to it are ignored
		if address&0x10 == 0x10 {
			mem.p.FIFO.IPUin.WriteFIFO(value)
		}
	case memorymap.SubBus:
		if memorymap.InLegacy(address) {
			mem.p.Legacy.WriteQuadword(address&memorymap.PhysicalMask, value)
			return
		}
		mem.Write64(address, value.Lo)
	default:
		mem.Write64(address, value.Lo)
	}
}
