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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/jetsetilly/eehw/test"
)

const validMemMap = `10000000 -> 10001fff	Timers
10002000 -> 10002fff	IPU
10003000 -> 10003fff	GIF/VIF
10004000 -> 10004fff	VIF0 FIFO
10005000 -> 10005fff	VIF1 FIFO
10006000 -> 10006fff	GIF FIFO
10007000 -> 10007fff	IPU FIFO
10008000 -> 1000dfff	DMA channels
1000e000 -> 1000efff	DMAC
1000f000 -> 1000ffff	Sub-bus
1000f300 -> 1000f3ff	Legacy sub-bus
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestPageOf(t *testing.T) {
	test.ExpectEquality(t, memorymap.PageOf(0x10000000), memorymap.Timer0)
	test.ExpectEquality(t, memorymap.PageOf(0x10001810), memorymap.Timer1)
	test.ExpectEquality(t, memorymap.PageOf(0x10007010), memorymap.IPUFIFO)
	test.ExpectEquality(t, memorymap.PageOf(0x1000f590), memorymap.SubBus)

	// segment bits do not affect the page
	test.ExpectEquality(t, memorymap.PageOf(0xb000e010), memorymap.DMAC)
}

func TestIndex(t *testing.T) {
	test.ExpectEquality(t, memorymap.Index(0x1000f000), 0x00)
	test.ExpectEquality(t, memorymap.Index(0x1000f010), 0x01)
	test.ExpectEquality(t, memorymap.Index(0x1000f180), 0x18)
	test.ExpectEquality(t, memorymap.Index(0x1000f590), 0x59)

	// low four bits are ignored
	test.ExpectEquality(t, memorymap.Index(0x1000f01c), 0x01)
}

func TestFIFOPages(t *testing.T) {
	for p := memorymap.Page(0); p < memorymap.NumPages; p++ {
		fifo := p >= 0x04 && p <= 0x07
		test.ExpectEquality(t, p.IsFIFO(), fifo, p)
	}
}

func TestLegacy(t *testing.T) {
	test.ExpectSuccess(t, memorymap.InLegacy(0x1000f300))
	test.ExpectSuccess(t, memorymap.InLegacy(0xb000f3fc))
	test.ExpectFailure(t, memorymap.InLegacy(0x1000f400))
	test.ExpectFailure(t, memorymap.InLegacy(0x1000f2fc))
}
