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
	"github.com/jetsetilly/eehw/hardware/memory/hwregs"
)

// null implementations of the peripheral interfaces. register writers never
// handle a write and FIFOs discard everything they are given

type nullWriter struct{}

func (nullWriter) Write32(_ uint32, _ uint32) bool {
	return false
}

type nullIPU struct {
	nullWriter
}

func (nullIPU) Write64(_ uint32, _ uint64) bool {
	return false
}

type nullFIFO struct{}

func (nullFIFO) WriteFIFO(_ bus.Quadword) {}

type nullGIF struct{}

func (nullGIF) Reset(_ bool) {}

func (nullGIF) FIFOSize() int {
	return 0
}

func (nullGIF) Active() bool {
	return false
}

type nullScheduler struct{}

func (nullScheduler) ScheduleDMA(_ int, _ int) {}

type nullINTC struct{}

func (nullINTC) TestINTC() {}

// nullLegacy keeps the cycle counter so that it is preserved by a reset in
// the same way as a real legacy co-processor.
type nullLegacy struct {
	cycle uint32
}

func (*nullLegacy) Write32(_ uint32, _ uint32) {}
func (*nullLegacy) WriteQuadword(_ uint32, _ bus.Quadword) {}
func (*nullLegacy) RaiseIRQ(_ int) {}
func (l *nullLegacy) Reset() { l.cycle = 0 }
func (*nullLegacy) SetClock(_ uint32) {}
func (*nullLegacy) ResetPeripherals() {}
func (l *nullLegacy) Cycle() uint32 { return l.cycle }
func (l *nullLegacy) SetCycle(cycle uint32) { l.cycle = cycle }
func (*nullLegacy) Poke32(_ uint32, _ uint32) {}

// storePeeker reads from the register backing store.
type storePeeker struct {
	regs *hwregs.Registers
}

func (p storePeeker) Peek32(address uint32) uint32 {
	return p.regs.Read32(address)
}
