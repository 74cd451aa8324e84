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
	"github.com/jetsetilly/eehw/assert"
	"github.com/jetsetilly/eehw/hardware/gif"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/hardware/memory/hwregs"
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/jetsetilly/eehw/hardware/memory/sio"
	"github.com/jetsetilly/eehw/hardware/preferences"
)

// FIFOs are the four write queues that are reached through the FIFO pages.
type FIFOs struct {
	VIF0  bus.FIFO
	VIF1  bus.FIFO
	GIF   bus.FIFO
	IPUin bus.FIFO
}

// Peripherals are the subsystems the memory package writes to. Any field
// left as nil is replaced by a null implementation: register writers that
// never handle a write, FIFOs that discard everything, etc.
type Peripherals struct {
	Timers bus.RegisterWriter
	IPU    bus.IPU
	VIF    [2]bus.RegisterWriter
	DMAC   bus.RegisterWriter

	GIF       bus.GIFUnit
	Scheduler bus.Scheduler
	FIFO      FIFOs

	INTC   bus.Interrupts
	Legacy bus.Legacy

	// the serial console is process-wide. if Console is nil the existing
	// console is left in place
	Console bus.Console

	// if Tracer is nil writes are noted in the central log, subject to the
	// TraceWrites preference
	Tracer bus.Tracer

	// if Peeker is nil narrow writes are merged with the value in the
	// register backing store
	Peeker bus.Peeker
}

// MCH is the state of the memory controller that is affected by the
// handshake register.
type MCH struct {
	// the number of memory devices discovered by software. reset by a write
	// to MCH_RICM
	DeviceID uint32
}

// Memory is the hardware register bus.
type Memory struct {
	prefs *preferences.Preferences
	p     Peripherals

	// register backing store
	Regs *hwregs.Registers

	// GIF control registers. held in Regs
	GIF *gif.Registers

	MCH MCH

	// dispatch tables. the page table covers every page. the sub-bus table
	// is indexed by memorymap.Index() and entries may be nil
	pages  [memorymap.NumPages]pageWrite
	subbus [256]pageWrite

	owner assert.Owner
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The prefs argument can be nil, in which case default preferences are used.
func NewMemory(prefs *preferences.Preferences, p Peripherals) *Memory {
	if prefs == nil {
		prefs = &preferences.Preferences{}
		prefs.SetDefaults()
	}

	mem := &Memory{
		prefs: prefs,
		Regs:  hwregs.NewRegisters(),
	}

	if p.Timers == nil {
		p.Timers = nullWriter{}
	}
	if p.IPU == nil {
		p.IPU = nullIPU{}
	}
	for i := range p.VIF {
		if p.VIF[i] == nil {
			p.VIF[i] = nullWriter{}
		}
	}
	if p.DMAC == nil {
		p.DMAC = nullWriter{}
	}
	if p.GIF == nil {
		p.GIF = nullGIF{}
	}
	if p.Scheduler == nil {
		p.Scheduler = nullScheduler{}
	}
	if p.FIFO.VIF0 == nil {
		p.FIFO.VIF0 = nullFIFO{}
	}
	if p.FIFO.VIF1 == nil {
		p.FIFO.VIF1 = nullFIFO{}
	}
	if p.FIFO.GIF == nil {
		p.FIFO.GIF = nullFIFO{}
	}
	if p.FIFO.IPUin == nil {
		p.FIFO.IPUin = nullFIFO{}
	}
	if p.INTC == nil {
		p.INTC = nullINTC{}
	}
	if p.Legacy == nil {
		p.Legacy = &nullLegacy{}
	}
	if p.Tracer == nil {
		p.Tracer = traceLog{perm: &prefs.TraceWrites}
	}
	if p.Peeker == nil {
		p.Peeker = storePeeker{regs: mem.Regs}
	}
	if p.Console != nil {
		sio.SetConsole(p.Console)
	}

	mem.p = p
	mem.GIF = gif.NewRegisters(mem.Regs, p.GIF, p.Scheduler)

	mem.buildPages()
	mem.buildSubBus()

	return mem
}

// Reset the register backing store, the memory controller state and the
// serial line buffer.
func (mem *Memory) Reset() {
	mem.Regs.Reset()
	mem.MCH = MCH{}
	sio.Reset()
}

// Snapshot creates a copy of the register backing store in its current state.
func (mem *Memory) Snapshot() *hwregs.Registers {
	return mem.Regs.Snapshot()
}

// Plumb a register backing store snapshot into the memory.
func (mem *Memory) Plumb(regs *hwregs.Registers) {
	mem.Regs.Plumb(regs)
}

// Peek is an implementation of bus.DebugBus. It reads the register backing
// store with no side effects.
func (mem *Memory) Peek(address uint32) (uint32, error) {
	return mem.Regs.Peek(address)
}

// Poke is an implementation of bus.DebugBus. It writes to the register
// backing store with no side effects.
func (mem *Memory) Poke(address uint32, value uint32) error {
	return mem.Regs.Poke(address, value)
}

func (mem *Memory) String() string {
	return mem.Regs.String()
}
