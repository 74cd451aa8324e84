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

package bus

// RegisterWriter is implemented by subsystems that own 32bit registers: the
// timers, the vector interface units and the DMA controller.
type RegisterWriter interface {
	Write32(address uint32, value uint32) bool
}

// IPU is the image processing unit. It is the only subsystem with true 64bit
// registers.
type IPU interface {
	RegisterWriter
	Write64(address uint32, value uint64) bool
}

// FIFO is a push-only write queue consumed by another subsystem.
type FIFO interface {
	WriteFIFO(value Quadword)
}

// Interrupts re-evaluates the interrupt controller's pending and mask state
// and asserts or clears the CPU interrupt line as required.
type Interrupts interface {
	TestINTC()
}

// GIFUnit is the graphics interface unit, as needed by the GIF control and
// mode registers.
type GIFUnit interface {
	// Reset the unit. The signal argument says whether the GS signal state
	// should be reset too.
	Reset(signal bool)

	// FIFOSize returns the number of quadwords waiting in the GIF FIFO.
	FIFOSize() int

	// Active returns true if the GIF DMA channel is running according to the
	// DMA controller. The D2_CHCR value in the backing store is only current
	// if the controller leaves CHCR writes to the store.
	Active() bool
}

// Scheduler arranges for a DMA channel to be serviced after a number of
// cycles.
type Scheduler interface {
	ScheduleDMA(channel int, cycles int)
}

// Legacy is the bus of the legacy co-processor, which is reached through the
// sub-bus.
type Legacy interface {
	// Write32 and WriteQuadword write to the legacy bus. The address is a
	// physical address in the memorymap.Legacy range.
	Write32(address uint32, value uint32)
	WriteQuadword(address uint32, value Quadword)

	// RaiseIRQ raises an interrupt line on the legacy interrupt controller.
	RaiseIRQ(line int)

	// Reset the legacy co-processor.
	Reset()

	// SetClock changes the clock speed of the legacy co-processor.
	SetClock(hz uint32)

	// ResetPeripherals resets the sound processor and returns the disc
	// drive to legacy speed.
	ResetPeripherals()

	// Cycle and SetCycle access the legacy co-processor's cycle counter.
	Cycle() uint32
	SetCycle(cycle uint32)

	// Poke32 writes directly to a legacy status register with no side
	// effects.
	Poke32(address uint32, value uint32)
}

// Console accepts completed lines of text from the serial port. The line
// includes the terminating newline if there was one.
type Console interface {
	Line(s string)
}

// Width of a bus access in bits.
type Width int

// List of valid Width values.
const (
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// Tracer is called before every write. It must not alter the emulation.
type Tracer interface {
	Trace(width Width, address uint32, value Quadword, read bool)
}

// Peeker returns the current value of a register with no side effects. It is
// used when a narrow write must be merged with the rest of a register.
type Peeker interface {
	Peek32(address uint32) uint32
}

// Store is the raw register backing store.
type Store interface {
	Read32(address uint32) uint32
	Write32(address uint32, value uint32)
}

// DebugBus defines the meta-operations for the register window. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebugBus interface {
	Peek(address uint32) (uint32, error)
	Poke(address uint32, value uint32) error
}
