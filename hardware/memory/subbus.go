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
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/jetsetilly/eehw/logger"
)

// Bits in the SBUS_F240 register.
const (
	f240StatusFlag  = uint32(0x100)
	f240RaiseIRQ    = uint32(0x40000)
	f240ResetLegacy = uint32(0x80000)
)

// LegacyClock is the clock speed of the legacy co-processor after it has been
// reset through the SBUS_F240 register.
const LegacyClock = 33868800

// the legacy interrupt line raised through the SBUS_F240 register
const legacyIRQ = 1

// the busy flag in MCH_RICM. always cleared by a write
const ricmBusy = uint32(0x80000000)

func (mem *Memory) buildSubBus() {
	mem.subbus[memorymap.Index(addresses.INTC_STAT)] = mem.writeINTCSTAT
	mem.subbus[memorymap.Index(addresses.INTC_MASK)] = mem.writeINTCMASK
	mem.subbus[memorymap.Index(addresses.SIO_TXFIFO)] = mem.writeSIO
	mem.subbus[memorymap.Index(addresses.SBUS_F200)] = mem.writeStore
	mem.subbus[memorymap.Index(addresses.SBUS_F220)] = mem.writeSetBits
	mem.subbus[memorymap.Index(addresses.SBUS_F230)] = mem.writeClearBits
	mem.subbus[memorymap.Index(addresses.SBUS_F240)] = mem.writeF240
	mem.subbus[memorymap.Index(addresses.SBUS_F260)] = mem.writeStore
	mem.subbus[memorymap.Index(addresses.MCH_RICM)] = mem.writeRICM
	mem.subbus[memorymap.Index(addresses.MCH_DRD)] = mem.writeStore
	mem.subbus[memorymap.Index(addresses.DMAC_ENABLEW)] = mem.writeEnableW
}

// the sub-bus page. registers without an entry in the table are forwarded to
// the legacy bus if they are in the legacy range
func (mem *Memory) writeSubBus(address uint32, value uint32) bool {
	if w := mem.subbus[memorymap.Index(address)]; w != nil {
		return w(address, value)
	}

	if memorymap.InLegacy(address) {
		mem.p.Legacy.Write32(address&memorymap.PhysicalMask, value)
		return true
	}

	return false
}

// writeStore leaves the value to be stored in the register backing store.
func (mem *Memory) writeStore(_ uint32, _ uint32) bool {
	return false
}

// interrupt status bits are cleared by writing a one to them.
func (mem *Memory) writeINTCSTAT(_ uint32, value uint32) bool {
	stat := mem.Regs.Read32(addresses.INTC_STAT)
	mem.Regs.Write32(addresses.INTC_STAT, stat&^value)
	return true
}

// interrupt mask bits are toggled by writing a one to them.
func (mem *Memory) writeINTCMASK(_ uint32, value uint32) bool {
	mask := mem.Regs.Read32(addresses.INTC_MASK)
	mem.Regs.Write32(addresses.INTC_MASK, mask^uint32(uint16(value)))
	mem.p.INTC.TestINTC()
	return true
}

// the bytes of a word written to the serial port are transmitted in little
// endian order.
func (mem *Memory) writeSIO(_ uint32, value uint32) bool {
	for i := 0; i < 4; i++ {
		mem.write8(addresses.SIO_TXFIFO, uint8(value>>(i*8)))
	}
	return true
}

func (mem *Memory) writeSetBits(address uint32, value uint32) bool {
	mem.Regs.Write32(address, mem.Regs.Read32(address)|value)
	return true
}

func (mem *Memory) writeClearBits(address uint32, value uint32) bool {
	mem.Regs.Write32(address, mem.Regs.Read32(address)&^value)
	return true
}

// SBUS_F240 controls the legacy co-processor. only the status flag is stored.
func (mem *Memory) writeF240(address uint32, value uint32) bool {
	if value&f240RaiseIRQ == f240RaiseIRQ {
		mem.p.Legacy.RaiseIRQ(legacyIRQ)
	}

	if value&f240ResetLegacy == f240ResetLegacy {
		logger.Log(logger.Allow, "SBUS", "resetting legacy co-processor")

		cycle := mem.p.Legacy.Cycle()
		mem.p.Legacy.Reset()
		mem.p.Legacy.SetClock(LegacyClock)
		mem.p.Legacy.ResetPeripherals()
		mem.p.Legacy.Poke32(addresses.LegacyStatus1450, 0x08)
		mem.p.Legacy.Poke32(addresses.LegacyStatus1078, 0x01)
		mem.p.Legacy.SetCycle(cycle)
	}

	reg := mem.Regs.Read32(address)
	reg = (reg &^ f240StatusFlag) | (value & f240StatusFlag)
	mem.Regs.Write32(address, reg)

	return true
}

// MCH_RICM starts a command on the memory controller. the device ID counter
// is reset by the command that clears the serial repeater, provided the
// repeater is not already in use.
func (mem *Memory) writeRICM(address uint32, value uint32) bool {
	sa := (value >> 16) & 0xfff
	sop := (value >> 6) & 0x0f
	sbc := (mem.Regs.Read32(addresses.MCH_DRD) >> 7) & 0x01

	if sa == 0x21 && sop == 0x01 && sbc == 0x00 {
		logger.Log(logger.Allow, "MCH", "device ID reset")
		mem.MCH.DeviceID = 0
	}

	mem.Regs.Write32(address, value&^ricmBusy)
	return true
}

func (mem *Memory) writeEnableW(_ uint32, value uint32) bool {
	return mem.p.DMAC.Write32(addresses.DMAC_ENABLEW, value)
}
