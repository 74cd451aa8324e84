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

package gif

import (
	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/logger"
)

// Bits in the CTRL register.
const (
	CtrlRST  = uint32(0x01)
	CtrlPSE  = uint32(0x08)
	ctrlMask = CtrlRST | CtrlPSE
)

// Bits in the MODE register. The bits have the same position in the STAT
// register.
const (
	ModeM3R = uint32(0x01)
	ModeIMT = uint32(0x04)
)

// Channel is the DMA channel that feeds the graphics interface.
const Channel = 2

// RekickDelay is the number of cycles after which a stalled GIF DMA channel
// is serviced when path 3 is unmasked.
const RekickDelay = 8

// Registers are the GIF control registers.
type Registers struct {
	store bus.Store
	unit  bus.GIFUnit
	sched bus.Scheduler
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters(store bus.Store, unit bus.GIFUnit, sched bus.Scheduler) *Registers {
	return &Registers{
		store: store,
		unit:  unit,
		sched: sched,
	}
}

// Write32 writes to the CTRL or MODE register. Returns false if the address
// is not one of those registers.
func (r *Registers) Write32(address uint32, value uint32) bool {
	switch address {
	case addresses.GIF_CTRL:
		r.WriteCTRL(value)
	case addresses.GIF_MODE:
		r.WriteMODE(value)
	default:
		return false
	}
	return true
}

// WriteCTRL writes to the CTRL register. Only the RST and PSE bits are kept.
func (r *Registers) WriteCTRL(value uint32) {
	value &= ctrlMask
	r.store.Write32(addresses.GIF_CTRL, value)

	if value&CtrlRST == CtrlRST {
		logger.Log(logger.Allow, "GIF", "reset GIF by GIF_CTRL")
		r.unit.Reset(true)
	}

	stat := r.store.Read32(addresses.GIF_STAT)
	stat = (stat &^ CtrlPSE) | (value & CtrlPSE)
	r.store.Write32(addresses.GIF_STAT, stat)
}

// WriteMODE writes to the MODE register. If path 3 was masked and is being
// unmasked while there is GIF data outstanding then the GIF DMA channel is
// scheduled. The channel counts as running if the STR bit of D2_CHCR is set
// in the backing store or if the GIF unit reports it as active.
func (r *Registers) WriteMODE(value uint32) {
	r.store.Write32(addresses.GIF_MODE, value)

	stat := r.store.Read32(addresses.GIF_STAT)

	if stat&ModeM3R == ModeM3R && value&ModeM3R == 0x00 {
		active := r.store.Read32(addresses.D2_CHCR)&addresses.CHCR_STR == addresses.CHCR_STR
		active = active || r.unit.Active()
		if active || r.unit.FIFOSize() > 0 {
			logger.Log(logger.Allow, "GIF", "path 3 unmasked with data pending. scheduling GIF DMA")
			r.sched.ScheduleDMA(Channel, RekickDelay)
		}
	}

	stat = (stat &^ (ModeM3R | ModeIMT)) | (value & (ModeM3R | ModeIMT))
	r.store.Write32(addresses.GIF_STAT, stat)
}
