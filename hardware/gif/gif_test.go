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

package gif_test

import (
	"testing"

	"github.com/jetsetilly/eehw/hardware/gif"
	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/hwregs"
	"github.com/jetsetilly/eehw/test"
)

type unit struct {
	resets   int
	signal   bool
	fifoSize int
	active   bool
}

func (u *unit) Reset(signal bool) {
	u.resets++
	u.signal = signal
}

func (u *unit) FIFOSize() int {
	return u.fifoSize
}

func (u *unit) Active() bool {
	return u.active
}

type scheduled struct {
	channel int
	cycles  int
}

type scheduler []scheduled

func (s *scheduler) ScheduleDMA(channel int, cycles int) {
	*s = append(*s, scheduled{channel: channel, cycles: cycles})
}

func setup() (*gif.Registers, *hwregs.Registers, *unit, *scheduler) {
	regs := hwregs.NewRegisters()
	u := &unit{}
	s := &scheduler{}
	return gif.NewRegisters(regs, u, s), regs, u, s
}

func TestCTRL(t *testing.T) {
	g, regs, u, _ := setup()

	test.ExpectSuccess(t, g.Write32(addresses.GIF_CTRL, 0xffffffff))
	test.ExpectEquality(t, regs.Read32(addresses.GIF_CTRL), 0x09)
	test.ExpectEquality(t, u.resets, 1)
	test.ExpectSuccess(t, u.signal)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT)&gif.CtrlPSE, gif.CtrlPSE)

	g.WriteCTRL(0x00)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_CTRL), 0x00)
	test.ExpectEquality(t, u.resets, 1)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT)&gif.CtrlPSE, 0)
}

func TestCTRLPreservesStat(t *testing.T) {
	g, regs, _, _ := setup()

	regs.Write32(addresses.GIF_STAT, 0xf0000005)
	g.WriteCTRL(gif.CtrlPSE)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT), 0xf000000d)
}

func TestMODE(t *testing.T) {
	g, regs, _, s := setup()

	g.WriteMODE(0xffff)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_MODE), 0xffff)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT), gif.ModeM3R|gif.ModeIMT)

	// STAT.M3R was set but there is nothing waiting to be transferred
	g.WriteMODE(0x00)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT), 0)
	test.ExpectEquality(t, len(*s), 0)
}

func TestMODERekickActiveChannel(t *testing.T) {
	g, regs, _, s := setup()

	g.WriteMODE(gif.ModeM3R)
	regs.Write32(addresses.D2_CHCR, addresses.CHCR_STR)

	g.WriteMODE(0x00)
	test.DemandEquality(t, len(*s), 1)
	test.ExpectEquality(t, (*s)[0].channel, gif.Channel)
	test.ExpectEquality(t, (*s)[0].cycles, gif.RekickDelay)
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT)&gif.ModeM3R, 0)

	// STAT.M3R is now clear so there is no second rekick
	g.WriteMODE(0x00)
	test.ExpectEquality(t, len(*s), 1)
}

func TestMODERekickFIFO(t *testing.T) {
	g, _, u, s := setup()

	g.WriteMODE(gif.ModeM3R)
	u.fifoSize = 2

	// M3R remains set
	g.WriteMODE(gif.ModeM3R)
	test.ExpectEquality(t, len(*s), 0)

	g.WriteMODE(gif.ModeIMT)
	test.ExpectEquality(t, len(*s), 1)
}

func TestMODERekickUnitActive(t *testing.T) {
	g, regs, u, s := setup()

	// D2_CHCR in the backing store says the channel is stopped
	g.WriteMODE(gif.ModeM3R)
	u.active = true

	g.WriteMODE(0x00)
	test.ExpectEquality(t, regs.Read32(addresses.D2_CHCR), 0)
	test.DemandEquality(t, len(*s), 1)
	test.ExpectEquality(t, (*s)[0].channel, gif.Channel)
}

func TestOtherAddress(t *testing.T) {
	g, regs, _, _ := setup()
	test.ExpectFailure(t, g.Write32(addresses.GIF_STAT, 0x01))
	test.ExpectEquality(t, regs.Read32(addresses.GIF_STAT), 0)
}
