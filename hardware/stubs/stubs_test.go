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

package stubs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/eehw/hardware/memory"
	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/hardware/preferences"
	"github.com/jetsetilly/eehw/hardware/stubs"
	"github.com/jetsetilly/eehw/logger"
	"github.com/jetsetilly/eehw/test"
)

func TestStubs(t *testing.T) {
	prefs := &preferences.Preferences{}
	prefs.SetDefaults()

	echo := &bytes.Buffer{}
	mem := memory.NewMemory(prefs, stubs.Peripherals(prefs, echo))
	mem.Reset()
	logger.Clear()

	mem.Write32(addresses.DMAC_CTRL, 0x01)
	mem.Write128(addresses.GIF_FIFO, bus.Quadword{Lo: 0x01})
	mem.Write32(addresses.SBUS_F240, 0x00040000)

	log := &strings.Builder{}
	logger.Write(log)
	test.ExpectSuccess(t, strings.Contains(log.String(), "DMAC: write32 DMAC_CTRL = 00000001"))
	test.ExpectSuccess(t, strings.Contains(log.String(), "GIF FIFO: push 00000000000000000000000000000001"))
	test.ExpectSuccess(t, strings.Contains(log.String(), "LEGACY: irq 1"))

	// the stubs never handle a write
	test.ExpectEquality(t, mem.Regs.Read32(addresses.DMAC_CTRL), 0x01)

	// echo is disabled by default
	mem.Write32(addresses.SIO_TXFIFO, 0x000a6968)
	test.ExpectEquality(t, echo.String(), "")

	// the zero byte from the previous write is still in the line buffer
	test.DemandSuccess(t, prefs.SIOEcho.Set(true))
	mem.Write32(addresses.SIO_TXFIFO, 0x000a6968)
	test.ExpectEquality(t, echo.String(), "\x00hi\n")

	logger.Clear()
}

func TestGIFFIFOSize(t *testing.T) {
	f := &stubs.FIFO{Tag: "test"}
	g := stubs.GIF{FIFO: f}
	test.ExpectEquality(t, g.FIFOSize(), 0)
	f.WriteFIFO(bus.Quadword{})
	test.ExpectEquality(t, g.FIFOSize(), 1)
	test.ExpectEquality(t, stubs.GIF{}.FIFOSize(), 0)
}
