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

package stubs

import (
	"fmt"
	"io"

	"github.com/jetsetilly/eehw/hardware/memory"
	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/hardware/preferences"
	"github.com/jetsetilly/eehw/logger"
)

// Subsystem logs 32bit and 64bit writes under its tag. Writes are never
// handled so they are always stored in the register backing store.
type Subsystem struct {
	Tag string
}

func (s Subsystem) Write32(address uint32, value uint32) bool {
	logger.Logf(logger.Allow, s.Tag, "write32 %s = %08x", addresses.Symbol(address), value)
	return false
}

func (s Subsystem) Write64(address uint32, value uint64) bool {
	logger.Logf(logger.Allow, s.Tag, "write64 %s = %016x", addresses.Symbol(address), value)
	return false
}

// FIFO logs every quadword pushed to it and counts the quadwords. The count
// is never reduced.
type FIFO struct {
	Tag   string
	Count int
}

func (f *FIFO) WriteFIFO(value bus.Quadword) {
	f.Count++
	logger.Logf(logger.Allow, f.Tag, "push %s", value)
}

// GIF is the graphics interface unit. FIFOSize() is the count of the
// quadwords pushed to the GIF FIFO.
type GIF struct {
	FIFO *FIFO
}

func (g GIF) Reset(signal bool) {
	logger.Logf(logger.Allow, "GIF", "reset (signal %v)", signal)
}

func (g GIF) FIFOSize() int {
	if g.FIFO == nil {
		return 0
	}
	return g.FIFO.Count
}

// Active is always false. The stub DMAC leaves D2_CHCR to the backing store.
func (g GIF) Active() bool {
	return false
}

// DMAC logs scheduled DMA channels.
type DMAC struct {
	Subsystem
}

func (d DMAC) ScheduleDMA(channel int, cycles int) {
	logger.Logf(logger.Allow, d.Tag, "channel %d scheduled in %d cycles", channel, cycles)
}

// INTC logs interrupt rechecks.
type INTC struct{}

func (INTC) TestINTC() {
	logger.Log(logger.Allow, "INTC", "test")
}

// Legacy is the legacy co-processor.
type Legacy struct {
	cycle uint32
}

func (l *Legacy) Write32(address uint32, value uint32) {
	logger.Logf(logger.Allow, "LEGACY", "write32 %08x = %08x", address, value)
}

func (l *Legacy) WriteQuadword(address uint32, value bus.Quadword) {
	logger.Logf(logger.Allow, "LEGACY", "write128 %08x = %s", address, value)
}

func (l *Legacy) RaiseIRQ(line int) {
	logger.Logf(logger.Allow, "LEGACY", "irq %d", line)
}

func (l *Legacy) Reset() {
	logger.Log(logger.Allow, "LEGACY", "reset")
}

func (l *Legacy) SetClock(hz uint32) {
	logger.Logf(logger.Allow, "LEGACY", "clock %dHz", hz)
}

func (l *Legacy) ResetPeripherals() {
	logger.Log(logger.Allow, "LEGACY", "reset peripherals")
}

func (l *Legacy) Cycle() uint32 {
	return l.cycle
}

func (l *Legacy) SetCycle(cycle uint32) {
	l.cycle = cycle
}

func (l *Legacy) Poke32(address uint32, value uint32) {
	logger.Logf(logger.Allow, "LEGACY", "poke %08x = %08x", address, value)
}

// Console notes lines from the serial port in the central log and, if the
// SIOEcho preference is set, writes them to the echo writer.
type Console struct {
	prefs *preferences.Preferences
	echo  io.Writer
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(prefs *preferences.Preferences, echo io.Writer) *Console {
	return &Console{
		prefs: prefs,
		echo:  echo,
	}
}

func (c *Console) Line(s string) {
	logger.Log(logger.Allow, "SIO", s)
	if c.echo != nil && c.prefs.SIOEcho.Get().(bool) {
		fmt.Fprint(c.echo, s)
	}
}

// Peripherals returns a memory.Peripherals instance with every field
// populated with a stub. The Tracer and Peeker fields are left nil.
func Peripherals(prefs *preferences.Preferences, echo io.Writer) memory.Peripherals {
	gif := &FIFO{Tag: "GIF FIFO"}
	dmac := DMAC{Subsystem{Tag: "DMAC"}}
	return memory.Peripherals{
		Timers:    Subsystem{Tag: "TIMERS"},
		IPU:       Subsystem{Tag: "IPU"},
		VIF:       [2]bus.RegisterWriter{Subsystem{Tag: "VIF0"}, Subsystem{Tag: "VIF1"}},
		DMAC:      dmac,
		GIF:       GIF{FIFO: gif},
		Scheduler: dmac,
		FIFO: memory.FIFOs{
			VIF0:  &FIFO{Tag: "VIF0 FIFO"},
			VIF1:  &FIFO{Tag: "VIF1 FIFO"},
			GIF:   gif,
			IPUin: &FIFO{Tag: "IPUin FIFO"},
		},
		INTC:    INTC{},
		Legacy:  &Legacy{},
		Console: NewConsole(prefs, echo),
	}
}
