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

package memory_test

import (
	"fmt"

	"github.com/jetsetilly/eehw/hardware/memory"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
)

// the fakes in this file record every call made to them

type write32 struct {
	address uint32
	value   uint32
}

type writer struct {
	handled bool
	writes  []write32
}

func (w *writer) Write32(address uint32, value uint32) bool {
	w.writes = append(w.writes, write32{address: address, value: value})
	return w.handled
}

type write64 struct {
	address uint32
	value   uint64
}

type ipu struct {
	writer
	handled64 bool
	writes64  []write64
}

func (u *ipu) Write64(address uint32, value uint64) bool {
	u.writes64 = append(u.writes64, write64{address: address, value: value})
	return u.handled64
}

type fifo []bus.Quadword

func (f *fifo) WriteFIFO(value bus.Quadword) {
	*f = append(*f, value)
}

type intc struct {
	tests int
}

func (i *intc) TestINTC() {
	i.tests++
}

type gifUnit struct {
	resets   int
	fifoSize int
}

func (g *gifUnit) Reset(_ bool) {
	g.resets++
}

func (g *gifUnit) FIFOSize() int {
	return g.fifoSize
}

func (g *gifUnit) Active() bool {
	return false
}

type scheduler []int

func (s *scheduler) ScheduleDMA(channel int, _ int) {
	*s = append(*s, channel)
}

// legacy records calls as strings in the order they are made
type legacy struct {
	calls []string
	cycle uint32
}

func (l *legacy) Write32(address uint32, value uint32) {
	l.calls = append(l.calls, fmt.Sprintf("write32 %08x %08x", address, value))
}

func (l *legacy) WriteQuadword(address uint32, value bus.Quadword) {
	l.calls = append(l.calls, fmt.Sprintf("write128 %08x %s", address, value))
}

func (l *legacy) RaiseIRQ(line int) {
	l.calls = append(l.calls, fmt.Sprintf("irq %d", line))
}

func (l *legacy) Reset() {
	l.calls = append(l.calls, "reset")
	l.cycle = 0
}

func (l *legacy) SetClock(hz uint32) {
	l.calls = append(l.calls, fmt.Sprintf("clock %d", hz))
}

func (l *legacy) ResetPeripherals() {
	l.calls = append(l.calls, "peripherals")
}

func (l *legacy) Cycle() uint32 {
	return l.cycle
}

func (l *legacy) SetCycle(cycle uint32) {
	l.cycle = cycle
}

func (l *legacy) Poke32(address uint32, value uint32) {
	l.calls = append(l.calls, fmt.Sprintf("poke %08x %08x", address, value))
}

type console []string

func (c *console) Line(s string) {
	*c = append(*c, s)
}

// tracer records the width of every traced write
type tracer []bus.Width

func (t *tracer) Trace(width bus.Width, _ uint32, _ bus.Quadword, _ bool) {
	*t = append(*t, width)
}

type fixedPeeker uint32

func (p fixedPeeker) Peek32(_ uint32) uint32 {
	return uint32(p)
}

// machine is a Memory instance connected to recording fakes
type machine struct {
	mem *memory.Memory

	timers  *writer
	ipu     *ipu
	vif0    *writer
	vif1    *writer
	dmac    *writer
	gif     *gifUnit
	sched   *scheduler
	vif0In  *fifo
	vif1In  *fifo
	gifIn   *fifo
	ipuIn   *fifo
	intc    *intc
	legacy  *legacy
	console *console
	tracer  *tracer
}

func newMachine() *machine {
	m := &machine{
		timers:  &writer{},
		ipu:     &ipu{},
		vif0:    &writer{},
		vif1:    &writer{},
		dmac:    &writer{},
		gif:     &gifUnit{},
		sched:   &scheduler{},
		vif0In:  &fifo{},
		vif1In:  &fifo{},
		gifIn:   &fifo{},
		ipuIn:   &fifo{},
		intc:    &intc{},
		legacy:  &legacy{},
		console: &console{},
		tracer:  &tracer{},
	}

	m.mem = memory.NewMemory(nil, memory.Peripherals{
		Timers:    m.timers,
		IPU:       m.ipu,
		VIF:       [2]bus.RegisterWriter{m.vif0, m.vif1},
		DMAC:      m.dmac,
		GIF:       m.gif,
		Scheduler: m.sched,
		FIFO: memory.FIFOs{
			VIF0:  m.vif0In,
			VIF1:  m.vif1In,
			GIF:   m.gifIn,
			IPUin: m.ipuIn,
		},
		INTC:    m.intc,
		Legacy:  m.legacy,
		Console: m.console,
		Tracer:  m.tracer,
	})

	// the serial line buffer is process wide
	m.mem.Reset()

	return m
}
