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

package memorymap

import "fmt"

// The origin and memory top of the hardware register window. Addresses
// outside the first 64KiB of register space never reach the memory package.
const (
	Origin = uint32(0x10000000)
	Memtop = uint32(0x1000ffff)
)

// Mask reduces a register address to an offset in the register backing
// store. Used as (address & Mask) rather than subtraction.
const Mask = uint32(0xffff)

// PhysicalMask removes the segment bits from a virtual address.
const PhysicalMask = uint32(0x1fffffff)

// Page identifies one of the sixteen 4KiB pages of the register window.
type Page uint8

// NumPages is the number of pages in the register window.
const NumPages = 16

// List of pages in the register window.
const (
	Timer0  Page = 0x00
	Timer1  Page = 0x01
	IPU     Page = 0x02
	GIFVIF  Page = 0x03
	VIF0In  Page = 0x04
	VIF1In  Page = 0x05
	GIFIn   Page = 0x06
	IPUFIFO Page = 0x07
	DMAVIF0 Page = 0x08
	DMAVIF1 Page = 0x09
	DMAGIF  Page = 0x0a
	DMAIPU  Page = 0x0b
	DMASIF  Page = 0x0c
	DMASPR  Page = 0x0d
	DMAC    Page = 0x0e
	SubBus  Page = 0x0f
)

func (p Page) String() string {
	switch p {
	case Timer0, Timer1:
		return "Timers"
	case IPU:
		return "IPU"
	case GIFVIF:
		return "GIF/VIF"
	case VIF0In:
		return "VIF0 FIFO"
	case VIF1In:
		return "VIF1 FIFO"
	case GIFIn:
		return "GIF FIFO"
	case IPUFIFO:
		return "IPU FIFO"
	case DMAVIF0, DMAVIF1, DMAGIF, DMAIPU, DMASIF, DMASPR:
		return "DMA channels"
	case DMAC:
		return "DMAC"
	case SubBus:
		return "Sub-bus"
	}
	return "undefined"
}

// IsFIFO returns true if the page is a window onto a write queue rather than
// a page of registers.
func (p Page) IsFIFO() bool {
	return p >= VIF0In && p <= IPUFIFO
}

// IsDMA returns true if the page is handled by the DMA controller.
func (p Page) IsDMA() bool {
	return p >= DMAVIF0 && p <= DMAC
}

// PageOf returns the page of the register window that the address belongs to.
func PageOf(address uint32) Page {
	return Page((address >> 12) & 0x0f)
}

// Index returns the dispatch index of an address within a page. Bits 4 to 11
// of the address are shifted into the lower eight bits.
func Index(address uint32) uint8 {
	return uint8(address >> 4)
}

// Range is a span of addresses.
type Range struct {
	Start  uint32
	Length uint32
}

// Contains returns true if the address is in the range.
func (r Range) Contains(address uint32) bool {
	return address >= r.Start && address-r.Start < r.Length
}

func (r Range) String() string {
	return fmt.Sprintf("%08x -> %08x", r.Start, r.Start+r.Length-1)
}

// Legacy is the range of physical addresses in the sub-bus page that are
// forwarded to the legacy co-processor's bus.
var Legacy = Range{Start: 0x1000f300, Length: 0x100}

// InLegacy returns true if the address, once reduced to a physical address,
// is in the Legacy range.
func InLegacy(address uint32) bool {
	return Legacy.Contains(address & PhysicalMask)
}

// The windows of the two vector interface units in the GIF/VIF page.
// Addresses in the page at or above VIF0Start belong to VIF0, and those at or
// above VIF1Start belong to VIF1.
const (
	VIF0Start = uint32(0x10003800)
	VIF1Start = uint32(0x10003c00)
)
