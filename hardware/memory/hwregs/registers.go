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

package hwregs

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
)

// Registers is the register backing store.
type Registers struct {
	data []byte
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{
		data: make([]byte, memorymap.Mask+1),
	}
}

// Snapshot creates a copy of the backing store in its current state.
func (r *Registers) Snapshot() *Registers {
	n := *r
	n.data = make([]byte, len(r.data))
	copy(n.data, r.data)
	return &n
}

// Plumb the contents of another Registers instance into this one. The other
// instance is not changed.
func (r *Registers) Plumb(o *Registers) {
	copy(r.data, o.data)
}

// Reset contents of the backing store to zero.
func (r *Registers) Reset() {
	clear(r.data)
}

func (r *Registers) String() string {
	return hex.Dump(r.data)
}

// Read8 returns the byte at the address.
func (r *Registers) Read8(address uint32) uint8 {
	return r.data[address&memorymap.Mask]
}

// Read16 returns the 16bit value at the address. The address must be
// aligned.
func (r *Registers) Read16(address uint32) uint16 {
	a := address & memorymap.Mask
	return binary.LittleEndian.Uint16(r.data[a : a+2])
}

// Read32 returns the 32bit value at the address. The address must be
// aligned.
func (r *Registers) Read32(address uint32) uint32 {
	a := address & memorymap.Mask
	return binary.LittleEndian.Uint32(r.data[a : a+4])
}

// Read64 returns the 64bit value at the address. The address must be
// aligned.
func (r *Registers) Read64(address uint32) uint64 {
	a := address & memorymap.Mask
	return binary.LittleEndian.Uint64(r.data[a : a+8])
}

// Write32 stores the 32bit value at the address. The address must be
// aligned.
func (r *Registers) Write32(address uint32, value uint32) {
	a := address & memorymap.Mask
	binary.LittleEndian.PutUint32(r.data[a:a+4], value)
}

// Write64 stores the 64bit value at the address. The address must be
// aligned.
func (r *Registers) Write64(address uint32, value uint64) {
	a := address & memorymap.Mask
	binary.LittleEndian.PutUint64(r.data[a:a+8], value)
}

// Peek is an implementation of bus.DebugBus.
func (r *Registers) Peek(address uint32) (uint32, error) {
	if address&0x03 != 0 {
		return 0, fmt.Errorf("hwregs: unaligned peek (%08x)", address)
	}
	return r.Read32(address), nil
}

// Poke is an implementation of bus.DebugBus.
func (r *Registers) Poke(address uint32, value uint32) error {
	if address&0x03 != 0 {
		return fmt.Errorf("hwregs: unaligned poke (%08x)", address)
	}
	r.Write32(address, value)
	return nil
}
