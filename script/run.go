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

package script

import (
	"fmt"
	"io"

	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/pkg/errors"
)

// Bus is the register bus a script is run against.
type Bus interface {
	bus.DebugBus
	Write8(address uint32, value uint8)
	Write16(address uint32, value uint16)
	Write32(address uint32, value uint32)
	Write64(address uint32, value uint64)
	Write128(address uint32, value bus.Quadword)
	Reset()
}

// Run the commands against the bus. The result of every peek command is
// written to output.
func Run(b Bus, cmds []Command, output io.Writer) error {
	for _, c := range cmds {
		switch c.Op {
		case W8:
			b.Write8(c.Address, uint8(c.Value.Lo))
		case W16:
			b.Write16(c.Address, uint16(c.Value.Lo))
		case W32:
			b.Write32(c.Address, uint32(c.Value.Lo))
		case W64:
			b.Write64(c.Address, c.Value.Lo)
		case W128:
			b.Write128(c.Address, c.Value)
		case Reset:
			b.Reset()
		case Peek:
			v, err := b.Peek(c.Address)
			if err != nil {
				return errors.Wrapf(err, "line %d", c.Line)
			}
			fmt.Fprintf(output, "%08x = %08x\n", c.Address, v)
		}
	}
	return nil
}
