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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/jetsetilly/eehw/test"
)

func TestSymbol(t *testing.T) {
	test.ExpectEquality(t, addresses.Symbol(addresses.INTC_STAT), "INTC_STAT")
	test.ExpectEquality(t, addresses.Symbol(0x1000f410), "1000f410")
}

// every named register must be inside the register window and named
// registers in the sub-bus page must have unique dispatch indexes
func TestSymbolAddresses(t *testing.T) {
	indexes := make(map[uint8]string)
	for a, s := range addresses.Symbols {
		test.ExpectSuccess(t, a >= memorymap.Origin && a <= memorymap.Memtop, s)
		if memorymap.PageOf(a) == memorymap.SubBus {
			i := memorymap.Index(a)
			if o, ok := indexes[i]; ok {
				t.Errorf("%s and %s share dispatch index %02x", s, o, i)
			}
			indexes[i] = s
		}
	}
}
