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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/test"
)

func TestQuadwordLanes(t *testing.T) {
	for lane := 0; lane < 4; lane++ {
		q := bus.QuadwordFrom32(lane, 0xdeadbeef)
		for l := 0; l < 4; l++ {
			if l == lane {
				test.ExpectEquality(t, q.Word(l), 0xdeadbeef, lane)
			} else {
				test.ExpectEquality(t, q.Word(l), 0, lane)
			}
		}
	}
}

func TestQuadwordHalves(t *testing.T) {
	q := bus.QuadwordFrom64(0, 0x1122334455667788)
	test.ExpectEquality(t, q, bus.Quadword{Lo: 0x1122334455667788})
	q = bus.QuadwordFrom64(1, 0x1122334455667788)
	test.ExpectEquality(t, q, bus.Quadword{Hi: 0x1122334455667788})
	test.ExpectEquality(t, q.Word(3), 0x11223344)
	test.ExpectEquality(t, q.String(), "11223344556677880000000000000000")
}
