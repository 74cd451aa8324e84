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

package bus

import "fmt"

// Quadword is a 128bit value. Lo holds the least significant 64 bits.
type Quadword struct {
	Lo uint64
	Hi uint64
}

// QuadwordFrom32 returns a zero filled quadword with the value placed in the
// 32bit lane. Lane zero is the least significant.
func QuadwordFrom32(lane int, value uint32) Quadword {
	var q Quadword
	switch lane & 0x03 {
	case 0:
		q.Lo = uint64(value)
	case 1:
		q.Lo = uint64(value) << 32
	case 2:
		q.Hi = uint64(value)
	case 3:
		q.Hi = uint64(value) << 32
	}
	return q
}

// QuadwordFrom64 returns a zero filled quadword with the value placed in the
// 64bit half. Half zero is the least significant.
func QuadwordFrom64(half int, value uint64) Quadword {
	if half&0x01 == 0 {
		return Quadword{Lo: value}
	}
	return Quadword{Hi: value}
}

// Word returns the 32bit lane of the quadword.
func (q Quadword) Word(lane int) uint32 {
	switch lane & 0x03 {
	case 0:
		return uint32(q.Lo)
	case 1:
		return uint32(q.Lo >> 32)
	case 2:
		return uint32(q.Hi)
	}
	return uint32(q.Hi >> 32)
}

func (q Quadword) String() string {
	return fmt.Sprintf("%016x%016x", q.Hi, q.Lo)
}
