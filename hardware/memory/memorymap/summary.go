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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the pages in the
// register window. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	var start uint32
	current := PageOf(Origin)

	for p := 1; p <= NumPages; p++ {
		a := Origin + uint32(p)<<12
		if p < NumPages && PageOf(a).String() == current.String() {
			continue
		}
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", Origin+start, a-1, current))
		start = a - Origin
		current = PageOf(a)
	}

	s.WriteString(fmt.Sprintf("%s\tLegacy sub-bus\n", Legacy))

	return s.String()
}
