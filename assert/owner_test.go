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

package assert

import (
	"testing"

	"github.com/jetsetilly/eehw/test"
)

func TestGoRoutineID(t *testing.T) {
	id := GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestOwner(t *testing.T) {
	var o Owner

	o.check("test", 10)
	o.check("test", 10)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	o.check("test", 11)
}

func TestOwnerRelease(t *testing.T) {
	var o Owner

	o.check("test", 10)
	o.Release()
	o.check("test", 11)
}
