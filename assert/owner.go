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
	"fmt"
	"sync/atomic"
)

// Owner records the goroutine that first used a resource. Resources that must
// only ever be used from a single goroutine can embed an Owner and call
// Check() on entry to every public function.
type Owner struct {
	id atomic.Uint64
}

// Check panics if it is called from a goroutine other than the goroutine of
// the first call. Check does nothing unless the assertions build tag is
// present.
func (o *Owner) Check(resource string) {
	if !Enabled {
		return
	}
	o.check(resource, GetGoRoutineID())
}

func (o *Owner) check(resource string, id uint64) {
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if owner := o.id.Load(); owner != id {
		panic(fmt.Sprintf("%s: used by goroutine %d but owned by goroutine %d", resource, id, owner))
	}
}

// Release forgets the owning goroutine. The next call to Check() will set a
// new owner.
func (o *Owner) Release() {
	o.id.Store(0)
}
