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

package memory

import (
	"fmt"

	"github.com/jetsetilly/eehw/hardware/memory/addresses"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/logger"
)

// traceLog is the default bus.Tracer. Writes are noted in the central log if
// the permission allows it.
type traceLog struct {
	perm logger.Permission
}

func (t traceLog) Trace(width bus.Width, address uint32, value bus.Quadword, read bool) {
	if !t.perm.AllowLogging() {
		return
	}

	op := "write"
	if read {
		op = "read"
	}

	logger.Logf(logger.Allow, "EE HW", "%s%d %s = %s", op, width, addresses.Symbol(address), FormatValue(width, value))
}

// FormatValue returns the value as a hexadecimal string with the number of
// digits appropriate for the width.
func FormatValue(width bus.Width, value bus.Quadword) string {
	if width == bus.Width128 {
		return value.String()
	}
	return fmt.Sprintf("%0*x", int(width)/4, value.Lo)
}
