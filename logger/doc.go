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

// Package logger is the central log for the emulation. Register writes that
// are unusual (sub-word writes to status registers, GIF resets, legacy
// processor resets) are noted here rather than being returned as errors
// because the write path has no error return.
//
// Log entries have a tag and a detail string. Adjacent entries with the same
// tag and detail are collapsed and a repeat count is kept instead:
//
//	EE HW: 8bit write to INTC_STAT (1000f000) value 04 (repeat x3)
//
// The Permission interface controls whether a log entry is made. The Allow
// value should be used if the entry should always be made. The hardware
// preferences implement Permission for those categories of log entry that
// the user can turn off.
package logger
