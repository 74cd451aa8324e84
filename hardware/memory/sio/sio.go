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

package sio

import (
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/logger"
	"golang.org/x/text/encoding/japanese"
)

// Capacity is the size of the line buffer. A line is flushed when it reaches
// one less than this number of bytes.
const Capacity = 1024

// the line buffer
var line struct {
	buf [Capacity]byte
	n   int

	// the last byte was a carriage return. newline bytes that follow are
	// ignored
	includedNewline bool
}

// logConsole is the default console. it notes every line in the central log
type logConsole struct{}

func (logConsole) Line(s string) {
	logger.Log(logger.Allow, "SIO", s)
}

var console bus.Console = logConsole{}

// SetConsole changes where completed lines are sent. A nil value restores
// the default console, which writes to the central log.
func SetConsole(c bus.Console) {
	if c == nil {
		c = logConsole{}
	}
	console = c
}

// Reset empties the line buffer without flushing.
func Reset() {
	line.n = 0
	line.includedNewline = false
}

// Pending returns the number of bytes waiting in the line buffer.
func Pending() int {
	return line.n
}

// Transmit adds a byte to the line buffer.
func Transmit(b uint8) {
	if b == '\r' {
		line.buf[line.n] = '\n'
		line.n++
		line.includedNewline = true
	} else if !line.includedNewline || b != '\n' {
		line.includedNewline = false
		line.buf[line.n] = b
		line.n++
	}

	if line.n == Capacity-1 || (line.n > 0 && line.buf[line.n-1] == '\n') {
		flush()
	}
}

func flush() {
	b := line.buf[:line.n]
	line.n = 0

	s, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		logger.Log(logger.Allow, "SIO", err)
		console.Line(string(b))
		return
	}
	console.Line(string(s))
}
