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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/hardware/memory/memorymap"
	"github.com/pkg/errors"
)

// Op is a script operation.
type Op int

// List of valid Op values.
const (
	W8 Op = iota
	W16
	W32
	W64
	W128
	Peek
	Reset
)

func (op Op) String() string {
	switch op {
	case W8:
		return "w8"
	case W16:
		return "w16"
	case W32:
		return "w32"
	case W64:
		return "w64"
	case W128:
		return "w128"
	case Peek:
		return "peek"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// the number of arguments and the width in bits of the value argument of each
// operation
var opFormat = map[string]struct {
	op    Op
	args  int
	width int
}{
	"w8":    {op: W8, args: 2, width: 8},
	"w16":   {op: W16, args: 2, width: 16},
	"w32":   {op: W32, args: 2, width: 32},
	"w64":   {op: W64, args: 2, width: 64},
	"w128":  {op: W128, args: 3, width: 64},
	"peek":  {op: Peek, args: 1},
	"reset": {op: Reset, args: 0},
}

// Sentinel errors returned as the cause of a Parse() error.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
	ErrAlignment      = errors.New("address not aligned")
	ErrAddressRange   = errors.New("address outside register window")
)

// Command is a single parsed line of a script.
type Command struct {
	Line    int
	Op      Op
	Address uint32
	Value   bus.Quadword
}

func (c Command) String() string {
	switch c.Op {
	case Reset:
		return c.Op.String()
	case Peek:
		return fmt.Sprintf("%s %08x", c.Op, c.Address)
	case W128:
		return fmt.Sprintf("%s %08x %016x %016x", c.Op, c.Address, c.Value.Hi, c.Value.Lo)
	}
	return fmt.Sprintf("%s %08x %x", c.Op, c.Address, c.Value.Lo)
}

// Parse a script.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s := scanner.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}

		fields := strings.Fields(s)
		if len(fields) == 0 {
			continue
		}

		cmd, err := parseCommand(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "script")
	}

	return cmds, nil
}

func parseCommand(fields []string) (Command, error) {
	var cmd Command

	format, ok := opFormat[strings.ToLower(fields[0])]
	if !ok {
		return cmd, errors.WithMessage(ErrUnknownCommand, fields[0])
	}
	cmd.Op = format.op

	if len(fields)-1 != format.args {
		return cmd, errors.WithMessagef(ErrArguments, "%s takes %d", cmd.Op, format.args)
	}

	if format.args == 0 {
		return cmd, nil
	}

	a, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return cmd, errors.Wrap(err, "address")
	}
	cmd.Address = uint32(a)

	if cmd.Address < memorymap.Origin || cmd.Address > memorymap.Memtop {
		return cmd, errors.WithMessagef(ErrAddressRange, "%08x", cmd.Address)
	}

	align := uint32(4)
	if format.width > 0 {
		align = uint32(format.width / 8)
	}
	if cmd.Op == W128 {
		align = 16
	}
	if cmd.Address%align != 0 {
		return cmd, errors.WithMessagef(ErrAlignment, "%08x", cmd.Address)
	}

	if format.args == 1 {
		return cmd, nil
	}

	cmd.Value.Lo, err = strconv.ParseUint(fields[len(fields)-1], 16, format.width)
	if err != nil {
		return cmd, errors.Wrap(err, "value")
	}

	if cmd.Op == W128 {
		cmd.Value.Hi, err = strconv.ParseUint(fields[2], 16, 64)
		if err != nil {
			return cmd, errors.Wrap(err, "value")
		}
	}

	return cmd, nil
}
