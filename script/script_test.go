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

package script_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/eehw/hardware/memory"
	"github.com/jetsetilly/eehw/hardware/memory/bus"
	"github.com/jetsetilly/eehw/script"
	"github.com/jetsetilly/eehw/test"
	"github.com/pkg/errors"
)

const example = `
# interrupt mask
w32 1000f010 00000003

w8   1000e030 aa    # merged
w16  1000e032 beef
w64  1000e040 1122334455667788
w128 10006000 0000000000000001 0000000000000002
peek 1000f010
peek 1000e030
reset
peek 1000e030
`

func TestParse(t *testing.T) {
	cmds, err := script.Parse(strings.NewReader(example))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(cmds), 9)

	test.ExpectEquality(t, cmds[0], script.Command{Line: 3, Op: script.W32, Address: 0x1000f010, Value: bus.Quadword{Lo: 3}})
	test.ExpectEquality(t, cmds[1].Line, 5)
	test.ExpectEquality(t, cmds[1].Value.Lo, 0xaa)
	test.ExpectEquality(t, cmds[4].Value, bus.Quadword{Hi: 1, Lo: 2})
	test.ExpectEquality(t, cmds[5].Op, script.Peek)
	test.ExpectEquality(t, cmds[7].Op, script.Reset)

	test.ExpectEquality(t, cmds[4].String(), "w128 10006000 0000000000000001 0000000000000002")
	test.ExpectEquality(t, cmds[1].String(), "w8 1000e030 aa")
}

func TestParseErrors(t *testing.T) {
	_, err := script.Parse(strings.NewReader("w32 10000000 1\nfoo 10000000"))
	test.ExpectEquality(t, errors.Cause(err), script.ErrUnknownCommand)
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "line 2: "))

	_, err = script.Parse(strings.NewReader("w32 10000000"))
	test.ExpectEquality(t, errors.Cause(err), script.ErrArguments)

	_, err = script.Parse(strings.NewReader("w32 10000002 1"))
	test.ExpectEquality(t, errors.Cause(err), script.ErrAlignment)

	_, err = script.Parse(strings.NewReader("w128 10006008 1 1"))
	test.ExpectEquality(t, errors.Cause(err), script.ErrAlignment)

	_, err = script.Parse(strings.NewReader("w32 20000000 1"))
	test.ExpectEquality(t, errors.Cause(err), script.ErrAddressRange)

	_, err = script.Parse(strings.NewReader("peek 0ffffffc"))
	test.ExpectEquality(t, errors.Cause(err), script.ErrAddressRange)

	_, err = script.Parse(strings.NewReader("w8 10000000 100"))
	test.ExpectFailure(t, err)

	_, err = script.Parse(strings.NewReader("w32 0x10000000 1"))
	test.ExpectFailure(t, err)
}

func TestRun(t *testing.T) {
	cmds, err := script.Parse(strings.NewReader(example))
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(nil, memory.Peripherals{})
	out := &test.CompareWriter{}
	test.DemandSuccess(t, script.Run(mem, cmds, out))

	expected := "1000f010 = 00000003\n" +
		"1000e030 = beef00aa\n" +
		"1000e030 = 00000000\n"
	test.ExpectEquality(t, out.String(), expected)
}

func TestRunPeekError(t *testing.T) {
	mem := memory.NewMemory(nil, memory.Peripherals{})
	cmds := []script.Command{{Line: 7, Op: script.Peek, Address: 0x10000001}}
	err := script.Run(mem, cmds, &test.CompareWriter{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "line 7: "))
}
