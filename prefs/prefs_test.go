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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/eehw/curated"
	"github.com/jetsetilly/eehw/prefs"
	"github.com/jetsetilly/eehw/test"
)

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1.0))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// Bool values are logging permissions
	test.ExpectSuccess(t, v.AllowLogging())
	test.ExpectFailure(t, w.AllowLogging())
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &i))
	test.ExpectSuccess(t, dsk.Add("name", &s))

	test.ExpectSuccess(t, i.Set("0x10"))
	test.ExpectEquality(t, i.Get().(int), 16)
	test.ExpectFailure(t, i.Set("foo"))
	test.ExpectSuccess(t, s.Set("SIO"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "name :: SIO\nnumber :: 16\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("hardware.ee.trace", &v))

	// missing file is a curated error but not fatal
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)

	// command line takes precedence
	prefs.PushCommandLineStack("hardware.ee.trace::false")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestUnknownEntriesPreserved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	err := os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\nother :: 10\n"), 0600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("mine", &v))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "mine :: false\nother :: 10\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var called bool
	v.SetHookPost(func(value prefs.Value) error {
		called = value.(bool)
		return nil
	})
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, called)

	v.SetHookPre(func(value prefs.Value) error {
		return fmt.Errorf("refused")
	})
	test.ExpectFailure(t, v.Set(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}
