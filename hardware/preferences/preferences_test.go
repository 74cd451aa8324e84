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

package preferences_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/eehw/hardware/preferences"
	"github.com/jetsetilly/eehw/prefs"
	"github.com/jetsetilly/eehw/test"
)

func TestPreferences(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	// defaults
	test.ExpectFailure(t, p.TraceWrites.AllowLogging())
	test.ExpectSuccess(t, p.SubwordWarnings.AllowLogging())
	test.ExpectFailure(t, p.SIOEcho.Get().(bool))

	test.ExpectSuccess(t, p.TraceWrites.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.TraceWrites.AllowLogging())

	// command line overrides the saved value
	prefs.PushCommandLineStack("hardware.ee.trace::false")
	r, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, r.TraceWrites.AllowLogging())
	prefs.PopCommandLineStack()
}
