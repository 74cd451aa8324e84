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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/eehw/resources"
	"github.com/jetsetilly/eehw/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))

	p, err := resources.JoinPath("sub", "preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".eehw", "sub", "preferences"))

	// directory has been created but not the file
	_, err = os.Stat(filepath.Join(dir, ".eehw", "sub"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, ".eehw", "sub", "preferences"))
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
