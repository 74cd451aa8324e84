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

// Package modalflag wraps the flag package from the standard library and adds
// program modes. Each mode has its own set of flags and can itself have
// sub-modes.
//
// Arguments are given to NewArgs() and then parsed in layers with Parse().
// Before each call to Parse() the flags and sub-modes for that layer are
// added. For example, a program with a default RUN mode and a SUMMARY mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SUMMARY")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "trace writes")
//		...
//	}
//
// The first sub-mode is the default and is selected if the first argument
// is not the name of a sub-mode. Sub-mode names are not case sensitive.
//
// Help is printed to the Output writer when the -help or -h flag is given.
// The help lists the flags and the sub-modes of the current layer.
package modalflag
