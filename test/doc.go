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

// Package test bundles helper functions useful for testing purposes,
// particularly useful in conjunction with the standard go test harness.
//
// The Expect functions report a test failure but allow the test to continue.
// The Demand functions stop the test immediately. Demand functions should be
// used when the value being tested is used in further tests and so must be
// correct.
//
// ExpectSuccess and ExpectFailure test for success and failure under generic
// conditions. The documentation for those functions describe the currently
// supported types.
//
// It is worth describing how the success and failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output.
package test
