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

// Package preferences holds the preferences for the emulated hardware. The
// preference values double as logging permissions for the categories of log
// entry that they control.
package preferences

import (
	"github.com/jetsetilly/eehw/curated"
	"github.com/jetsetilly/eehw/prefs"
	"github.com/jetsetilly/eehw/resources"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// every write to the register bus is reported to the tracing hook. if no
	// tracing hook has been supplied the write is noted in the central log
	TraceWrites prefs.Bool

	// log 8bit and 16bit writes to the registers that take shifted lanes
	// rather than a merged value
	SubwordWarnings prefs.Bool

	// echo flushed serial console lines to stdout
	SIOEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ee.trace", &p.TraceWrites)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ee.subwordWarnings", &p.SubwordWarnings)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ee.sioEcho", &p.SIOEcho)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.TraceWrites.Set(false)
	p.SubwordWarnings.Set(true)
	p.SIOEcho.Set(false)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
