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

package hwregs

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/eehw/curated"
	"github.com/lunixbochs/struc"
)

// StateError is the pattern of all errors returned by Save() and Load().
const StateError = "hwregs: state: %v"

const (
	stateMagic   = "EEHW"
	stateVersion = 1
)

// state is the on-disk layout of the backing store.
type state struct {
	Magic   []byte `struc:"[4]byte"`
	Version uint16
	Size    int    `struc:"uint32,sizeof=Data"`
	Data    []byte
}

// stateHeader is the part of state that precedes the data. The data is not
// read until the header has been checked.
type stateHeader struct {
	Magic   []byte `struc:"[4]byte"`
	Version uint16
	Size    uint32
}

// Save writes the contents of the backing store to io.Writer.
func (r *Registers) Save(w io.Writer) error {
	s := state{
		Magic:   []byte(stateMagic),
		Version: stateVersion,
		Data:    r.data,
	}
	if err := struc.PackWithOrder(w, &s, binary.LittleEndian); err != nil {
		return curated.Errorf(StateError, err)
	}
	return nil
}

// Load replaces the contents of the backing store with data previously
// written by Save(). The backing store is unchanged if an error is returned.
func (r *Registers) Load(rd io.Reader) error {
	var h stateHeader
	if err := struc.UnpackWithOrder(rd, &h, binary.LittleEndian); err != nil {
		return curated.Errorf(StateError, err)
	}
	if string(h.Magic) != stateMagic {
		return curated.Errorf(StateError, "bad magic")
	}
	if h.Version != stateVersion {
		return curated.Errorf(StateError, "unsupported version")
	}
	if int(h.Size) != len(r.data) {
		return curated.Errorf(StateError, "wrong size")
	}

	data := make([]byte, len(r.data))
	if _, err := io.ReadFull(rd, data); err != nil {
		return curated.Errorf(StateError, err)
	}
	copy(r.data, data)
	return nil
}
