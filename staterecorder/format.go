// This file is part of zelda3mp.
//
// zelda3mp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zelda3mp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zelda3mp.  If not, see <https://www.gnu.org/licenses/>.

package staterecorder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/zelda3mp/zelda3mp/gameram"
)

const (
	magic   = "Z3MP"
	version = 1
)

// section identifiers
const (
	sectionRAM    = "RAM "
	sectionPlayer = "PLYR"
)

// ErrNotStateFile is returned by Load() and Inspect() when the data is not a
// state file or is a state file that cannot be used.
var ErrNotStateFile = errors.New("not a state file")

// state is the decoded contents of a state file
type state struct {
	version  uint8
	mem      []byte
	snapshot gameram.Snapshot
}

func writeSection(w io.Writer, id string, data []byte) error {
	if _, err := io.WriteString(w, id); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// Save the state of ram to the writer.
func Save(w io.Writer, ram *gameram.GameRAM) error {
	// the snapshot brings the slot of the active player up to date with the
	// live memory
	s := ram.Snapshot()

	var b bytes.Buffer
	b.WriteString(magic)
	b.WriteByte(version)

	if err := writeSection(&b, sectionRAM, ram.Memory()); err != nil {
		return fmt.Errorf("staterecorder: %w", err)
	}
	if err := writeSection(&b, sectionPlayer, s[:]); err != nil {
		return fmt.Errorf("staterecorder: %w", err)
	}

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("staterecorder: %w", err)
	}

	return nil
}

// decode a state file. the data is checked completely before being returned
func decode(r io.Reader) (state, error) {
	var st state

	data, err := io.ReadAll(r)
	if err != nil {
		return st, fmt.Errorf("staterecorder: %w", err)
	}

	if len(data) < len(magic)+1 || string(data[:len(magic)]) != magic {
		return st, fmt.Errorf("staterecorder: %w: bad magic", ErrNotStateFile)
	}

	st.version = data[len(magic)]
	if st.version != version {
		return st, fmt.Errorf("staterecorder: %w: unsupported version %d", ErrNotStateFile, st.version)
	}

	data = data[len(magic)+1:]

	var havePlayer bool

	for len(data) > 0 {
		if len(data) < 8 {
			return st, fmt.Errorf("staterecorder: %w: truncated section header", ErrNotStateFile)
		}

		id := string(data[:4])
		n := binary.LittleEndian.Uint32(data[4:8])
		data = data[8:]

		if uint64(n) > uint64(len(data)) {
			return st, fmt.Errorf("staterecorder: %w: truncated %q section", ErrNotStateFile, id)
		}

		section := data[:n]
		data = data[n:]

		switch id {
		case sectionRAM:
			if len(section) != gameram.MemorySize {
				return st, fmt.Errorf("staterecorder: %w: %q section is %d bytes", ErrNotStateFile, id, len(section))
			}
			st.mem = section
		case sectionPlayer:
			st.snapshot, err = gameram.SnapshotFromBytes(section)
			if err != nil {
				return st, fmt.Errorf("staterecorder: %w: %w", ErrNotStateFile, err)
			}
			havePlayer = true
		}
	}

	if st.mem == nil {
		return st, fmt.Errorf("staterecorder: %w: no %q section", ErrNotStateFile, sectionRAM)
	}
	if !havePlayer {
		return st, fmt.Errorf("staterecorder: %w: no %q section", ErrNotStateFile, sectionPlayer)
	}

	return st, nil
}

// Load state from the reader into ram. The state is checked before ram is
// changed. If an error is returned then ram has not been changed.
func Load(r io.Reader, ram *gameram.GameRAM) error {
	st, err := decode(r)
	if err != nil {
		return err
	}

	copy(ram.Memory(), st.mem)
	ram.LoadSnapshot(st.snapshot)

	return nil
}

// Info is a summary of a state file.
type Info struct {
	Version  int
	Snapshot gameram.Snapshot
}

func (inf Info) String() string {
	return fmt.Sprintf("version %d, %s", inf.Version, inf.Snapshot)
}

// Inspect returns the summary of the state file in the reader.
func Inspect(r io.Reader) (Info, error) {
	st, err := decode(r)
	if err != nil {
		return Info{}, err
	}
	return Info{Version: int(st.version), Snapshot: st.snapshot}, nil
}
