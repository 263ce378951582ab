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

package staterecorder_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/staterecorder"
	"github.com/zelda3mp/zelda3mp/test"
)

// prepare a GameRAM with different states for each player
func prepareRAM() *gameram.GameRAM {
	ram := gameram.NewGameRAM()
	ram.Write(0x30, 0x01)
	ram.Write(0x1000, 0xee)
	ram.SetPlayer(gameram.Player2)
	ram.Write(0x30, 0x02)
	return ram
}

func TestSaveLoad(t *testing.T) {
	ram := prepareRAM()

	var b bytes.Buffer
	test.DemandSuccess(t, staterecorder.Save(&b, ram))

	other := gameram.NewGameRAM()
	test.DemandSuccess(t, staterecorder.Load(bytes.NewReader(b.Bytes()), other))
	test.ExpectEquality(t, other.ActivePlayer(), gameram.Player2)
	test.ExpectEquality(t, other.Read(0x30), 0x02)
	test.ExpectEquality(t, other.Read(0x1000), 0xee)
	test.ExpectEquality(t, other.Snapshot(), ram.Snapshot())

	other.SetPlayer(gameram.Player1)
	test.ExpectEquality(t, other.Read(0x30), 0x01)
}

func TestFormat(t *testing.T) {
	ram := prepareRAM()

	var b bytes.Buffer
	test.DemandSuccess(t, staterecorder.Save(&b, ram))

	data := b.Bytes()
	test.DemandEquality(t, len(data), 5+8+gameram.MemorySize+8+gameram.SnapshotSize)
	test.ExpectEquality(t, string(data[:4]), "Z3MP")
	test.ExpectEquality(t, data[4], 1)
	test.ExpectEquality(t, string(data[5:9]), "RAM ")
	test.ExpectEquality(t, binary.LittleEndian.Uint32(data[9:13]), uint32(gameram.MemorySize))

	p := 13 + gameram.MemorySize
	test.ExpectEquality(t, string(data[p:p+4]), "PLYR")
	test.ExpectEquality(t, binary.LittleEndian.Uint32(data[p+4:p+8]), uint32(gameram.SnapshotSize))

	// last byte is the active player
	test.ExpectEquality(t, data[len(data)-1], 1)
}

func TestUnknownSection(t *testing.T) {
	ram := prepareRAM()

	var b bytes.Buffer
	test.DemandSuccess(t, staterecorder.Save(&b, ram))

	// add an unknown section to the end of the file
	b.WriteString("XTRA")
	binary.Write(&b, binary.LittleEndian, uint32(3))
	b.Write([]byte{1, 2, 3})

	other := gameram.NewGameRAM()
	test.ExpectSuccess(t, staterecorder.Load(&b, other))
	test.ExpectEquality(t, other.Read(0x30), 0x02)
}

func TestBadFiles(t *testing.T) {
	ram := prepareRAM()

	var b bytes.Buffer
	test.DemandSuccess(t, staterecorder.Save(&b, ram))
	good := b.Bytes()

	bad := map[string][]byte{
		"empty":     {},
		"magic":     append([]byte("Z3MQ"), good[4:]...),
		"version":   append(append([]byte("Z3MP"), 99), good[5:]...),
		"truncated": good[:len(good)-1],
		"header":    good[:5+4],
		"no player": good[:5+8+gameram.MemorySize],
	}

	for name, data := range bad {
		other := gameram.NewGameRAM()
		other.Write(0x30, 0x77)

		err := staterecorder.Load(bytes.NewReader(data), other)
		test.ExpectSuccess(t, errors.Is(err, staterecorder.ErrNotStateFile), name)

		// ram is not changed by a failed load
		test.ExpectEquality(t, other.Read(0x30), 0x77, name)
		test.ExpectEquality(t, other.ActivePlayer(), gameram.Player1, name)
	}
}

func TestInspect(t *testing.T) {
	ram := prepareRAM()

	var b bytes.Buffer
	test.DemandSuccess(t, staterecorder.Save(&b, ram))

	inf, err := staterecorder.Inspect(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, inf.Version, 1)
	test.ExpectEquality(t, inf.Snapshot.ActivePlayer(), gameram.Player2)
	test.ExpectEquality(t, inf.Snapshot.Slot(gameram.Player1)[0x30-gameram.LiveOrigin], 0x01)
	test.ExpectSuccess(t, strings.Contains(inf.String(), "player 2"))
}

func TestRecorder(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ZELDA3MP_CONFIG", base)

	ram := prepareRAM()
	rec := staterecorder.NewRecorder(ram)

	test.DemandSuccess(t, rec.SaveSlot(3))
	_, err := os.Stat(filepath.Join(base, "states", "slot3.z3s"))
	test.ExpectSuccess(t, err)

	// change the state and then restore it from the slot
	ram.Write(0x30, 0x99)
	ram.SetPlayer(gameram.Player1)
	test.DemandSuccess(t, rec.LoadSlot(3))
	test.ExpectEquality(t, ram.ActivePlayer(), gameram.Player2)
	test.ExpectEquality(t, ram.Read(0x30), 0x02)

	// empty slot
	test.ExpectFailure(t, rec.LoadSlot(4))

	// out of range slots
	test.ExpectSuccess(t, errors.Is(rec.SaveSlot(0), staterecorder.ErrSlot))
	test.ExpectSuccess(t, errors.Is(rec.LoadSlot(staterecorder.LastSlot+1), staterecorder.ErrSlot))

	pth, err := rec.Export()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, filepath.Dir(pth), filepath.Join(base, "states"))
	test.ExpectEquality(t, filepath.Ext(pth), staterecorder.Extension)
}
