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

package gameram

import (
	"errors"
	"fmt"

	"github.com/zelda3mp/zelda3mp/assert"
)

// SnapshotSize is the number of bytes in a Snapshot.
const SnapshotSize = SlotSize*2 + 1

// Snapshot is the external form of the player state. The layout is fixed:
//
//	[0, SlotSize)            player one slot
//	[SlotSize, SlotSize*2)   player two slot
//	[SlotSize*2]             active player. zero for player one, any other
//	                         value for player two
type Snapshot [SnapshotSize]uint8

// the index of the active player byte in the snapshot
const snapshotFlag = SlotSize * 2

// ErrSnapshotSize is returned by SnapshotFromBytes() when the data is the wrong
// size.
var ErrSnapshotSize = errors.New("wrong snapshot size")

// SnapshotFromBytes checks that the data is the correct size and converts it to
// a Snapshot.
func SnapshotFromBytes(b []byte) (Snapshot, error) {
	var s Snapshot
	if len(b) != SnapshotSize {
		return s, fmt.Errorf("gameram: %w: %d bytes", ErrSnapshotSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// ActivePlayer returns the player that was active when the snapshot was made.
func (s Snapshot) ActivePlayer() Player {
	if s[snapshotFlag] != 0 {
		return Player2
	}
	return Player1
}

// Slot returns the part of the snapshot for the player.
func (s Snapshot) Slot(p Player) []uint8 {
	if p == Player2 {
		return s[SlotSize:snapshotFlag]
	}
	return s[:SlotSize]
}

func (s Snapshot) String() string {
	return fmt.Sprintf("active: %s", s.ActivePlayer())
}

// Snapshot returns the current player state. The slot of the active player is
// brought up to date first.
func (ram *GameRAM) Snapshot() Snapshot {
	assert.SameGoroutine(ram.owner)
	ram.copyOut()

	var s Snapshot
	copy(s[:SlotSize], ram.slots[0][:])
	copy(s[SlotSize:snapshotFlag], ram.slots[1][:])
	if ram.player2 {
		s[snapshotFlag] = 1
	}
	return s
}

// LoadSnapshot replaces both slots and the active player with the contents of
// the snapshot. The slot of the new active player is copied to the live range.
func (ram *GameRAM) LoadSnapshot(s Snapshot) {
	assert.SameGoroutine(ram.owner)
	copy(ram.slots[0][:], s[:SlotSize])
	copy(ram.slots[1][:], s[SlotSize:snapshotFlag])
	ram.player2 = s[snapshotFlag] != 0
	ram.copyIn()
}
