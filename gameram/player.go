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

// Player identifies one of the two players.
type Player int

// List of valid Player values. Any other value is treated as Player1 by the
// SetPlayer() function.
const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return fmt.Sprintf("player %d (unknown)", int(p))
}

// Other returns the player that is not p.
func (p Player) Other() Player {
	if p == Player2 {
		return Player1
	}
	return Player2
}

// ErrPlayer is returned by ParsePlayer() for a number that is not a player.
var ErrPlayer = errors.New("not a player")

// ParsePlayer converts a number from the user (a command line argument or a
// prefs value) to a Player.
func ParsePlayer(n int) (Player, error) {
	switch Player(n) {
	case Player1, Player2:
		return Player(n), nil
	}
	return Player1, fmt.Errorf("gameram: %w: %d", ErrPlayer, n)
}

// ActivePlayer returns the player whose state is in the live range.
func (ram *GameRAM) ActivePlayer() Player {
	if ram.player2 {
		return Player2
	}
	return Player1
}

func (ram *GameRAM) activeSlot() *[SlotSize]uint8 {
	if ram.player2 {
		return &ram.slots[1]
	}
	return &ram.slots[0]
}

// copy live range to slot of the active player
func (ram *GameRAM) copyOut() {
	copy(ram.activeSlot()[:], ram.mem[LiveOrigin:LiveMemtop+1])
}

// copy slot of the active player to the live range
func (ram *GameRAM) copyIn() {
	copy(ram.mem[LiveOrigin:LiveMemtop+1], ram.activeSlot()[:])
}

// SetPlayer makes p the active player. The state of the outgoing player is
// saved first. Selecting the player that is already active is not a special
// case: the live range is saved and then restored from the same slot.
func (ram *GameRAM) SetPlayer(p Player) {
	assert.SameGoroutine(ram.owner)
	ram.copyOut()
	ram.player2 = p == Player2
	ram.copyIn()
}

// TogglePlayer makes the other player the active player.
func (ram *GameRAM) TogglePlayer() {
	assert.SameGoroutine(ram.owner)
	ram.copyOut()
	ram.player2 = !ram.player2
	ram.copyIn()
}

// ResetPlayerStates copies the live range into both slots. The active player
// does not change. Used at startup so that the inactive slot does not contain
// stale data.
func (ram *GameRAM) ResetPlayerStates() {
	assert.SameGoroutine(ram.owner)
	ram.copyOut()
	ram.player2 = !ram.player2
	ram.copyOut()
	ram.player2 = !ram.player2
}

// Slot returns a copy of the slot for the player. The slot for the active
// player is only as recent as the last switch or snapshot.
func (ram *GameRAM) Slot(p Player) [SlotSize]uint8 {
	if p == Player2 {
		return ram.slots[1]
	}
	return ram.slots[0]
}

// SwitchPlayer toggles the active player of ram. It is the entry point used by
// the input handler and the overlay menu.
func SwitchPlayer(ram *GameRAM) Player {
	ram.TogglePlayer()
	return ram.ActivePlayer()
}
