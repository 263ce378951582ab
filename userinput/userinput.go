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

package userinput

import (
	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/remap"
)

// HandleInput conceptualises buttons being sent to the game.
type HandleInput interface {
	// HandleButton forwards the button state to the game for the player.
	HandleButton(player gameram.Player, b remap.Button, down bool) error
}

// StateSlots is the save state system as used by the hotkeys.
type StateSlots interface {
	SaveSlot(slot int) error
	LoadSlot(slot int) error
}
