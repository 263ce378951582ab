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

// Package gameram is the memory of the game with support for two players
// sharing a single memory image.
//
// The memory is a flat buffer of MemorySize bytes. The range LiveOrigin to
// LiveMemtop (inclusive) of the buffer holds the state of the player that is
// currently playing. Each player has a slot which holds a copy of that range.
// Switching player copies the live range out to the slot of the outgoing
// player and then copies the slot of the incoming player into the live range.
//
// Between switches the live range is the authority for the active player. The
// slot of the active player is only brought up to date by a switch or by a call
// to Snapshot().
//
// The Access(), Read() and Write() functions are the hot path and do not check
// the address. An address outside the buffer will cause a panic. Addresses
// that arrive from the user (via the overlay for example) should use the Peek()
// and Poke() functions, which return ErrAddress.
//
// GameRAM is not safe for concurrent use. It should be created and used by the
// goroutine running the main loop. Building with the "assertions" tag will
// cause a panic if a player switch is made from any other goroutine.
package gameram
