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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zelda3mp/zelda3mp/assert"
)

// MemorySize is the number of bytes in the game memory.
const MemorySize = 0x20000

// The range of memory that is unique to each player.
const (
	LiveOrigin = 0x20
	LiveMemtop = 0x71
	SlotSize   = LiveMemtop - LiveOrigin + 1
)

// ErrAddress is returned by the Peek() and Poke() functions for an address that
// is outside of the game memory.
var ErrAddress = errors.New("address out of range")

// DebugBus defines the functions required to inspect and alter memory from
// outside of the game loop.
type DebugBus interface {
	Peek(address int) (uint8, error)
	Poke(address int, value uint8) error
}

// GameRAM is the game memory and the player state slots.
type GameRAM struct {
	mem [MemorySize]uint8

	// slot[0] is player one and slot[1] is player two
	slots [2][SlotSize]uint8

	// false is player one and true is player two
	player2 bool

	// the goroutine that created the instance
	owner uint64
}

// NewGameRAM is the preferred method of initialisation for the GameRAM type.
// Memory and both slots are zeroed and player one is active.
func NewGameRAM() *GameRAM {
	ram := &GameRAM{}
	if assert.Enabled {
		ram.owner = assert.GetGoRoutineID()
	}
	return ram
}

func (ram *GameRAM) String() string {
	return hex.Dump(ram.mem[LiveOrigin : LiveMemtop+1])
}

// Access returns a pointer to the byte at the address. The address is not
// checked.
func (ram *GameRAM) Access(address int) *uint8 {
	return &ram.mem[address]
}

// Read the byte at the address. The address is not checked.
func (ram *GameRAM) Read(address int) uint8 {
	return ram.mem[address]
}

// Write the byte at the address. The address is not checked.
func (ram *GameRAM) Write(address int, data uint8) {
	ram.mem[address] = data
}

// Peek is the implementation of DebugBus.
func (ram *GameRAM) Peek(address int) (uint8, error) {
	if address < 0 || address >= MemorySize {
		return 0, fmt.Errorf("gameram: peek: %w: %#06x", ErrAddress, address)
	}
	return ram.mem[address], nil
}

// Poke is the implementation of DebugBus.
func (ram *GameRAM) Poke(address int, value uint8) error {
	if address < 0 || address >= MemorySize {
		return fmt.Errorf("gameram: poke: %w: %#06x", ErrAddress, address)
	}
	assert.SameGoroutine(ram.owner)
	ram.mem[address] = value
	return nil
}

// Memory returns the entire memory buffer. The returned slice refers to the
// live memory and should not be retained beyond the current frame.
func (ram *GameRAM) Memory() []uint8 {
	return ram.mem[:]
}
