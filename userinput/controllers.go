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
	"fmt"
	"slices"
	"strings"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/remap"
)

// MaxGamepads is the number of game controllers that are used. The first
// controller plays for the active player and the second for the other player.
const MaxGamepads = 2

// the amount of trigger movement required before the trigger counts as a
// button press
const triggerThreshold = 16384

// the keys that play the game for the active player
var keyboardButtons = map[string]remap.Button{
	"Up":          remap.ButtonDpadUp,
	"Down":        remap.ButtonDpadDown,
	"Left":        remap.ButtonDpadLeft,
	"Right":       remap.ButtonDpadRight,
	"Right Shift": remap.ButtonBack,
	"Return":      remap.ButtonStart,
	"X":           remap.ButtonA,
	"Z":           remap.ButtonB,
	"S":           remap.ButtonX,
	"A":           remap.ButtonY,
	"C":           remap.ButtonL1,
	"V":           remap.ButtonR1,
}

// Controllers keeps track of user input and forwards it to the game.
type Controllers struct {
	ram    *gameram.GameRAM
	table  *remap.Table
	states StateSlots

	// the names of connected game controllers, indexed by ID
	gamepads map[int]string

	// whether each trigger is currently considered to be pressed, indexed by
	// controller ID and then by GamepadTrigger
	triggers [MaxGamepads][2]bool

	// whether or not the last HandleUserInput() was for an event that was
	// consumed as an input
	LastKeyHandled bool

	// is true if last event was a quit event
	Quit bool

	// is true if last event was a request to toggle fullscreen
	ToggleFullScreen bool
}

// NewControllers is the preferred method of initialisation for the Controllers
// type. The states argument can be nil, in which case the save state hotkeys do
// nothing.
func NewControllers(ram *gameram.GameRAM, table *remap.Table, states StateSlots) *Controllers {
	return &Controllers{
		ram:      ram,
		table:    table,
		states:   states,
		gamepads: make(map[int]string),
	}
}

// Gamepads returns the names of the connected game controllers in ID order.
func (c *Controllers) Gamepads() []string {
	ids := make([]int, 0, len(c.gamepads))
	for id := range c.gamepads {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	n := make([]string, 0, len(ids))
	for _, id := range ids {
		n = append(n, fmt.Sprintf("%d: %s", id, c.gamepads[id]))
	}
	return n
}

// the player controlled by the game controller
func (c *Controllers) gamepadPlayer(id int) (gameram.Player, bool) {
	switch id {
	case 0:
		return c.ram.ActivePlayer(), true
	case 1:
		return c.ram.ActivePlayer().Other(), true
	}
	return gameram.Player1, false
}

// slot number for function key. returns false if the key is not a slot key
func functionKeySlot(key string) (int, bool) {
	if !strings.HasPrefix(key, "F") {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(key, "F%d", &n); err != nil {
		return 0, false
	}
	if n < 1 || n > 10 {
		return 0, false
	}
	return n, true
}

func (c *Controllers) hotkey(ev EventKeyboard) (bool, error) {
	if !ev.Down {
		return false, nil
	}

	if slot, ok := functionKeySlot(ev.Key); ok {
		if c.states == nil {
			return true, nil
		}
		switch ev.Mod {
		case KeyModNone:
			return true, c.states.SaveSlot(slot)
		case KeyModShift:
			return true, c.states.LoadSlot(slot)
		}
		return false, nil
	}

	if ev.Mod != KeyModNone {
		return false, nil
	}

	switch ev.Key {
	case "Tab":
		p := gameram.SwitchPlayer(c.ram)
		logger.Logf(logger.Allow, "userinput", "switched to %s", p)
		return true, nil
	case "F11":
		c.ToggleFullScreen = true
		return true, nil
	case "Escape":
		c.Quit = true
		return true, nil
	}

	return false, nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		c.LastKeyHandled = false
		return nil
	}

	c.LastKeyHandled = true

	handled, err := c.hotkey(ev)
	if handled || err != nil {
		return err
	}

	// modifiers are ignored. the right shift key is itself a button
	if b, ok := keyboardButtons[ev.Key]; ok {
		return handle.HandleButton(c.ram.ActivePlayer(), b, ev.Down)
	}

	c.LastKeyHandled = false
	return nil
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, handle HandleInput) error {
	p, ok := c.gamepadPlayer(ev.ID)
	if !ok {
		return nil
	}

	b := c.table.Remap(ev.Button)
	if b == remap.ButtonInvalid {
		return nil
	}

	c.LastKeyHandled = true
	return handle.HandleButton(p, b, ev.Down)
}

func (c *Controllers) gamepadTrigger(ev EventGamepadTrigger, handle HandleInput) error {
	p, ok := c.gamepadPlayer(ev.ID)
	if !ok {
		return nil
	}

	var b remap.Button
	switch ev.Trigger {
	case GamepadTriggerLeft:
		b = remap.ButtonL2
	case GamepadTriggerRight:
		b = remap.ButtonR2
	default:
		return nil
	}

	// only forward a change of state
	down := ev.Amount >= triggerThreshold
	if c.triggers[ev.ID][ev.Trigger] == down {
		return nil
	}
	c.triggers[ev.ID][ev.Trigger] = down

	c.LastKeyHandled = true
	return handle.HandleButton(p, b, down)
}

// HandleUserInput deciphers the Event and forwards the input to the game or
// acts on it if it is a hotkey. The Quit and ToggleFullScreen fields should
// be checked after the function returns.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.Quit = false
	c.ToggleFullScreen = false
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		return c.keyboard(ev, handle)
	case EventGamepadButton:
		return c.gamepadButton(ev, handle)
	case EventGamepadTrigger:
		return c.gamepadTrigger(ev, handle)
	case EventGamepadAdded:
		c.gamepads[ev.ID] = ev.Name
		logger.Logf(logger.Allow, "userinput", "controller %d connected: %s", ev.ID, ev.Name)
	case EventGamepadRemoved:
		delete(c.gamepads, ev.ID)
		if ev.ID >= 0 && ev.ID < MaxGamepads {
			c.triggers[ev.ID] = [2]bool{}
		}
		logger.Logf(logger.Allow, "userinput", "controller %d disconnected", ev.ID)
	}

	return nil
}
