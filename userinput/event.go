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

// Event represents all the different type of events that can occur in the
// GUI.
type Event any

// EventQuit is sent when the GUI window has been closed.
type EventQuit struct{}

// KeyMod identifies the modifier keys held down with a key.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent on a keyboard press or release. The Key field is the
// name of the key as given by SDL.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventGamepadButton is sent on a game controller button press or release.
// The ID field is the index of the game controller and the Button field is the
// SDL button number.
type EventGamepadButton struct {
	ID     int
	Button int
	Down   bool
}

// GamepadTrigger identifies the analogue triggers of a game controller.
type GamepadTrigger int

// List of valid GamepadTrigger values.
const (
	GamepadTriggerLeft GamepadTrigger = iota
	GamepadTriggerRight
)

// EventGamepadTrigger is sent when a trigger moves. The Amount field is in the
// range 0 to 32767.
type EventGamepadTrigger struct {
	ID      int
	Trigger GamepadTrigger
	Amount  int16
}

// EventGamepadAdded is sent when a game controller is connected.
type EventGamepadAdded struct {
	ID   int
	Name string
}

// EventGamepadRemoved is sent when a game controller is disconnected.
type EventGamepadRemoved struct {
	ID int
}
