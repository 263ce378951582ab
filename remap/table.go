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

package remap

import (
	"slices"

	"github.com/veandco/go-sdl2/sdl"
)

// the mapping that is used by NewTable() and Reset()
var defaultMapping = map[int]Button{
	int(sdl.CONTROLLER_BUTTON_A):             ButtonA,
	int(sdl.CONTROLLER_BUTTON_B):             ButtonB,
	int(sdl.CONTROLLER_BUTTON_X):             ButtonX,
	int(sdl.CONTROLLER_BUTTON_Y):             ButtonY,
	int(sdl.CONTROLLER_BUTTON_BACK):          ButtonBack,
	int(sdl.CONTROLLER_BUTTON_GUIDE):         ButtonGuide,
	int(sdl.CONTROLLER_BUTTON_START):         ButtonStart,
	int(sdl.CONTROLLER_BUTTON_LEFTSTICK):     ButtonL3,
	int(sdl.CONTROLLER_BUTTON_RIGHTSTICK):    ButtonR3,
	int(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  ButtonL1,
	int(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): ButtonR1,
	int(sdl.CONTROLLER_BUTTON_DPAD_UP):       ButtonDpadUp,
	int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     ButtonDpadDown,
	int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     ButtonDpadLeft,
	int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    ButtonDpadRight,
}

// ValidSDLButton returns true if the id is an SDL game controller button.
func ValidSDLButton(id int) bool {
	return id >= 0 && id < int(sdl.CONTROLLER_BUTTON_MAX)
}

// Entry is a single mapping in the Table.
type Entry struct {
	SDL    int
	Button Button
}

// Table maps SDL game controller buttons to game buttons.
type Table struct {
	mapping map[int]Button
}

// NewTable is the preferred method of initialisation for the Table type. The
// table is created with the default mapping.
func NewTable() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset the table to the default mapping.
func (t *Table) Reset() {
	t.mapping = make(map[int]Button, len(defaultMapping))
	for k, v := range defaultMapping {
		t.mapping[k] = v
	}
}

// Remap returns the game button for the SDL button. SDL buttons that are not in
// the table return ButtonInvalid.
func (t *Table) Remap(sdlButton int) Button {
	if b, ok := t.mapping[sdlButton]; ok {
		return b
	}
	return ButtonInvalid
}

// Change the game button for the SDL button.
func (t *Table) Change(sdlButton int, b Button) {
	t.mapping[sdlButton] = b
}

// Entries returns the mappings in the table in SDL button order.
func (t *Table) Entries() []Entry {
	e := make([]Entry, 0, len(t.mapping))
	for k, v := range t.mapping {
		e = append(e, Entry{SDL: k, Button: v})
	}
	slices.SortFunc(e, func(a, b Entry) int {
		return a.SDL - b.SDL
	})
	return e
}

// IsDefault returns true if the table is the same as the default mapping.
func (t *Table) IsDefault() bool {
	if len(t.mapping) != len(defaultMapping) {
		return false
	}
	for k, v := range defaultMapping {
		if b, ok := t.mapping[k]; !ok || b != v {
			return false
		}
	}
	return true
}
