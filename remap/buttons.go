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

import "fmt"

// Button is a game controller button as understood by the game.
type Button int

// List of valid Button values.
const (
	ButtonInvalid Button = iota - 1
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonL3
	ButtonR3
	ButtonL1
	ButtonR1
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
	ButtonL2
	ButtonR2

	// the number of buttons not including ButtonInvalid
	NumButtons
)

var buttonNames = [NumButtons]string{
	"A", "B", "X", "Y",
	"Back", "Guide", "Start",
	"L3", "R3", "L1", "R1",
	"Up", "Down", "Left", "Right",
	"L2", "R2",
}

func (b Button) String() string {
	if b.Valid() {
		return buttonNames[b]
	}
	if b == ButtonInvalid {
		return "None"
	}
	return fmt.Sprintf("unknown button (%d)", int(b))
}

// Valid returns true if the button is a game button. ButtonInvalid is not a
// valid button.
func (b Button) Valid() bool {
	return b >= ButtonA && b < NumButtons
}

// Buttons returns the list of game buttons, with ButtonInvalid first. Suitable
// for presenting as a list of choices.
func Buttons() []Button {
	l := make([]Button, 0, NumButtons+1)
	for b := ButtonInvalid; b < NumButtons; b++ {
		l = append(l, b)
	}
	return l
}
