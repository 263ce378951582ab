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

package sdlimgui

import (
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiColors defines all the colors used by the GUI.
type imguiColors struct {
	// error popup text
	Error imgui.Vec4

	// log window
	LogBackground imgui.Vec4

	// byte grids. a byte in the live range that differs from the slot of the
	// active player
	ValueDiff imgui.Vec4

	// players
	ActivePlayer   imgui.Vec4
	InactivePlayer imgui.Vec4

	// button states in the controllers window
	ButtonDown imgui.Vec4
	ButtonUp   imgui.Vec4

	// a remapping that differs from the default mapping
	RemapChanged imgui.Vec4
}

func newColors() *imguiColors {
	return &imguiColors{
		Error:          imgui.Vec4{X: 0.9, Y: 0.3, Z: 0.3, W: 1.0},
		LogBackground:  imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.2, W: 0.9},
		ValueDiff:      imgui.Vec4{X: 0.6, Y: 0.3, Z: 0.3, W: 1.0},
		ActivePlayer:   imgui.Vec4{X: 0.4, Y: 0.8, Z: 0.4, W: 1.0},
		InactivePlayer: imgui.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1.0},
		ButtonDown:     imgui.Vec4{X: 0.8, Y: 0.7, Z: 0.2, W: 1.0},
		ButtonUp:       imgui.Vec4{X: 0.2, Y: 0.2, Z: 0.3, W: 1.0},
		RemapChanged:   imgui.Vec4{X: 0.9, Y: 0.8, Z: 0.4, W: 1.0},
	}
}
