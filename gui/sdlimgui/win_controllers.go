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
	"slices"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/remap"
)

const winControllersID = "Controllers"

type winControllers struct {
	windowManagement
	img *SdlImgui
}

func newWinControllers(img *SdlImgui) (window, error) {
	win := &winControllers{img: img}
	return win, nil
}

func (win *winControllers) id() string {
	return winControllersID
}

func (win *winControllers) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 600, Y: 50}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	if !imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}
	defer imgui.End()

	pads := win.img.host.Controllers().Gamepads()
	if len(pads) == 0 {
		imgui.Text("No gamepads connected")
	} else {
		for _, p := range pads {
			imgui.Text(p)
		}
	}

	active := win.img.ram.ActivePlayer()
	for _, p := range []gameram.Player{gameram.Player1, gameram.Player2} {
		imguiSeparator()
		if p == active {
			imguiColorLabel(p.String(), win.img.cols.ActivePlayer)
		} else {
			imguiColorLabel(p.String(), win.img.cols.InactivePlayer)
		}
		win.drawButtons(p)
	}
}

// draw every game button, highlighting the ones that are pressed.
func (win *winControllers) drawButtons(p gameram.Player) {
	pressed := win.img.host.Pressed(p)

	imgui.PushID(p.String())
	defer imgui.PopID()

	dim := imguiGetFrameDim(remap.ButtonDpadRight.String())
	for i, b := range remap.Buttons() {
		if !b.Valid() {
			continue // for loop
		}

		col := win.img.cols.ButtonUp
		if slices.Contains(pressed, b) {
			col = win.img.cols.ButtonDown
		}

		imgui.PushStyleColor(imgui.StyleColorButton, col)
		imgui.PushStyleColor(imgui.StyleColorButtonHovered, col)
		imgui.PushStyleColor(imgui.StyleColorButtonActive, col)
		imgui.ButtonV(b.String(), dim)
		imgui.PopStyleColorV(3)

		// six buttons to a row
		if i%6 != 0 {
			imgui.SameLine()
		}
	}
	imgui.NewLine()
}
