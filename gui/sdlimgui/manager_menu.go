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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/staterecorder"
)

const (
	menuFile       = "File"
	menuView       = "View"
	menuPlayers    = "Players"
	menuController = "Controller"
	menuHelp       = "Help"
)

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu(menuFile) {
		slot := wm.img.prefs.stateSlot.Get().(int)
		if imgui.MenuItemV("Save State", fmt.Sprintf("F%d", slot), false, true) {
			wm.img.saveState()
		}
		if imgui.MenuItemV("Load State", fmt.Sprintf("Shift+F%d", slot), false, true) {
			wm.img.loadState()
		}
		if imgui.BeginMenu("State Slot") {
			for s := staterecorder.FirstSlot; s <= staterecorder.LastSlot; s++ {
				if imgui.MenuItemV(fmt.Sprintf("Slot %d", s), "", s == slot, true) {
					_ = wm.img.prefs.stateSlot.Set(s)
				}
			}
			imgui.EndMenu()
		}
		if imgui.MenuItem("Export State") {
			wm.img.exportState()
		}

		imguiSeparator()

		if imgui.MenuItemV("Exit", "Esc", false, true) {
			wm.img.quit()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuView) {
		if imgui.MenuItemV("Toggle Fullscreen", "F11", wm.img.prefs.fullScreen.Get().(bool), true) {
			wm.img.ToggleFullScreen()
		}
		if imgui.MenuItemV("Hide Overlay", "`", false, true) {
			wm.img.ToggleVisible()
		}

		imguiSeparator()

		for _, id := range wm.viewMenu() {
			drawMenuEntry(wm.windows[id], id)
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuPlayers) {
		active := wm.img.ram.ActivePlayer()
		if imgui.MenuItemV("Player 1", "", active == gameram.Player1, true) {
			wm.img.setPlayer(gameram.Player1)
		}
		if imgui.MenuItemV("Player 2", "", active == gameram.Player2, true) {
			wm.img.setPlayer(gameram.Player2)
		}

		imguiSeparator()

		if imgui.MenuItemV("Switch Player", "Tab", false, true) {
			p := gameram.SwitchPlayer(wm.img.ram)
			logger.Logf(logger.Allow, "sdlimgui", "switched to %s", p)
		}
		if imgui.MenuItem("Reset Player States") {
			wm.img.ram.ResetPlayerStates()
			logger.Log(logger.Allow, "sdlimgui", "player states reset")
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuController) {
		if imgui.MenuItem("Remap Buttons...") {
			wm.remap.setOpen(true)
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuHelp) {
		if imgui.MenuItem("About") {
			wm.img.modal = modalAbout
		}
		imgui.EndMenu()
	}

	// active player in titlebar
	status := wm.img.ram.ActivePlayer().String()
	imgui.SameLineV(imgui.WindowWidth()-imguiGetFrameDim(status).X-20.0, 0.0)
	imgui.Text(status)

	imgui.EndMainMenuBar()
}

func drawMenuEntry(w window, id string) {
	// decorate the menu entry with an "window open" indicator
	if w.isOpen() {
		// checkmark is unicode middle dot - code 00b7
		id = fmt.Sprintf("· %s", id)
	} else {
		id = fmt.Sprintf("  %s", id)
	}

	// window menu entries are toggleable
	if imgui.Selectable(id) {
		w.setOpen(!w.isOpen())
	}
}
