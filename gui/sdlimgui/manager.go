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
)

// window represents all the window types used in the sdlimgui.
type window interface {
	init()
	id() string
	destroy()
	draw()
	isOpen() bool
	setOpen(bool)
}

// windowManagement can be embedded in window implementations to provide the
// open state and default init() and destroy() functions.
type windowManagement struct {
	open bool
}

func (wm *windowManagement) init() {
}

func (wm *windowManagement) destroy() {
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

// manager handles windows and menus in the system.
type manager struct {
	img *SdlImgui

	// has the window manager gone through the initialisation process
	hasInitialised bool

	// the collection of managed windows in the system, indexed by window title
	windows map[string]window

	// the View menu lists windows in the order they were added
	order []string

	// some windows need to be referenced beyond the capabilities of the window
	// interface
	ram   *winPlayerRAM
	remap *winRemap
}

func newManager(img *SdlImgui) (*manager, error) {
	wm := &manager{
		img:     img,
		windows: make(map[string]window),
	}

	// creation function for all managed windows
	addWindow := func(create func(img *SdlImgui) (window, error), open bool) error {
		w, err := create(img)
		if err != nil {
			return err
		}

		wm.windows[w.id()] = w
		wm.order = append(wm.order, w.id())
		w.setOpen(open)

		return nil
	}

	if err := addWindow(newWinPlayerRAM, false); err != nil {
		return nil, err
	}
	if err := addWindow(newWinControllers, false); err != nil {
		return nil, err
	}
	if err := addWindow(newWinRemap, false); err != nil {
		return nil, err
	}
	if err := addWindow(newWinLog, false); err != nil {
		return nil, err
	}

	// get references to specific window types that need to be referenced
	// elsewhere in the system
	wm.ram = wm.windows[winPlayerRAMID].(*winPlayerRAM)
	wm.remap = wm.windows[winRemapID].(*winRemap)

	return wm, nil
}

func (wm *manager) destroy() {
	for _, w := range wm.windows {
		w.destroy()
	}
}

// the list of windows that appear in the View menu. the remap window is
// reached through the Controller menu.
func (wm *manager) viewMenu() []string {
	return slices.DeleteFunc(slices.Clone(wm.order), func(id string) bool {
		return id == winRemapID
	})
}

func (wm *manager) draw() {
	if !wm.hasInitialised {
		for _, w := range wm.windows {
			w.init()
		}
		wm.hasInitialised = true
	}

	wm.drawMenu()

	for _, id := range wm.order {
		wm.windows[id].draw()
	}
}
