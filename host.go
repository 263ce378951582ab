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

package main

import (
	"fmt"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/gui"
	"github.com/zelda3mp/zelda3mp/remap"
	"github.com/zelda3mp/zelda3mp/staterecorder"
	"github.com/zelda3mp/zelda3mp/userinput"
)

// the number of user input events that can be queued by the GUI between
// calls to serviceUserInput()
const userInputQueue = 64

// host owns the game memory and everything that operates on it. it is the
// single point of contact for the GUI and for the userinput package
type host struct {
	ram   *gameram.GameRAM
	table *remap.Table
	rec   *staterecorder.Recorder
	ctrl  *userinput.Controllers

	events chan userinput.Event

	// buttons held by each player. indexed by player number minus one and
	// then by button
	pressed [2][remap.NumButtons]bool
}

func newHost() *host {
	h := &host{
		ram:    gameram.NewGameRAM(),
		table:  remap.NewTable(),
		events: make(chan userinput.Event, userInputQueue),
	}
	h.rec = staterecorder.NewRecorder(h.ram)
	h.ctrl = userinput.NewControllers(h.ram, h.table, h.rec)
	return h
}

// RAM implements the sdlimgui.Host interface.
func (h *host) RAM() *gameram.GameRAM {
	return h.ram
}

// Table implements the sdlimgui.Host interface.
func (h *host) Table() *remap.Table {
	return h.table
}

// Recorder implements the sdlimgui.Host interface.
func (h *host) Recorder() *staterecorder.Recorder {
	return h.rec
}

// Controllers implements the sdlimgui.Host interface.
func (h *host) Controllers() *userinput.Controllers {
	return h.ctrl
}

// UserInput implements the sdlimgui.Host interface.
func (h *host) UserInput() chan userinput.Event {
	return h.events
}

// Pressed implements the sdlimgui.Host interface.
func (h *host) Pressed(p gameram.Player) []remap.Button {
	if _, err := gameram.ParsePlayer(int(p)); err != nil {
		return nil
	}

	var b []remap.Button
	for i, down := range h.pressed[p-1] {
		if down {
			b = append(b, remap.Button(i))
		}
	}
	return b
}

// HandleButton implements the userinput.HandleInput interface.
func (h *host) HandleButton(p gameram.Player, b remap.Button, down bool) error {
	if _, err := gameram.ParsePlayer(int(p)); err != nil {
		return err
	}
	if !b.Valid() {
		return fmt.Errorf("host: %s cannot be pressed", b)
	}
	h.pressed[p-1][b] = down
	return nil
}

// serviceUserInput handles every event that is waiting in the user input
// queue. errors are shown by the GUI. returns true if a quit event was seen
func (h *host) serviceUserInput(scr gui.GUI) bool {
	for {
		select {
		case ev := <-h.events:
			if err := h.ctrl.HandleUserInput(ev, h); err != nil {
				scr.ShowError(err)
			}
			if h.ctrl.Quit {
				return true
			}
			if h.ctrl.ToggleFullScreen {
				scr.ToggleFullScreen()
			}
		default:
			return false
		}
	}
}
