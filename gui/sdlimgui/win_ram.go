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
	"strconv"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/logger"
)

const winPlayerRAMID = "Player RAM"

type winPlayerRAM struct {
	windowManagement

	img *SdlImgui

	// all reads and writes that originate from the user go through the
	// checked debug bus
	bus gameram.DebugBus

	// address and value of the peek/poke controls
	peekAddress string
	pokeValue   string
	peekErr     error
}

func newWinPlayerRAM(img *SdlImgui) (window, error) {
	win := &winPlayerRAM{
		img:         img,
		bus:         img.ram,
		peekAddress: fmt.Sprintf("%05x", gameram.LiveOrigin),
	}
	return win, nil
}

func (win *winPlayerRAM) id() string {
	return winPlayerRAMID
}

// commit writes a value entered into the live grid. idx is relative to the
// start of the live range.
func (win *winPlayerRAM) commit(idx int, value uint8) error {
	return win.bus.Poke(gameram.LiveOrigin+idx, value)
}

// peek the address in the peekAddress field.
func (win *winPlayerRAM) peek() (int, uint8, error) {
	addr, err := strconv.ParseUint(win.peekAddress, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("address: %w", err)
	}
	v, err := win.bus.Peek(int(addr))
	return int(addr), v, err
}

// poke the value in the pokeValue field to the address in the peekAddress
// field.
func (win *winPlayerRAM) poke() error {
	addr, err := strconv.ParseUint(win.peekAddress, 16, 32)
	if err != nil {
		return fmt.Errorf("address: %w", err)
	}
	v, err := strconv.ParseUint(win.pokeValue, 16, 8)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	return win.bus.Poke(int(addr), uint8(v))
}

func (win *winPlayerRAM) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 50, Y: 50}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	if !imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}
	defer imgui.End()

	active := win.img.ram.ActivePlayer()

	imguiLabel("Active:")
	imguiColorLabel(active.String(), win.img.cols.ActivePlayer)

	// the slot of the active player is the value of the live range at the
	// last switch. differences show what the player has changed since then
	slot := win.img.ram.Slot(active)
	live := win.img.ram.Memory()[gameram.LiveOrigin : gameram.LiveMemtop+1]

	popColor := 0
	before := func(idx int) {
		if live[idx] != slot[idx] {
			imgui.PushStyleColor(imgui.StyleColorFrameBg, win.img.cols.ValueDiff)
			popColor++
		}
	}
	after := func(idx int) {
		imgui.PopStyleColorV(popColor)
		popColor = 0
		if live[idx] != slot[idx] {
			imguiTooltip(func() {
				imguiColorLabel(fmt.Sprintf("slot %02x, live %02x", slot[idx], live[idx]), win.img.cols.ValueDiff)
			})
		}
	}
	commit := func(idx int, value uint8) {
		if err := win.commit(idx, value); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}

	imguiSeparator()
	imgui.Text("Live")
	drawByteGrid("live", live, gameram.LiveOrigin, before, after, commit)

	imguiSeparator()
	other := active.Other()
	otherSlot := win.img.ram.Slot(other)
	imguiLabel("Slot:")
	imguiColorLabel(other.String(), win.img.cols.InactivePlayer)
	drawByteGrid("other", otherSlot[:], gameram.LiveOrigin, nil, nil, nil)

	imguiSeparator()
	win.drawPeekPoke()
}

func (win *winPlayerRAM) drawPeekPoke() {
	imguiLabel("Address")
	imgui.PushItemWidth(imguiTextWidth(5))
	if imguiHexInput("##peekaddress", 5, &win.peekAddress) {
		win.peekErr = nil
	}
	imgui.PopItemWidth()

	imgui.SameLine()
	addr, v, err := win.peek()
	if err != nil {
		imguiColorLabel(err.Error(), win.img.cols.Error)
		return
	}
	imgui.Text(fmt.Sprintf("%#06x = %02x", addr, v))

	imguiLabel("Poke")
	imgui.PushItemWidth(imguiTextWidth(2))
	if imguiHexInput("##pokevalue", 2, &win.pokeValue) {
		win.peekErr = win.poke()
		if win.peekErr != nil {
			logger.Log(logger.Allow, "sdlimgui", win.peekErr)
		}
	}
	imgui.PopItemWidth()

	if win.peekErr != nil {
		imgui.SameLine()
		imguiColorLabel(win.peekErr.Error(), win.img.cols.Error)
	}
}
