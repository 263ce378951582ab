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
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/zelda3mp/zelda3mp/logger"
)

const winLogID = "Log"

type winLog struct {
	windowManagement

	img *SdlImgui

	// copy of the central log taken at the start of every draw()
	entries []logger.Entry

	// the most recent entry seen by the window. if the most recent entry in
	// the central log is different then the window is scrolled to the bottom
	last logger.Entry
}

func newWinLog(img *SdlImgui) (window, error) {
	win := &winLog{
		img: img,
	}
	return win, nil
}

func (win *winLog) id() string {
	return winLogID
}

// refresh copies the central log. returns true if there are new entries.
func (win *winLog) refresh() bool {
	logger.BorrowLog(func(entries []logger.Entry) {
		win.entries = append(win.entries[:0], entries...)
	})

	if len(win.entries) == 0 {
		return false
	}

	last := win.entries[len(win.entries)-1]
	if last == win.last {
		return false
	}
	win.last = last

	return true
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	dirty := win.refresh()

	imgui.SetNextWindowPosV(imgui.Vec2{X: 500, Y: 480}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 300}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.LogBackground)
	open := imgui.BeginV(win.id(), &win.open, 0)
	imgui.PopStyleColor()
	defer imgui.End()

	if !open {
		return
	}

	var clipper imgui.ListClipper
	clipper.Begin(len(win.entries))
	for clipper.Step() {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			imgui.Text(strings.TrimSuffix(win.entries[i].String(), "\n"))
		}
	}

	// scroll to end if log has been dirtied (ie. a new entry)
	if dirty {
		imgui.SetScrollHereY(0.0)
	}
}
