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
	"github.com/veandco/go-sdl2/sdl"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/paths"
	"github.com/zelda3mp/zelda3mp/remap"
)

const winRemapID = "Remap Buttons"

// remapEdit is the state of the remap window between opening it and applying
// the changes. pending is indexed by SDL button.
type remapEdit struct {
	pending []remap.Button
}

func newRemapEdit(numButtons int) *remapEdit {
	return &remapEdit{
		pending: make([]remap.Button, numButtons),
	}
}

// load the pending mapping from the table.
func (e *remapEdit) load(t *remap.Table) {
	for i := range e.pending {
		e.pending[i] = t.Remap(i)
	}
}

// defaults sets the pending mapping to the default mapping. the table is not
// changed until apply().
func (e *remapEdit) defaults() {
	e.load(remap.NewTable())
}

// changed returns true if the pending mapping for the SDL button is
// different to the mapping in the table.
func (e *remapEdit) changed(t *remap.Table, sdlButton int) bool {
	return e.pending[sdlButton] != t.Remap(sdlButton)
}

// apply the pending mapping to the table. returns the number of SDL buttons
// that were changed.
func (e *remapEdit) apply(t *remap.Table) int {
	var n int
	for i, b := range e.pending {
		if e.changed(t, i) {
			t.Change(i, b)
			n++
		}
	}
	return n
}

type winRemap struct {
	windowManagement

	img  *SdlImgui
	edit *remapEdit

	// the open state of the window at the previous draw(). the pending mapping
	// is loaded from the table whenever the window is opened
	wasOpen bool
}

func newWinRemap(img *SdlImgui) (window, error) {
	win := &winRemap{
		img:  img,
		edit: newRemapEdit(int(sdl.CONTROLLER_BUTTON_MAX)),
	}
	return win, nil
}

func (win *winRemap) id() string {
	return winRemapID
}

// the name SDL gives to the game controller button.
func sdlButtonName(sdlButton int) string {
	n := sdl.GameControllerGetStringForButton(sdl.GameControllerButton(sdlButton))
	if n == "" {
		return fmt.Sprintf("button %d", sdlButton)
	}
	return n
}

// save the table to the buttons file.
func (win *winRemap) save() error {
	pth, err := paths.ResourcePath(remap.DefaultButtonsFile)
	if err != nil {
		return err
	}
	return win.img.host.Table().Save(pth)
}

// apply the pending mapping to the table. the buttons file is saved if the
// remap.autosave preference is set, which it is by default.
func (win *winRemap) apply() error {
	n := win.edit.apply(win.img.host.Table())
	logger.Logf(logger.Allow, "remap", "%d buttons changed", n)
	if !win.img.prefs.remapAutoSave.Get().(bool) {
		return nil
	}
	return win.save()
}

func (win *winRemap) draw() {
	if !win.open {
		win.wasOpen = false
		return
	}

	table := win.img.host.Table()

	if !win.wasOpen {
		win.edit.load(table)
		win.wasOpen = true
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 100, Y: 100}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	if !imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}
	defer imgui.End()

	comboWidth := imguiGetFrameDim("", remap.ButtonDpadRight.String(), remap.ButtonInvalid.String()).X * 1.5

	flgs := imgui.TableFlagsSizingFixedFit | imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("##remaptable", 3, flgs, imgui.Vec2{}, 0.0) {
		imgui.TableSetupColumnV("SDL", imgui.TableColumnFlagsNone, 0, 0)
		imgui.TableSetupColumnV("Name", imgui.TableColumnFlagsNone, 0, 0)
		imgui.TableSetupColumnV("Button", imgui.TableColumnFlagsNone, comboWidth, 0)
		imgui.TableHeadersRow()

		for i := range win.edit.pending {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.AlignTextToFramePadding()
			imgui.Text(fmt.Sprintf("%d", i))

			imgui.TableNextColumn()
			imgui.AlignTextToFramePadding()
			if win.edit.changed(table, i) {
				imguiColorLabel(sdlButtonName(i), win.img.cols.RemapChanged)
			} else {
				imgui.Text(sdlButtonName(i))
			}

			imgui.TableNextColumn()
			imgui.PushItemWidth(comboWidth)
			if imgui.BeginComboV(fmt.Sprintf("##remap%d", i), win.edit.pending[i].String(), imgui.ComboFlagsNone) {
				for _, b := range remap.Buttons() {
					if imgui.SelectableV(b.String(), b == win.edit.pending[i], 0, imgui.Vec2{}) {
						win.edit.pending[i] = b
					}
				}
				imgui.EndCombo()
			}
			imgui.PopItemWidth()
		}

		imgui.EndTable()
	}

	imguiSeparator()

	if imgui.Button("Apply") {
		if err := win.apply(); err != nil {
			win.img.ShowError(err)
		}
	}
	imgui.SameLine()
	if imgui.Button("Revert") {
		win.edit.load(table)
	}
	imgui.SameLine()
	if imgui.Button("Defaults") {
		win.edit.defaults()
	}

	imgui.Spacing()
	autoSave := win.img.prefs.remapAutoSave.Get().(bool)
	if imgui.Checkbox("Save on apply", &autoSave) {
		_ = win.img.prefs.remapAutoSave.Set(autoSave)
	}
}
