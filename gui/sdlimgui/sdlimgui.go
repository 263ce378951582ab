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
	"errors"
	"fmt"
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/paths"
	"github.com/zelda3mp/zelda3mp/remap"
	"github.com/zelda3mp/zelda3mp/staterecorder"
	"github.com/zelda3mp/zelda3mp/userinput"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "overlay_imgui.ini"

// Host is the program the overlay is drawn for. All values returned by Host
// are owned by the main loop, which is also the goroutine that calls
// Service().
type Host interface {
	RAM() *gameram.GameRAM
	Table() *remap.Table
	Recorder() *staterecorder.Recorder
	Controllers() *userinput.Controllers
	UserInput() chan userinput.Event

	// Pressed returns the buttons currently held by the player
	Pressed(p gameram.Player) []remap.Button
}

// SdlImgui is an sdl based developer overlay using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     renderer

	host      Host
	ram       *gameram.GameRAM
	userinput chan userinput.Event

	// imgui window management
	wm *manager

	// the colors used by the imgui system
	cols *imguiColors

	// polling encapsulates the timing of the service loop
	polling *polling

	prefs *preferences

	// the modal popup currently on screen, if any
	modal    modal
	modalErr error
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui
//
// MUST ONLY be called from the main thread.
func NewSdlImgui(host Host) (*SdlImgui, error) {
	img := &SdlImgui{
		context:   imgui.CreateContext(nil),
		io:        imgui.CurrentIO(),
		host:      host,
		ram:       host.RAM(),
		userinput: host.UserInput(),
	}

	// path to dear imgui ini file. not having a home directory is not fatal,
	// imgui will keep window positions in memory only
	iniPath, err := paths.ResourcePath(imguiIniFile)
	if err != nil {
		if !errors.Is(err, paths.ErrNoHome) {
			return nil, fmt.Errorf("sdlimgui: %w", err)
		}
		logger.Log(logger.Allow, "sdlimgui", err)
		img.io.SetIniFilename("")
	} else {
		img.io.SetIniFilename(iniPath)
	}

	img.cols = newColors()
	img.rnd = newRenderer(img)

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	err = img.rnd.start()
	if err != nil {
		_ = img.plt.destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	tex := img.rnd.addFontTexture(img.io.Fonts())
	img.io.Fonts().SetTextureID(imgui.TextureID(tex.getID()))

	img.wm, err = newManager(img)
	if err != nil {
		img.destroyMechanics()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.polling = newPolling(img)

	img.prefs, err = newPreferences(img)
	if err != nil {
		img.destroyMechanics()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	// the window was created hidden so that preferences can be applied
	// before the user sees it
	img.plt.window.Show()
	img.plt.setSwapInterval(syncWithVerticalRetrace)

	return img, nil
}

func (img *SdlImgui) destroyMechanics() {
	img.rnd.destroy()
	_ = img.plt.destroy()
	img.context.Destroy()
}

// Destroy saves the window preferences and releases all SDL and imgui
// resources. Errors are written to output.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	if err := img.prefs.save(); err != nil {
		fmt.Fprintln(output, err.Error())
	}

	img.wm.destroy()
	img.rnd.destroy()

	if err := img.plt.destroy(); err != nil {
		fmt.Fprintln(output, err.Error())
	}

	img.context.Destroy()
}

// quit application sends a request to the main loop.
func (img *SdlImgui) quit() {
	if img.modalActive() {
		return
	}
	select {
	case img.userinput <- userinput.EventQuit{}:
	default:
		logger.Log(logger.Allow, "sdlimgui", "dropped quit event")
	}
}

// ShowError opens the error popup. Used by the main loop to report
// failures of hotkey operations, for example loading a state slot.
func (img *SdlImgui) ShowError(err error) {
	if err == nil {
		return
	}
	logger.Log(logger.Allow, "sdlimgui", err)
	img.modalErr = err
	img.modal = modalError
	img.polling.alert()
}

// ToggleFullScreen flips the fullscreen state of the window.
func (img *SdlImgui) ToggleFullScreen() {
	img.prefs.fullScreen.Set(!img.prefs.fullScreen.Get().(bool))
}

// ToggleVisible hides or shows the overlay. The window itself stays open.
func (img *SdlImgui) ToggleVisible() {
	img.prefs.visible.Set(!img.prefs.visible.Get().(bool))
	img.polling.alert()
}

// switch to the player and log the result. used by menus.
func (img *SdlImgui) setPlayer(p gameram.Player) {
	img.ram.SetPlayer(p)
	logger.Logf(logger.Allow, "sdlimgui", "selected %s", p)
}

// saveState and loadState are called from the File menu. the slot used is
// the value of the staterecorder.slot preference.
func (img *SdlImgui) saveState() {
	slot := img.prefs.stateSlot.Get().(int)
	if err := img.host.Recorder().SaveSlot(slot); err != nil {
		img.ShowError(err)
	}
}

func (img *SdlImgui) loadState() {
	slot := img.prefs.stateSlot.Get().(int)
	if err := img.host.Recorder().LoadSlot(slot); err != nil {
		img.ShowError(err)
	}
}

func (img *SdlImgui) exportState() {
	pth, err := img.host.Recorder().Export()
	if err != nil {
		img.ShowError(err)
		return
	}
	logger.Logf(logger.Allow, "sdlimgui", "exported state to %s", pth)
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	if img.prefs.visible.Get().(bool) {
		img.wm.draw()
	}
	img.modalDraw()
}
