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
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/userinput"
	"github.com/zelda3mp/zelda3mp/version"
)

// gamepad is an opened SDL game controller. the index of the gamepad in the
// platform.gamepads array is the ID used in userinput events.
type gamepad struct {
	pad      *sdl.GameController
	instance sdl.JoystickID
	name     string
}

type platform struct {
	img    *SdlImgui
	window *sdl.Window
	mode   sdl.DisplayMode

	gamepads [userinput.MaxGamepads]*gamepad

	// trickle mouse buttons
	trickleMouseButtonLeft  trickleMouseButton
	trickleMouseButtonRight trickleMouseButton

	// use ticker to synchronise with monitor
	syncTicker *time.Ticker
}

// trickle mouse button is a mechanism that allows a mouse button down/up event
// that occurs in the same frame to be serviced by the dear imgui io system.
// the mechanism mitigates a problem with touchpads that simulate mouse
// presses simply through touch
type trickleMouseButton int

// list of valid trickleMouseButton values
const (
	trickleMouseNone trickleMouseButton = 0
	trickleMouseUp   trickleMouseButton = 1
	trickleMouseDown trickleMouseButton = 2
)

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(img *SdlImgui) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		img: img,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	// map sdl key codes to imgui codes
	plt.setKeyMapping()

	plt.window, err = sdl.CreateWindow(windowTitle(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(plt.mode.W)*0.80), int32(float32(plt.mode.H)*0.80),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)

	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	glContext, err := plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// game controllers that are already connected will be announced with a
	// CONTROLLERDEVICEADDED event. we don't need to open them here

	return plt, nil
}

func windowTitle() string {
	return version.Title()
}

func (plt *platform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
		imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyInsert:     sdl.SCANCODE_INSERT,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeySpace:      sdl.SCANCODE_SPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
		imgui.KeyA:          sdl.SCANCODE_A,
		imgui.KeyC:          sdl.SCANCODE_C,
		imgui.KeyV:          sdl.SCANCODE_V,
		imgui.KeyX:          sdl.SCANCODE_X,
		imgui.KeyY:          sdl.SCANCODE_Y,
		imgui.KeyZ:          sdl.SCANCODE_Z,
	}

	// keyboard mapping. imgui will use those indices to peek into the
	// io.KeysDown[] array
	for imguiKey, nativeKey := range keys {
		plt.img.io.KeyMap(imguiKey, nativeKey)
	}
}

func (plt *platform) updateKeyModifier() {
	modState := sdl.GetModState()
	mapModifier := func(lMask sdl.Keymod, lKey int, rMask sdl.Keymod, rKey int) (lResult int, rResult int) {
		if (modState & lMask) != 0 {
			lResult = lKey
		}
		if (modState & rMask) != 0 {
			rResult = rKey
		}
		return
	}
	plt.img.io.KeyShift(mapModifier(sdl.KMOD_LSHIFT, sdl.SCANCODE_LSHIFT, sdl.KMOD_RSHIFT, sdl.SCANCODE_RSHIFT))
	plt.img.io.KeyCtrl(mapModifier(sdl.KMOD_LCTRL, sdl.SCANCODE_LCTRL, sdl.KMOD_RCTRL, sdl.SCANCODE_RCTRL))
	plt.img.io.KeyAlt(mapModifier(sdl.KMOD_LALT, sdl.SCANCODE_LALT, sdl.KMOD_RALT, sdl.SCANCODE_RALT))
}

// openGamepad opens the game controller at the device index and assigns it
// to the first free gamepad ID. returns false if there is no free ID or if
// the device is not a game controller.
func (plt *platform) openGamepad(deviceIndex int) (int, string, bool) {
	if !sdl.IsGameController(deviceIndex) {
		return 0, "", false
	}

	id := -1
	for i, g := range plt.gamepads {
		if g == nil {
			id = i
			break // for loop
		}
	}
	if id == -1 {
		logger.Logf(logger.Allow, "sdl", "no free gamepad slot for device %d", deviceIndex)
		return 0, "", false
	}

	pad := sdl.GameControllerOpen(deviceIndex)
	if pad == nil || !pad.Attached() {
		return 0, "", false
	}

	g := &gamepad{
		pad:      pad,
		instance: pad.Joystick().InstanceID(),
		name:     pad.Name(),
	}

	// an already opened device is announced by SDL a second time in some
	// circumstances
	for i, o := range plt.gamepads {
		if o != nil && o.instance == g.instance {
			return i, o.name, false
		}
	}

	plt.gamepads[id] = g
	logger.Logf(logger.Allow, "sdl", "gamepad %d: %s", id, g.name)

	return id, g.name, true
}

// closeGamepad closes the game controller with the SDL instance ID. returns
// the gamepad ID it was assigned.
func (plt *platform) closeGamepad(instance sdl.JoystickID) (int, bool) {
	id, ok := plt.gamepadID(instance)
	if !ok {
		return 0, false
	}
	plt.gamepads[id].pad.Close()
	plt.gamepads[id] = nil
	return id, true
}

// gamepadID returns the gamepad ID for the SDL instance ID.
func (plt *platform) gamepadID(instance sdl.JoystickID) (int, bool) {
	for i, g := range plt.gamepads {
		if g != nil && g.instance == instance {
			return i, true
		}
	}
	return 0, false
}

// list of swap intervalue values. with the exception of syncTicker all of these
// are values defined and expected by the SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
	syncAdaptive            = -1
	syncTicker              = 2
)

func (plt *platform) setSwapInterval(i int) {
	if i == syncTicker {
		// ticker to control update frequency
		rate := int64(plt.mode.RefreshRate)
		if rate <= 0 {
			rate = 60
		}
		d := time.Duration(1000000000/rate) * time.Nanosecond
		plt.syncTicker = time.NewTicker(d)

		// in reality syncTicker requires us to set GL swap interval to 0
		i = syncImmediateUpdate
	} else {
		if plt.syncTicker != nil {
			plt.syncTicker.Stop()
		}
		plt.syncTicker = nil
	}

	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())

		// fall back to the ticker if vsync can't be used
		if i == syncWithVerticalRetrace || i == syncAdaptive {
			plt.setSwapInterval(syncTicker)
		}
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	for i, g := range plt.gamepads {
		if g != nil {
			g.pad.Close()
			plt.gamepads[i] = nil
		}
	}

	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// displaySize returns the dimension of the display.
func (plt *platform) displaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() [2]float32 {
	w, h := plt.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// newFrame marks the begin of a render pass. It forwards all current state to imgui.CurrentIO().
func (plt *platform) newFrame() {
	// setup display size (every frame to accommodate for window resizing)
	displaySize := plt.displaySize()
	plt.img.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	// if a mouse press event came, always pass it as "mouse held this frame",
	// so we don't miss click-release events that are shorter than 1 frame
	x, y, state := sdl.GetMouseState()

	plt.img.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		plt.img.io.SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}

	// trickle event handling will supercede any previous SetMouseButtonDown() calls

	switch plt.trickleMouseButtonLeft {
	case trickleMouseDown:
		plt.img.io.SetMouseButtonDown(0, true)
		plt.trickleMouseButtonLeft = trickleMouseUp
	case trickleMouseUp:
		plt.img.io.SetMouseButtonDown(0, false)
		plt.trickleMouseButtonLeft = trickleMouseNone
	case trickleMouseNone:
	}

	switch plt.trickleMouseButtonRight {
	case trickleMouseDown:
		plt.img.io.SetMouseButtonDown(1, true)
		plt.trickleMouseButtonRight = trickleMouseUp
	case trickleMouseUp:
		plt.img.io.SetMouseButtonDown(1, false)
		plt.trickleMouseButtonRight = trickleMouseNone
	case trickleMouseNone:
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	if plt.syncTicker != nil {
		<-plt.syncTicker.C
	}
	plt.window.GLSwap()
}

// set the full screen state. does not capture mouse.
func (plt *platform) setFullScreen(fullScreen bool) {
	var err error
	if fullScreen {
		err = plt.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		err = plt.window.SetFullscreen(0)
	}
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "fullscreen: %v", err)
		return
	}

	// a short delay seems to smooth things out by giving time for the system
	// to make the changes to the full screen state
	<-time.After(100 * time.Millisecond)
}
