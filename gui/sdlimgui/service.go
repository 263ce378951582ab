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
	"github.com/veandco/go-sdl2/sdl"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/userinput"
)

// Service polls SDL for events and draws the next frame. Events that are of
// interest to the main loop are forwarded as userinput events.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	// whether mouse button down event have been polled. if it has and we poll
	// an up event in the same PollEvent() loop below, then we need to
	// "trickle" the up and down events over two frames. see commentary for
	// trickleMouseButton type
	leftMouseDownPolled := false
	rightMouseDownPolled := false

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_EXPOSED:
				img.polling.alert()
			}

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					leftMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if leftMouseDownPolled {
						img.plt.trickleMouseButtonLeft = trickleMouseDown
					}
				}

			case sdl.BUTTON_RIGHT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					rightMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if rightMouseDownPolled {
						img.plt.trickleMouseButtonRight = trickleMouseDown
					}
				}
			}

			// without this the result of the button press is not seen until
			// the timeout of the next Service() has elapsed
			img.polling.alert()
			img.polling.activity()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)
			img.polling.activity()

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// the Which field is the device index for added events
				if id, name, ok := img.plt.openGamepad(int(ev.Which)); ok {
					img.sendUserInput(userinput.EventGamepadAdded{ID: id, Name: name}, "gamepad added")
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				// and the instance ID for removed events
				if id, ok := img.plt.closeGamepad(ev.Which); ok {
					img.sendUserInput(userinput.EventGamepadRemoved{ID: id}, "gamepad removed")
				}
			}

		case *sdl.ControllerButtonEvent:
			if id, ok := img.plt.gamepadID(ev.Which); ok {
				img.sendUserInput(userinput.EventGamepadButton{
					ID:     id,
					Button: int(ev.Button),
					Down:   ev.State == 1,
				}, "gamepad button")
			}

		case *sdl.ControllerAxisEvent:
			id, ok := img.plt.gamepadID(ev.Which)
			if !ok {
				break // switch
			}

			var trigger userinput.GamepadTrigger
			switch int(ev.Axis) {
			case int(sdl.CONTROLLER_AXIS_TRIGGERLEFT):
				trigger = userinput.GamepadTriggerLeft
			case int(sdl.CONTROLLER_AXIS_TRIGGERRIGHT):
				trigger = userinput.GamepadTriggerRight
			default:
				// thumbsticks are not used
				continue // for loop
			}

			img.sendUserInput(userinput.EventGamepadTrigger{
				ID:      id,
				Trigger: trigger,
				Amount:  ev.Value,
			}, "gamepad trigger")
		}
	}

	img.renderFrame()
}

// sendUserInput forwards the event to the main loop without blocking.
func (img *SdlImgui) sendUserInput(ev userinput.Event, description string) {
	select {
	case img.userinput <- ev:
	default:
		logger.Logf(logger.Allow, "sdlimgui", "dropped %s event", description)
	}
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	img.polling.activity()

	// all keypresses are forwarded to imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
	}
	img.plt.updateKeyModifier()

	// the grave key is reserved for the overlay
	if ev.Keysym.Scancode == sdl.SCANCODE_GRAVE {
		if ev.Type == sdl.KEYUP && ev.Repeat == 0 {
			img.ToggleVisible()
		}
		return
	}

	// keyboard input to imgui widgets and to modal popups is not forwarded
	if imgui.IsAnyItemActive() || img.modalActive() {
		return
	}

	ctrl := ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL
	alt := ev.Keysym.Mod&sdl.KMOD_LALT == sdl.KMOD_LALT || ev.Keysym.Mod&sdl.KMOD_RALT == sdl.KMOD_RALT
	shift := ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT

	mod := userinput.KeyModNone
	switch {
	case ctrl:
		mod = userinput.KeyModCtrl
	case alt:
		mod = userinput.KeyModAlt
	case shift:
		mod = userinput.KeyModShift
	}

	img.sendUserInput(userinput.EventKeyboard{
		Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Repeat != 0,
		Mod:    mod,
	}, "keyboard")
}

func (img *SdlImgui) renderFrame() {
	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	img.draw()

	// this call only creates the draw data list. actual rendering to
	// framebuffer is done below
	imgui.Render()
	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}
