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
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an SDL event
// before drawing the next frame. the active period is used when a gamepad is
// connected or when the overlay has recently received input.
const (
	activeSleepPeriod = 16
	idleSleepPeriod   = 100
	mouseSleepPeriod  = 20
)

// the number of frames after an input event that the active period is used.
const activeFrames = 30

type polling struct {
	img *SdlImgui

	mouseTicker *time.Ticker

	// wake is used to preempt the timeout when we want the next frame to be
	// drawn immediately. for example, closing windows might feel laggy
	// without it
	wake bool

	// countdown of frames to use the active sleep period for
	active int
}

func newPolling(img *SdlImgui) *polling {
	pol := &polling{
		img: img,
	}

	pol.mouseTicker = time.NewTicker(time.Millisecond * mouseSleepPeriod)

	return pol
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// activity() indicates that the user is interacting with the overlay.
func (pol *polling) activity() {
	pol.active = activeFrames
}

func (pol *polling) timeout() int {
	if pol.wake {
		pol.wake = false
		return 0
	}

	if pol.active > 0 {
		pol.active--
		return activeSleepPeriod
	}

	for _, g := range pol.img.plt.gamepads {
		if g != nil {
			return activeSleepPeriod
		}
	}

	return idleSleepPeriod
}

func (pol *polling) wait() sdl.Event {
	// wait for new SDL event or until the selected timeout period has elapsed
	ev := sdl.WaitEventTimeout(pol.timeout())

	// slow down mouse events. if we don't do this then waggling the mouse over
	// the screen will increase CPU usage significantly
	switch ev.(type) {
	case *sdl.MouseMotionEvent:
		<-pol.mouseTicker.C
	}

	return ev
}
