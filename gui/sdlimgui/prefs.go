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

	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/paths"
	"github.com/zelda3mp/zelda3mp/prefs"
	"github.com/zelda3mp/zelda3mp/staterecorder"
)

// preferences for the overlay. the preferences are stored in the same file
// as the preferences for the rest of the program.
type preferences struct {
	img *SdlImgui

	// nil if there is no location for the prefs file
	dsk *prefs.Disk

	visible       prefs.Bool
	fullScreen    prefs.Bool
	remapAutoSave prefs.Bool
	stateSlot     prefs.Int
}

// parseGeometry parses the "%d,%d" format used for window size and position.
func parseGeometry(v prefs.Value) (int32, int32, error) {
	var a, b int32
	_, err := fmt.Sscanf(fmt.Sprintf("%v", v), "%d,%d", &a, &b)
	if err != nil {
		return 0, 0, fmt.Errorf("geometry: %w", err)
	}
	return a, b, nil
}

// checkSlot is the pre-hook for the state slot preference.
func checkSlot(v prefs.Value) error {
	slot, ok := v.(int)
	if !ok || slot < staterecorder.FirstSlot || slot > staterecorder.LastSlot {
		return fmt.Errorf("prefs: %w: %v", staterecorder.ErrSlot, v)
	}
	return nil
}

// defaultPreferences returns the preferences with default values. they are not
// associated with the prefs file.
func defaultPreferences(img *SdlImgui) *preferences {
	p := &preferences{img: img}

	_ = p.visible.Set(true)
	_ = p.remapAutoSave.Set(true)
	_ = p.stateSlot.Set(staterecorder.FirstSlot)

	p.stateSlot.SetHookPre(checkSlot)
	p.fullScreen.SetHookPost(func(v prefs.Value) error {
		img.plt.setFullScreen(v.(bool))
		return nil
	})

	return p
}

func newPreferences(img *SdlImgui) (*preferences, error) {
	p := defaultPreferences(img)

	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		if errors.Is(err, paths.ErrNoHome) {
			logger.Logf(logger.Allow, "sdlimgui", "preferences will not be saved: %v", err)
			return p, nil
		}
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("overlay.windowsize", prefs.NewGeneric(
		func(v prefs.Value) error {
			w, h, err := parseGeometry(v)
			if err != nil {
				return err
			}
			img.plt.window.SetSize(w, h)
			return nil
		},
		func() prefs.Value {
			w, h := img.plt.window.GetSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("overlay.windowpos", prefs.NewGeneric(
		func(v prefs.Value) error {
			x, y, err := parseGeometry(v)
			if err != nil {
				return err
			}
			img.plt.window.SetPosition(x, y)
			return nil
		},
		func() prefs.Value {
			x, y := img.plt.window.GetPosition()
			return fmt.Sprintf("%d,%d", x, y)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("overlay.ramwindow", prefs.NewGeneric(
		func(v prefs.Value) error {
			img.wm.ram.setOpen(fmt.Sprintf("%v", v) == "true")
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%v", img.wm.ram.isOpen())
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("overlay.visible", &p.visible)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("overlay.fullscreen", &p.fullScreen)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("remap.autosave", &p.remapAutoSave)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("staterecorder.slot", &p.stateSlot)
	if err != nil {
		return nil, err
	}

	// a malformed prefs file is not fatal
	err = p.dsk.Load(true)
	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}

	return p, nil
}

// save current preferences to disk.
func (p *preferences) save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
