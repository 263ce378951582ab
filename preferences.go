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
	"errors"
	"fmt"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/paths"
	"github.com/zelda3mp/zelda3mp/prefs"
)

// preferences that affect how the program starts
type preferences struct {
	// nil if there is no location for the prefs file
	dsk *prefs.Disk

	startPlayer  prefs.Int
	resetOnStart prefs.Bool
}

func checkPlayer(v prefs.Value) error {
	n, ok := v.(int)
	if !ok {
		return fmt.Errorf("prefs: %w: %v", gameram.ErrPlayer, v)
	}
	_, err := gameram.ParsePlayer(n)
	return err
}

// newPreferences creates the program preferences with the values stored on
// disk. a missing home directory is not an error, the default values are used
// and nothing will be saved.
func newPreferences() (*preferences, error) {
	p := defaultPreferences()

	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		if errors.Is(err, paths.ErrNoHome) {
			logger.Logf(logger.Allow, "prefs", "preferences will not be saved: %v", err)
			return p, nil
		}
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("players.startplayer", &p.startPlayer)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("players.resetonstart", &p.resetOnStart)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return p, err
	}

	return p, nil
}

// defaultPreferences returns preferences with default values that are not
// associated with the prefs file
func defaultPreferences() *preferences {
	p := &preferences{}
	_ = p.startPlayer.Set(int(gameram.Player1))
	_ = p.resetOnStart.Set(true)
	p.startPlayer.SetHookPre(checkPlayer)
	return p
}

// save preferences to disk. does nothing if there is no location for the
// prefs file
func (p *preferences) save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
