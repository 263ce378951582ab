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

package staterecorder

import (
	"errors"
	"fmt"
	"os"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/paths"
)

// The range of slot numbers accepted by the Recorder.
const (
	FirstSlot = 1
	LastSlot  = 10
)

// the directory in the config directory where state files are stored
const statesDir = "states"

// Extension is the filename extension for state files.
const Extension = ".z3s"

// ErrSlot is returned for a slot number outside of the range FirstSlot to
// LastSlot.
var ErrSlot = errors.New("no such slot")

// Recorder saves and loads numbered state files for a GameRAM instance.
type Recorder struct {
	ram *gameram.GameRAM
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(ram *gameram.GameRAM) *Recorder {
	return &Recorder{
		ram: ram,
	}
}

// SlotPath returns the path to the state file for the numbered slot.
func (rec *Recorder) SlotPath(slot int) (string, error) {
	if slot < FirstSlot || slot > LastSlot {
		return "", fmt.Errorf("staterecorder: %w: %d", ErrSlot, slot)
	}
	return paths.ResourcePath(statesDir, fmt.Sprintf("slot%d%s", slot, Extension))
}

// SaveSlot saves the current state to the numbered slot.
func (rec *Recorder) SaveSlot(slot int) error {
	pth, err := rec.SlotPath(slot)
	if err != nil {
		return err
	}
	if err := rec.SaveFile(pth); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "staterecorder", "saved state to slot %d", slot)
	return nil
}

// LoadSlot loads the state from the numbered slot.
func (rec *Recorder) LoadSlot(slot int) error {
	pth, err := rec.SlotPath(slot)
	if err != nil {
		return err
	}
	if err := rec.LoadFile(pth); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "staterecorder", "loaded state from slot %d (%s active)", slot, rec.ram.ActivePlayer())
	return nil
}

// Export saves the current state to a new file in the states directory.
// Returns the path of the new file.
func (rec *Recorder) Export() (string, error) {
	pth, err := paths.ResourcePath(statesDir, paths.UniqueFilename("export", "")+Extension)
	if err != nil {
		return "", err
	}
	if err := rec.SaveFile(pth); err != nil {
		return "", err
	}
	logger.Logf(logger.Allow, "staterecorder", "exported state to %s", pth)
	return pth, nil
}

// SaveFile saves the current state to the named file.
func (rec *Recorder) SaveFile(pth string) error {
	f, err := os.Create(pth)
	if err != nil {
		return fmt.Errorf("staterecorder: %w", err)
	}

	if err := Save(f, rec.ram); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("staterecorder: %w", err)
	}

	return nil
}

// LoadFile loads state from the named file.
func (rec *Recorder) LoadFile(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		return fmt.Errorf("staterecorder: %w", err)
	}
	defer f.Close()

	return Load(f, rec.ram)
}
