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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// DefaultPrefsFile is the default filename of the preferences file. Use
// paths.ResourcePath() to place it in the config directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand. use the overlay or the -prefs argument ***"

// KeySep separates the key from the value in the prefs file.
const KeySep = " :: "

// NoPrefsFile is returned by Load() when the prefs file does not exist.
var NoPrefsFile = errors.New("no prefs file")

// Disk represents preference values as stored on disk. Values are registered
// with Add() and are then updated by Load() and written by Save().
//
// A prefs file can be shared between more than one Disk instance. Each
// instance only changes the keys that have been added to it.
type Disk struct {
	path    string
	entries map[string]pref

	// values that were specified on the command line when the key was
	// added. these take priority over values loaded from disk and are never
	// saved
	cmdline map[string]Value

	// values as last seen on disk. used by Save() in place of command line
	// values
	ondisk map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		cmdline: make(map[string]Value),
		ondisk:  make(map[string]string),
	}, nil
}

// Path returns the location of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk. If the key
// was specified on the command line then the command line value is applied
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.Contains(key, KeySep) || strings.ContainsAny(key, "\n\r") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		dsk.cmdline[key] = v
	}

	return nil
}

// HasEntry returns true if key has been added to the Disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Reset all entries to their reset value.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the prefs file. returns a map of key/value strings
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NoPrefsFile
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line of the file must be the boilerplate text
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s is empty", dsk.path)
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("%s is not a prefs file", dsk.path)
	}

	kv := make(map[string]string)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		kv[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return kv, nil
}

// Save current preference values to disk. Keys in the file that have not been
// added to this Disk instance are preserved unless they are defunct.
func (dsk *Disk) Save() error {
	kv, err := dsk.read()
	if err != nil {
		if !errors.Is(err, NoPrefsFile) {
			return fmt.Errorf("prefs: %w", err)
		}
		kv = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.cmdline[k]; ok {
			// command line values are not saved. keep whatever value was
			// on disk, if any
			if v, ok := dsk.ondisk[k]; ok {
				kv[k] = v
			}
			continue
		}
		kv[k] = p.String()
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		if isDefunct(k) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, kv[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the prefs file
// does not exist then the current values are saved to create the file.
// Otherwise a missing file results in the NoPrefsFile error.
//
// Values specified on the command line are not overwritten. A value that
// cannot be set does not prevent the other values from loading. The errors
// for those values are returned together once every value has been tried.
func (dsk *Disk) Load(saveOnFail bool) error {
	kv, err := dsk.read()
	if err != nil {
		if errors.Is(err, NoPrefsFile) && saveOnFail {
			return dsk.Save()
		}
		return fmt.Errorf("prefs: %w", err)
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs []error
	for _, k := range keys {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}

		v := kv[k]
		dsk.ondisk[k] = v

		if _, ok := dsk.cmdline[k]; ok {
			continue
		}

		if err := p.Set(v); err != nil {
			errs = append(errs, fmt.Errorf("prefs: %s: %w", k, err))
		}
	}

	return errors.Join(errs...)
}
