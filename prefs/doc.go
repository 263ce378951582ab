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

// Package prefs stores the preferences of the overlay and the player state
// system. Preference values are typed (Bool, String, Int, Float and Generic)
// and are registered with a Disk instance under a key:
//
//	var visible prefs.Bool
//	dsk, err := prefs.NewDisk(path)
//	err = dsk.Add("overlay.visible", &visible)
//	err = dsk.Load(true)
//
// The prefs file is plain text with one key/value pair per line. The first
// line of the file is the WarningBoilerPlate text.
//
// Values can be overridden for a single run with the -prefs command line
// argument. Overridden values are not written to disk.
//
// Preference types are safe to read from more than one goroutine but the
// Disk type is not.
package prefs
