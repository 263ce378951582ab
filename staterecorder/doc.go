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

// Package staterecorder saves and restores the state of the game memory,
// including the state of both players.
//
// A state file begins with the four byte magic string "Z3MP" and a version
// byte. A list of sections follows. Each section is a four byte identifier, a
// little-endian uint32 length and then the data:
//
//	"RAM "   the entire game memory
//	"PLYR"   the player snapshot (see gameram.Snapshot)
//
// Sections that are not recognised are skipped. Both of the sections above
// must be present for a state file to be loaded.
//
// The Recorder type manages numbered state files in the config directory.
package staterecorder
