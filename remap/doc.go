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

// Package remap translates SDL game controller buttons to the buttons that the
// game understands. The default mapping pairs each SDL button with the game
// button of the same name. The mapping can be changed at runtime and saved to
// a buttons file.
//
// The buttons file is plain text with one mapping per line. A mapping is two
// whitespace separated integers: the SDL button number and the game button
// number. A line can also contain two mappings (four integers). Blank lines
// and lines beginning with # are ignored:
//
//	# sdl internal
//	0 1
//	1 0
//	2 3 3 2
//
// The game button number -1 disables the SDL button.
package remap
