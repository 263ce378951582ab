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

// Package userinput handles input from the keyboard and game controllers. It
// is a translation layer between the GUI implementation, which creates Event
// values, and the game, which understands remap.Button values for one of the
// two players.
//
// The GUI implementation in use is SDL and so there is a bias towards that
// system. For example, game controller buttons are identified by their SDL
// button number and are translated to game buttons by a remap.Table.
//
// Some keys are hotkeys and do not reach the game:
//
//	Tab              switch player
//	F1 to F10        save state to slot
//	Shift+F1 to F10  load state from slot
//	F11              toggle fullscreen
//	Escape           quit
package userinput
