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

// Package sdlimgui is the developer overlay. It opens an SDL window with an
// OpenGL 2.1 context and draws a dear imgui interface on top of it: a main
// menu bar, modal popups, a controller remapping window and windows showing
// the player state region of game RAM and the log.
//
// The overlay runs entirely in the main thread. Service() must be called
// regularly from the main loop. SDL events are forwarded to imgui and the
// ones that are meaningful to the game are sent as userinput events on the
// channel returned by Host.UserInput(). The main loop drains that channel
// after every call to Service().
//
// The grave key (`) hides and shows the overlay.
package sdlimgui
