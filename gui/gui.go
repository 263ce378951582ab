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

package gui

import "io"

// GUI defines the operations the main loop performs on the user interface.
type GUI interface {
	// Service polls for events and draws the next frame
	Service()

	// ShowError presents the error to the user
	ShowError(err error)

	// ToggleFullScreen flips the fullscreen state of the window
	ToggleFullScreen()

	// Destroy releases all resources. Errors are written to output
	Destroy(output io.Writer)
}
