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

// Package paths contains functions to prepare paths to zelda3mp resources,
// such as the preferences file, the buttons file and save states.
//
// The ResourcePath() function prepends the supplied resource with the config
// directory. For example, the following will return the path to the buttons
// file:
//
//	pth, err := paths.ResourcePath("buttons.cfg")
//
// The config directory is chosen with the following policy:
//
//  1. a ".zelda3mp" directory in the program's current directory
//  2. the directory named by the ZELDA3MP_CONFIG environment variable
//  3. a ".zelda3mp" directory in the user's home directory, as named by the
//     HOME environment variable
//
// If none of these are available then the ErrNoHome error is returned. Callers
// are expected to fail soft in this case and to carry on with default values.
package paths
