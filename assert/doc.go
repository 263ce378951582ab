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

// Package assert contains run time assertions that are only active when the
// program is built with the "assertions" build tag. Without the tag the
// functions are empty and are removed by the compiler.
//
// The zelda3mp memory overlay is not safe for concurrent use and is owned by
// the main loop. SameGoroutine() is used to catch misuse from another
// goroutine during development.
package assert
