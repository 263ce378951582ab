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

//go:build !assertions

package assert

// Enabled is true when the assertions build tag has been specified.
const Enabled = false

// SameGoroutine does nothing unless the assertions build tag is specified.
func SameGoroutine(_ uint64) {
}

// True does nothing unless the assertions build tag is specified.
func True(_ bool, _ string, _ ...any) {
}
