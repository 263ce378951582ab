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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the assertions build tag has been specified.
const Enabled = true

// SameGoroutine panics if the calling goroutine is not the owner goroutine.
// The owner value should have been obtained with GetGoRoutineID().
func SameGoroutine(owner uint64) {
	if id := GetGoRoutineID(); id != owner {
		panic(fmt.Sprintf("assert: called from goroutine %d but owned by goroutine %d", id, owner))
	}
}

// True panics with the message if the condition is false.
func True(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assert: %s", fmt.Sprintf(msg, args...)))
	}
}
