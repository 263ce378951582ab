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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are first given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STATE", "REMAP", "VERSION")
//	verbose := md.AddBool("log", false, "echo log to stdout")
//	_, _ = md.Parse()
//
// The first sub-mode is the default mode. After a call to Parse() the Mode()
// function says which mode has been selected. Each mode can then call
// NewMode() to add the flags and sub-modes for the next layer of arguments and
// call Parse() again:
//
//	switch md.Mode() {
//	case "REMAP":
//		md.NewMode()
//		md.AddSubModes("LIST", "SET")
//		_, _ = md.Parse()
//	}
//
// Sub-mode comparisons are case insensitive. Non-flag arguments that are not a
// sub-mode are returned by RemainingArgs() and GetArg().
package modalflag
