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

// Package statsview runs a web server showing live statistics of the Go
// runtime: memory use, the number of goroutines and the garbage collector.
// Useful when checking that the main loop does not allocate on every frame.
//
// The server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags=statsview .
//
// Use Available() to check whether Launch() will do anything.
package statsview
