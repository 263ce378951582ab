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

// Package logger is the logging system for zelda3mp. There is one central log
// which should be used for all logging through the package level functions.
// The log is a fixed size and older entries are forgotten.
//
// Entries have a tag and a detail string. The tag should be short and name the
// package or subsystem that is making the entry:
//
//	logger.Log(logger.Allow, "remap", "no buttons file found")
//
// The Permission argument allows the caller to decide whether the entry should
// be made at all. The overlay uses this to stop log spam from the controller
// hot-plug code when no controller is present.
package logger
