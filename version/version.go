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

// Package version reports the name and version of the application. The version
// number can be set at link time with:
//
//	go build -ldflags "-X github.com/zelda3mp/zelda3mp/version.number=v0.1.0"
//
// Otherwise the version is taken from the build information that the Go
// toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "zelda3mp"

// set at link time for numbered releases
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is a
// numbered release.
//
// The version string is "unreleased" if the binary has been built from a
// repository without a release number, and "local" if there is no vcs
// information at all (as with "go run .").
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns a string suitable for a window title.
func Title() string {
	v, _, _ := Version()
	return fmt.Sprintf("%s (%s)", ApplicationName, v)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
