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

package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const baseResourcePath = ".zelda3mp"

// ErrNoHome is returned when there is no way of deciding on a config
// directory.
var ErrNoHome = errors.New("no home directory")

// the environment variables that affect the choice of config directory
type environment struct {
	Config string `env:"ZELDA3MP_CONFIG"`
	Home   string `env:"HOME"`
}

// ResourcePath returns the resource string prepended with the config
// directory. Empty resource strings are ignored. The directory containing the
// resource is created if necessary.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)
	pth := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(pth), 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return pth, nil
}

func getBasePath() (string, error) {
	if info, err := os.Stat(baseResourcePath); err == nil && info.IsDir() {
		return baseResourcePath, nil
	}

	var e environment
	if err := env.Parse(&e); err != nil {
		return "", err
	}

	if e.Config != "" {
		return filepath.Clean(e.Config), nil
	}

	if e.Home == "" {
		return "", ErrNoHome
	}

	return filepath.Join(e.Home, baseResourcePath), nil
}
