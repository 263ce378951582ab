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

package remap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zelda3mp/zelda3mp/logger"
)

// DefaultButtonsFile is the name of the buttons file in the config directory.
const DefaultButtonsFile = "buttons.cfg"

const fileHeader = "# sdl internal"

// parse a single line of the buttons file. returns nil for lines that contain
// no mappings
func parseLine(line string) ([]Entry, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	f := strings.Fields(line)
	if len(f) != 2 && len(f) != 4 {
		return nil, fmt.Errorf("expected two or four columns, found %d", len(f))
	}

	v := make([]int, len(f))
	for i := range f {
		var err error
		v[i], err = strconv.Atoi(f[i])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
	}

	e := make([]Entry, 0, 2)
	for i := 0; i < len(v); i += 2 {
		b := Button(v[i+1])
		if b != ButtonInvalid && !b.Valid() {
			return nil, fmt.Errorf("column %d: %d is not a game button", i+2, v[i+1])
		}
		if !ValidSDLButton(v[i]) {
			return nil, fmt.Errorf("column %d: %d is not an SDL button", i+1, v[i])
		}
		e = append(e, Entry{SDL: v[i], Button: b})
	}

	return e, nil
}

// Read mappings from the reader and apply them to the table. Malformed lines
// are logged and skipped. Mappings are only applied if the reader can be read
// to the end without error.
func (t *Table) Read(r io.Reader) error {
	var pending []Entry

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		e, err := parseLine(scanner.Text())
		if err != nil {
			logger.Logf(logger.Allow, "remap", "line %d: %v", n, err)
			continue
		}
		pending = append(pending, e...)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("remap: %w", err)
	}

	for _, e := range pending {
		t.Change(e.SDL, e.Button)
	}

	return nil
}

// Write the table to the writer in the format understood by Read().
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, fileHeader)
	for _, e := range t.Entries() {
		fmt.Fprintf(bw, "%d %d\n", e.SDL, int(e.Button))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("remap: %w", err)
	}
	return nil
}

// Load mappings from the buttons file at path. The caller should treat an
// error as a reason to log and carry on with the current mapping.
func (t *Table) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("remap: %w", err)
	}
	defer f.Close()
	return t.Read(f)
}

// Save the table to the buttons file at path.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("remap: %w", err)
	}

	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("remap: %w", err)
	}

	return nil
}
