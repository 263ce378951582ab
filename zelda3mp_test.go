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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/modalflag"
	"github.com/zelda3mp/zelda3mp/remap"
	"github.com/zelda3mp/zelda3mp/staterecorder"
	"github.com/zelda3mp/zelda3mp/test"
	"github.com/zelda3mp/zelda3mp/userinput"
)

// mockGUI satisfies the gui.GUI interface
type mockGUI struct {
	errors     []error
	fullScreen bool
}

func (m *mockGUI) Service() {}

func (m *mockGUI) ShowError(err error) {
	m.errors = append(m.errors, err)
}

func (m *mockGUI) ToggleFullScreen() {
	m.fullScreen = !m.fullScreen
}

func (m *mockGUI) Destroy(_ io.Writer) {}

func TestHostButtons(t *testing.T) {
	h := newHost()

	test.ExpectSuccess(t, h.HandleButton(gameram.Player1, remap.ButtonA, true))
	test.ExpectSuccess(t, h.HandleButton(gameram.Player2, remap.ButtonStart, true))
	test.ExpectSuccess(t, h.HandleButton(gameram.Player1, remap.ButtonDpadUp, true))

	p1 := h.Pressed(gameram.Player1)
	test.DemandEquality(t, len(p1), 2)
	test.ExpectEquality(t, p1[0], remap.ButtonA)
	test.ExpectEquality(t, p1[1], remap.ButtonDpadUp)

	p2 := h.Pressed(gameram.Player2)
	test.DemandEquality(t, len(p2), 1)
	test.ExpectEquality(t, p2[0], remap.ButtonStart)

	test.ExpectSuccess(t, h.HandleButton(gameram.Player1, remap.ButtonA, false))
	p1 = h.Pressed(gameram.Player1)
	test.DemandEquality(t, len(p1), 1)
	test.ExpectEquality(t, p1[0], remap.ButtonDpadUp)

	test.ExpectFailure(t, h.HandleButton(gameram.Player(3), remap.ButtonA, true))
	test.ExpectFailure(t, h.HandleButton(gameram.Player1, remap.ButtonInvalid, true))
	test.ExpectEquality(t, len(h.Pressed(gameram.Player(0))), 0)
}

func TestServiceUserInput(t *testing.T) {
	t.Setenv("ZELDA3MP_CONFIG", t.TempDir())

	h := newHost()
	scr := &mockGUI{}

	// nothing queued
	test.ExpectFailure(t, h.serviceUserInput(scr))

	h.events <- userinput.EventKeyboard{Key: "X", Down: true}
	h.events <- userinput.EventKeyboard{Key: "F11", Down: true}
	test.ExpectFailure(t, h.serviceUserInput(scr))
	test.ExpectSuccess(t, scr.fullScreen)
	test.DemandEquality(t, len(h.Pressed(gameram.Player1)), 1)
	test.ExpectEquality(t, h.Pressed(gameram.Player1)[0], remap.ButtonA)

	// switching player with the hotkey means that the keyboard plays for
	// player two
	h.events <- userinput.EventKeyboard{Key: "Tab", Down: true}
	h.events <- userinput.EventKeyboard{Key: "Z", Down: true}
	test.ExpectFailure(t, h.serviceUserInput(scr))
	test.ExpectEquality(t, h.ram.ActivePlayer(), gameram.Player2)
	test.DemandEquality(t, len(h.Pressed(gameram.Player2)), 1)
	test.ExpectEquality(t, h.Pressed(gameram.Player2)[0], remap.ButtonB)

	// events after the quit event stay in the queue
	h.events <- userinput.EventQuit{}
	h.events <- userinput.EventKeyboard{Key: "F11", Down: true}
	test.ExpectSuccess(t, h.serviceUserInput(scr))
	test.ExpectEquality(t, len(h.events), 1)
	test.ExpectEquality(t, len(scr.errors), 0)
}

func TestServiceUserInputError(t *testing.T) {
	// a config directory that can never be created
	f := filepath.Join(t.TempDir(), "file")
	test.DemandSuccess(t, os.WriteFile(f, nil, 0o600))
	t.Setenv("ZELDA3MP_CONFIG", filepath.Join(f, "config"))

	h := newHost()
	scr := &mockGUI{}

	h.events <- userinput.EventKeyboard{Key: "F1", Down: true}
	test.ExpectFailure(t, h.serviceUserInput(scr))
	test.ExpectEquality(t, len(scr.errors), 1)
}

func TestStartup(t *testing.T) {
	t.Setenv("ZELDA3MP_CONFIG", t.TempDir())

	pref := defaultPreferences()

	h := newHost()
	test.ExpectSuccess(t, startup(h, pref, 0))
	test.ExpectEquality(t, h.ram.ActivePlayer(), gameram.Player1)
	test.ExpectSuccess(t, h.table.IsDefault())

	h = newHost()
	test.ExpectSuccess(t, startup(h, pref, 2))
	test.ExpectEquality(t, h.ram.ActivePlayer(), gameram.Player2)

	h = newHost()
	test.ExpectFailure(t, startup(h, pref, 3))

	test.ExpectSuccess(t, pref.startPlayer.Set(2))
	h = newHost()
	test.ExpectSuccess(t, startup(h, pref, 0))
	test.ExpectEquality(t, h.ram.ActivePlayer(), gameram.Player2)

	// the pre-hook refuses players that do not exist
	test.ExpectFailure(t, pref.startPlayer.Set(3))
	test.ExpectEquality(t, pref.startPlayer.Get().(int), 2)
}

func TestStartupButtons(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZELDA3MP_CONFIG", dir)

	cfg := "0 1\n1 0\n"
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, remap.DefaultButtonsFile), []byte(cfg), 0o600))

	pref := defaultPreferences()

	h := newHost()
	test.ExpectSuccess(t, startup(h, pref, 0))
	test.ExpectEquality(t, h.table.Remap(0), remap.ButtonB)
	test.ExpectEquality(t, h.table.Remap(1), remap.ButtonA)
	test.ExpectFailure(t, h.table.IsDefault())
}

// launchArgs runs the program with the arguments and returns the exit value
// and the output
func launchArgs(args ...string) (int, string) {
	var buf bytes.Buffer
	md := &modalflag.Modes{Output: &buf}
	md.NewArgs(args)
	return launch(md), buf.String()
}

func TestVersionMode(t *testing.T) {
	v, out := launchArgs("VERSION")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "zelda3mp "))

	v, _ = launchArgs("VERSION", "-nosuchflag")
	test.ExpectEquality(t, v, 20)
}

func TestRemapMode(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZELDA3MP_CONFIG", dir)

	v, out := launchArgs("REMAP")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out, " 0 A\n"))

	v, _ = launchArgs("REMAP", "SET", "0", "3")
	test.ExpectEquality(t, v, 0)

	v, out = launchArgs("REMAP", "LIST")
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out, " 0 Y\n"))

	// unmapping a button
	v, _ = launchArgs("REMAP", "SET", "1", "-1")
	test.ExpectEquality(t, v, 0)

	t2 := remap.NewTable()
	test.DemandSuccess(t, t2.Load(filepath.Join(dir, remap.DefaultButtonsFile)))
	test.ExpectEquality(t, t2.Remap(0), remap.ButtonY)
	test.ExpectEquality(t, t2.Remap(1), remap.ButtonInvalid)

	v, _ = launchArgs("REMAP", "SET", "0", "99")
	test.ExpectEquality(t, v, 20)
	v, _ = launchArgs("REMAP", "SET", "999", "0")
	test.ExpectEquality(t, v, 20)
	v, _ = launchArgs("REMAP", "SET", "0")
	test.ExpectEquality(t, v, 20)
	v, _ = launchArgs("REMAP", "SET", "A", "0")
	test.ExpectEquality(t, v, 20)

	v, _ = launchArgs("REMAP", "RESET")
	test.ExpectEquality(t, v, 0)
	t2 = remap.NewTable()
	test.DemandSuccess(t, t2.Load(filepath.Join(dir, remap.DefaultButtonsFile)))
	test.ExpectSuccess(t, t2.IsDefault())
}

func TestStateMode(t *testing.T) {
	ram := gameram.NewGameRAM()
	ram.Write(gameram.LiveOrigin, 0xab)
	ram.TogglePlayer()
	ram.Write(gameram.LiveOrigin+1, 0xcd)

	pth := filepath.Join(t.TempDir(), "test.z3s")
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, staterecorder.Save(f, ram))
	test.DemandSuccess(t, f.Close())

	v, out := launchArgs("STATE", pth)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out, "active: player 2"))
	test.ExpectSuccess(t, strings.Contains(out, "0020  ab 00"))
	test.ExpectSuccess(t, strings.Contains(out, "0020  00 cd"))

	v, _ = launchArgs("STATE")
	test.ExpectEquality(t, v, 20)

	v, _ = launchArgs("STATE", filepath.Join(t.TempDir(), "missing.z3s"))
	test.ExpectEquality(t, v, 20)
}
