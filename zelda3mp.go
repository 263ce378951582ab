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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/zelda3mp/zelda3mp/gameram"
	"github.com/zelda3mp/zelda3mp/gui"
	"github.com/zelda3mp/zelda3mp/gui/sdlimgui"
	"github.com/zelda3mp/zelda3mp/logger"
	"github.com/zelda3mp/zelda3mp/modalflag"
	"github.com/zelda3mp/zelda3mp/paths"
	"github.com/zelda3mp/zelda3mp/prefs"
	"github.com/zelda3mp/zelda3mp/remap"
	"github.com/zelda3mp/zelda3mp/staterecorder"
	"github.com/zelda3mp/zelda3mp/statsview"
	"github.com/zelda3mp/zelda3mp/version"
)

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md))
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(md *modalflag.Modes) int {
	md.NewMode()
	md.AddSubModes("RUN", "STATE", "REMAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STATE":
		err = state(md)

	case "REMAP":
		err = remapping(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	prefsArg := md.AddString("prefs", "", "command line preferences: \"key::value; key::value\"")
	log := md.AddBool("log", false, "echo log to stdout")
	player := md.AddInt("player", 0, "start player (1 or 2). overrides the players.startplayer preference")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(md.Output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	prefs.PushCommandLineStack(*prefsArg)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	h := newHost()

	pref, err := newPreferences()
	if err != nil {
		if pref == nil {
			return err
		}
		logger.Log(logger.Allow, "prefs", err)
	}

	err = startup(h, pref, *player)
	if err != nil {
		return err
	}

	img, err := sdlimgui.NewSdlImgui(h)
	if err != nil {
		return err
	}

	var scr gui.GUI = img
	defer scr.Destroy(os.Stderr)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Fprint(md.Output, "\r")
			done = true
		default:
			scr.Service()
			done = h.serviceUserInput(scr)
		}
	}

	return pref.save()
}

// startup prepares the host for the first frame. the player states are reset
// if the preference says so, the starting player is selected and the button
// mapping is loaded from the config directory. a start player of zero means
// that the preferred player is used
func startup(h *host, pref *preferences, startPlayer int) error {
	if pref.resetOnStart.Get().(bool) {
		h.ram.ResetPlayerStates()
	}

	var start gameram.Player
	var err error
	if startPlayer != 0 {
		start, err = gameram.ParsePlayer(startPlayer)
		if err != nil {
			return err
		}
	} else {
		start, err = gameram.ParsePlayer(pref.startPlayer.Get().(int))
		if err != nil {
			logger.Log(logger.Allow, "prefs", err)
			start = gameram.Player1
		}
	}
	h.ram.SetPlayer(start)
	logger.Logf(logger.Allow, "zelda3mp", "%s is active", start)

	loadButtons(h.table)

	return nil
}

// loadButtons loads the button mapping from the config directory. problems are
// logged and the table is left with the default mapping
func loadButtons(t *remap.Table) {
	pth, err := paths.ResourcePath(remap.DefaultButtonsFile)
	if err != nil {
		logger.Log(logger.Allow, "remap", err)
		return
	}

	err = t.Load(pth)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		logger.Log(logger.Allow, "remap", err)
		t.Reset()
	}
}

func state(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("state file required for %s mode", md)
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		inf, err := staterecorder.Inspect(f)
		if err != nil {
			return err
		}
		printState(md.Output, inf)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// printState writes the player section of the state file to output. each
// slot is shown with the memory addresses the bytes are copied to
func printState(output io.Writer, inf staterecorder.Info) {
	fmt.Fprintln(output, inf)
	for _, p := range []gameram.Player{gameram.Player1, gameram.Player2} {
		fmt.Fprintf(output, "\n%s\n", p)
		slot := inf.Snapshot.Slot(p)
		for i := 0; i < len(slot); i += 16 {
			fmt.Fprintf(output, "%04x ", gameram.LiveOrigin+i)
			for _, v := range slot[i:min(i+16, len(slot))] {
				fmt.Fprintf(output, " %02x", v)
			}
			fmt.Fprintln(output)
		}
	}
}

func remapping(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "SET", "RESET")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pth, err := paths.ResourcePath(remap.DefaultButtonsFile)
	if err != nil {
		return err
	}

	t := remap.NewTable()

	switch md.Mode() {
	case "LIST":
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
		err = t.Load(pth)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		for _, e := range t.Entries() {
			fmt.Fprintf(md.Output, "%2d %s\n", e.SDL, e.Button)
		}
		return nil

	case "SET":
		if len(md.RemainingArgs()) != 2 {
			return fmt.Errorf("%s mode requires an SDL button and a game button", md)
		}

		sdlButton, err := strconv.Atoi(md.GetArg(0))
		if err != nil || !remap.ValidSDLButton(sdlButton) {
			return fmt.Errorf("not an SDL button: %s", md.GetArg(0))
		}
		b, err := strconv.Atoi(md.GetArg(1))
		if err != nil || (remap.Button(b) != remap.ButtonInvalid && !remap.Button(b).Valid()) {
			return fmt.Errorf("not a game button: %s", md.GetArg(1))
		}

		err = t.Load(pth)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		t.Change(sdlButton, remap.Button(b))
		fmt.Fprintf(md.Output, "%2d %s\n", sdlButton, remap.Button(b))

	case "RESET":
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
	}

	return t.Save(pth)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		if r == "" {
			r = "no revision information"
		}
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
