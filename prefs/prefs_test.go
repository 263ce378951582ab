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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/zelda3mp/zelda3mp/prefs"
	"github.com/zelda3mp/zelda3mp/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading prefs file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(100))

	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")

	// cropping of existing value and of new values
	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")
	test.ExpectSuccess(t, v.Set("qux"))
	test.ExpectEquality(t, v.String(), "qu")

	// no limit
	v.SetMaxLen(0)
	test.ExpectSuccess(t, v.Set("qux"))
	test.ExpectEquality(t, v.String(), "qux")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set(" -99 "))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectFailure(t, w.Set(1.5))
	test.ExpectEquality(t, w.Get().(int), -99)

	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: -99\n")
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.String(), "2.000")
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(float64), 0.0)
}

func TestGeneric(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int
	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			_, err := fmt.Sscanf(s.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "generic :: 1,2\n")

	w = 10
	h = 20
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

func TestGenericUndefined(t *testing.T) {
	available := true
	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			return nil
		},
		func() prefs.Value {
			if available {
				return "10,10"
			}
			return prefs.GenericGetValueUndefined
		},
	)

	test.ExpectEquality(t, v.String(), "10,10")
	available = false
	test.ExpectEquality(t, v.String(), "10,10")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the value from changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("players.resetonstart", &v))
	test.ExpectSuccess(t, dsk.Add("players.startplayer", &w))

	// no file and no save on fail
	err = dsk.Load(false)
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))

	// no file but save on fail creates the file
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set(2))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "players.resetonstart :: true\nplayers.startplayer :: 2\n")

	// change values and reload
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, w.Get().(int), 0)
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, w.Get().(int), 2)
}

func TestLoadBadValue(t *testing.T) {
	fn := tmpPrefFile(t)

	data := fmt.Sprintf("%s\n", prefs.WarningBoilerPlate)
	for i := range 8 {
		data += fmt.Sprintf("flag.%d :: true\n", i)
	}
	data += "players.startplayer :: 3\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	errBadPlayer := errors.New("bad player")

	// the order of the keys in the file must not matter so the load is
	// repeated several times
	for range 20 {
		dsk, err := prefs.NewDisk(fn)
		test.DemandSuccess(t, err)

		var flags [8]prefs.Bool
		for i := range flags {
			test.DemandSuccess(t, dsk.Add(fmt.Sprintf("flag.%d", i), &flags[i]))
		}

		var player prefs.Int
		test.DemandSuccess(t, player.Set(1))
		player.SetHookPre(func(v prefs.Value) error {
			if v.(int) != 1 && v.(int) != 2 {
				return errBadPlayer
			}
			return nil
		})
		test.DemandSuccess(t, dsk.Add("players.startplayer", &player))

		err = dsk.Load(false)
		test.ExpectSuccess(t, errors.Is(err, errBadPlayer))
		test.ExpectEquality(t, player.Get().(int), 1)
		for i := range flags {
			test.ExpectEquality(t, flags[i].Get().(bool), true, i)
		}
	}
}

func TestNotPrefsFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("foo :: bar\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Load(true))
	test.ExpectEquality(t, v.String(), "")
}

func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Int
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, b.Set(2))
	test.ExpectSuccess(t, dskA.Save())
	test.ExpectSuccess(t, dskB.Save())
	cmpPrefFile(t, fn, "a :: 1\nb :: 2\n")

	// saving A again does not lose the value from B
	test.ExpectSuccess(t, a.Set(3))
	test.ExpectSuccess(t, dskA.Save())
	cmpPrefFile(t, fn, "a :: 3\nb :: 2\n")
}

func TestDefunct(t *testing.T) {
	fn := tmpPrefFile(t)
	content := fmt.Sprintf("%s\noverlay.scale :: 2.0\nfoo :: bar\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "bar")
	test.ExpectSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "foo :: bar\n")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("foo :: bar", &v))
	test.ExpectFailure(t, dsk.Add("foo\nbar", &v))
	test.ExpectFailure(t, dsk.HasEntry("foo"))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}
