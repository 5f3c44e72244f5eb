// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "flags.prg")
	program := []byte{0xa9, 0x05, 0x00}
	if err := os.WriteFile(fn, program, 0o644); err != nil {
		t.Fatal(err)
	}

	ld := cartridgeloader.NewLoader(fn)
	test.Equate(t, ld.ShortName(), "flags")

	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, len(ld.Data), 3)
	test.Equate(t, ld.Data[0], 0xa9)

	// sha1 of the three program bytes
	test.Equate(t, ld.Hash, "7ef3de4093d5a42d0345319b9283db223ef28e5b")
}

func TestLoadFailure(t *testing.T) {
	ld := cartridgeloader.NewLoader("no such file")
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}
