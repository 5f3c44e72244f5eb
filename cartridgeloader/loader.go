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

// Package cartridgeloader reads program files from disk on behalf of the
// emulation. A program file is a flat sequence of 6502 machine code bytes,
// exactly as it will appear in memory at the cartridge origin. There is no
// iNES container parsing - an external tool should extract the PRG data
// first.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gophernes/curated"
)

// Error patterns surfaced by the Loader type.
const (
	// the program file could not be read from disk.
	LoadError = "cartridgeloader: %v"
)

// Loader is used to specify the program to be attached to the NES. After a
// successful Load() the Data and Hash fields are valid.
type Loader struct {
	// filename of the program to load
	Filename string

	// copy of the loaded data
	Data []uint8

	// SHA1 hash of the loaded data. useful for identifying the program in
	// logs and test baselines
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the program filename, suitable
// for log and prompt output.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	sn = sn[:len(sn)-len(filepath.Ext(ld.Filename))]
	return sn
}

func (ld Loader) String() string {
	return ld.ShortName()
}

// Load the program file from disk.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}
