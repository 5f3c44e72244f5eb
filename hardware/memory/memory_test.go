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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/test"
)

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM()

	// memory is zero-initialised
	v, err := ram.Read(0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
	v, _ = ram.Read(0xffff)
	test.Equate(t, v, 0x00)

	test.ExpectedSuccess(t, ram.Write(0x00a1, 0xde))
	v, _ = ram.Read(0x00a1)
	test.Equate(t, v, 0xde)

	ram.Clear()
	v, _ = ram.Read(0x00a1)
	test.Equate(t, v, 0x00)
}

func TestWordAccess(t *testing.T) {
	ram := memory.NewRAM()

	// WriteWord stores the low byte first
	test.ExpectedSuccess(t, ram.WriteWord(0x1000, 0x8000))
	v, _ := ram.Read(0x1000)
	test.Equate(t, v, 0x00)
	v, _ = ram.Read(0x1001)
	test.Equate(t, v, 0x80)

	// ReadWord composes little-endian
	w, err := ram.ReadWord(0x1000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0x8000)

	// a less symmetric value
	_ = ram.Write(0x2000, 0x34)
	_ = ram.Write(0x2001, 0x12)
	w, _ = ram.ReadWord(0x2000)
	test.Equate(t, w, 0x1234)
}

// word access at the very top of memory wraps to address 0x0000 for the high
// byte, as on real hardware.
func TestWordAccessAtMemtop(t *testing.T) {
	ram := memory.NewRAM()

	_ = ram.Write(0xffff, 0xad)
	_ = ram.Write(0x0000, 0xde)
	w, _ := ram.ReadWord(0xffff)
	test.Equate(t, w, 0xdead)

	ram.Clear()
	_ = ram.WriteWord(0xffff, 0xbeef)
	v, _ := ram.Read(0xffff)
	test.Equate(t, v, 0xef)
	v, _ = ram.Read(0x0000)
	test.Equate(t, v, 0xbe)
}
