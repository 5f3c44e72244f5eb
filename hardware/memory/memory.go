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

package memory

// RAM is the flat 64KiB address space the CPU operates on. It is owned
// exclusively by one CPU instance; there is no sharing and no locking.
//
// Because addresses are represented as exactly 16 bits every address is in
// range by construction. The Read() and Write() functions return an error
// value only so that the type satisfies the cpu.Memory interface - a more
// complete memory implementation (one with unreadable chip registers, for
// example) would make use of it.
type RAM struct {
	internal []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. All
// cells are zero-initialised.
func NewRAM() *RAM {
	return &RAM{
		internal: make([]uint8, 0x10000),
	}
}

// Clear sets all bytes in memory to zero.
func (ram *RAM) Clear() {
	for i := range ram.internal {
		ram.internal[i] = 0
	}
}

// Read a byte from the specified address.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.internal[address], nil
}

// Write a byte to the specified address.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.internal[address] = data
	return nil
}

// ReadWord reads two consecutive bytes and composes them little-endian.
//
// The address of the high byte wraps modulo 0x10000, meaning that a word
// read at 0xffff takes its high byte from address 0x0000. This is what the
// 6502 itself does. It only matters if the reset vector is placed at the
// extreme top of memory but it must be a deliberate choice rather than a
// runtime panic.
func (ram *RAM) ReadWord(address uint16) (uint16, error) {
	lo, _ := ram.Read(address)
	hi, _ := ram.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo), nil
}

// WriteWord splits the data value into a low and a high byte; the low byte
// is written at address and the high byte at address+1 (little-endian, as
// the 6502 expects). The high-byte address wraps as in ReadWord().
func (ram *RAM) WriteWord(address uint16, data uint16) error {
	_ = ram.Write(address, uint8(data&0x00ff))
	_ = ram.Write(address+1, uint8(data>>8))
	return nil
}
