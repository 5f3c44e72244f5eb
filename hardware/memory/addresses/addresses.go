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

// Package addresses records the memory locations that have a special meaning
// to the 6502 and to the NES memory map.
package addresses

// Reset is the location of the reset vector. the CPU reads the two bytes at
// this address (little-endian) to find the address of the first instruction
// to be executed after a reset.
const Reset = uint16(0xfffc)

// CartridgeOrigin is the location at which cartridge programs appear in the
// address space. the Load() function of the NES type copies program data to
// this address and points the reset vector at it.
const CartridgeOrigin = uint16(0x8000)

// Memtop is the highest address in the 6502 address space.
const Memtop = uint16(0xffff)
