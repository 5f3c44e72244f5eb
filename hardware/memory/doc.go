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

// Package memory implements the address space of the NES as seen by the CPU.
//
// This emulation models memory as a single flat RAM array. There is no
// memory map in the sense of mirrored RAM, chip registers or cartridge
// mappers - those belong to bus-level devices that are outside the scope of
// the CPU core. The RAM type implements the cpu package's Memory interface
// and adds the 16 bit word accessors used when handling the reset vector.
package memory
