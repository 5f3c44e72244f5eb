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

// Package registers implements the three types of register found in the
// 6502: the general purpose 8 bit registers (accumulator, X, Y); the 16 bit
// program counter; and the status register.
//
// The register types take care of the wraparound properties of the
// hardware. Adding to a Register wraps modulo 256 and adding to the
// ProgramCounter wraps modulo 65536. Code elsewhere in the emulation never
// needs to mask a register value.
package registers
