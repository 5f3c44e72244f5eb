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

// Package cpu emulates the 6502-derived processor found in the NES at the
// instruction level. It is not cycle accurate: an instruction is atomic and
// the Cycles field of the instruction definition is metadata only.
//
// The CPU is driven with the ExecuteInstruction() function, one instruction
// per call. Memory is accessed through the Memory interface, allowing the
// caller to supply anything from the flat RAM in the memory package to an
// erroring mock.
//
// Byte- and bit-level behaviour of the hardware is reproduced exactly:
// little-endian operand decoding; zero page index and pointer arithmetic
// that wraps at 8 bits; absolute index arithmetic that wraps at 16 bits; and
// zero/sign flag computation from the result byte of every flag-affecting
// instruction.
package cpu
