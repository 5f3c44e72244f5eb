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

// Package instructions defines the 6502 instruction set as data. Each
// implemented opcode has a Definition carrying its operator tag, addressing
// mode, instruction length and base cycle count.
//
// Keeping the metadata here and the dispatch logic in the cpu package means
// extending the emulation to new instructions is a matter of adding table
// entries and an operator case, with no change to the architecture.
package instructions
